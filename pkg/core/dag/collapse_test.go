package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// TestCollapse_Nodes 同模板生成节点折叠为模板节点，元文件节点豁免
func TestCollapse_Nodes(t *testing.T) {
	g := graph.New()
	g.AddNode("train@a")
	g.AddNode("train@b")
	g.AddNode("eval.dvc@x")   // 模板部分以元文件后缀结尾，豁免
	g.AddNode("data@raw.dvc") // 节点本身以元文件后缀结尾，豁免

	got := CollapseForeachMatrix(g)
	assert.Equal(t, []string{"data@raw.dvc", "eval.dvc@x", "train"}, got.Nodes())
}

// TestCollapse_ExternalEdges 涉及生成节点的边按模板名重写
func TestCollapse_ExternalEdges(t *testing.T) {
	g := graph.New()
	g.AddEdge("train@a", "prepare")
	g.AddEdge("train@b", "prepare")
	g.AddEdge("report", "train@a")

	got := CollapseForeachMatrix(g)
	assert.Equal(t, []string{"prepare", "report", "train"}, got.Nodes())
	assert.True(t, got.HasEdge("train", "prepare"))
	assert.True(t, got.HasEdge("report", "train"))
	assert.Len(t, got.Edges(), 2, "重写后的重复边应合并")
}

// TestCollapse_SiblingEdgeBecomesSelfLoop 同模板兄弟之间的边折叠为自环
func TestCollapse_SiblingEdgeBecomesSelfLoop(t *testing.T) {
	g := graph.New()
	g.AddEdge("train@a", "train@b")

	got := CollapseForeachMatrix(g)
	assert.Equal(t, []string{"train"}, got.Nodes())
	assert.True(t, got.HasEdge("train", "train"), "兄弟边应保留为模板自环")
}

// TestCollapse_TemplateWithoutEdges 没有存留边的模板也应出现在结果中
func TestCollapse_TemplateWithoutEdges(t *testing.T) {
	g := graph.New()
	g.AddNode("sweep@1")
	g.AddNode("sweep@2")

	got := CollapseForeachMatrix(g)
	assert.Equal(t, []string{"sweep"}, got.Nodes())
	assert.Empty(t, got.Edges())
}

// TestCollapse_NoGeneratedNodes 无生成节点时图保持不变
func TestCollapse_NoGeneratedNodes(t *testing.T) {
	g := graph.New()
	g.AddEdge("train", "prepare")
	g.AddNode("raw.dvc")

	got := CollapseForeachMatrix(g)
	assert.Equal(t, g.Nodes(), got.Nodes())
	assert.Equal(t, g.Edges(), got.Edges())
}

// TestCollapse_InputNotMutated 折叠不修改输入图
func TestCollapse_InputNotMutated(t *testing.T) {
	g := graph.New()
	g.AddEdge("train@a", "prepare")

	_ = CollapseForeachMatrix(g)

	assert.True(t, g.HasNode("train@a"))
	assert.True(t, g.HasEdge("train@a", "prepare"))
}
