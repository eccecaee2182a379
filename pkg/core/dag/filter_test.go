package dag

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// chainXYZ 构造 X依赖Y、Y依赖Z 的链式图
func chainXYZ() *graph.Graph {
	g := graph.New()
	g.AddEdge("X", "Y")
	g.AddEdge("Y", "Z")
	return g
}

// TestFilter_EmptyTargets 空目标列表时原样返回输入图
func TestFilter_EmptyTargets(t *testing.T) {
	g := chainXYZ()

	assert.Same(t, g, Filter(g, nil, false))
	assert.Same(t, g, Filter(g, nil, true))
}

// TestFilter_AncestorsOnly 仅上游模式：保留目标及其传递依赖
func TestFilter_AncestorsOnly(t *testing.T) {
	g := chainXYZ()

	got := Filter(g, []string{"X"}, false)
	assert.Equal(t, []string{"X", "Y", "Z"}, got.Nodes(), "X的上游链应完整保留")

	got = Filter(g, []string{"Y"}, false)
	assert.Equal(t, []string{"Y", "Z"}, got.Nodes(), "X不在Y的上游集合中，应被剔除")
	assert.True(t, got.HasEdge("Y", "Z"))
	assert.False(t, got.HasNode("X"))
}

// TestFilter_Full 完整模式：跳过可达性裁剪，仅做连通性裁剪
func TestFilter_Full(t *testing.T) {
	g := chainXYZ()

	got := Filter(g, []string{"Y"}, true)
	assert.Equal(t, []string{"X", "Y", "Z"}, got.Nodes(), "完整模式下不可达节点不应被剔除")
}

// TestFilter_DropsUnrelatedPipelines 连通性裁剪丢弃与目标无关的独立Pipeline
func TestFilter_DropsUnrelatedPipelines(t *testing.T) {
	g := chainXYZ()
	g.AddEdge("M", "N") // 独立Pipeline

	got := Filter(g, []string{"X"}, false)
	assert.Equal(t, []string{"X", "Y", "Z"}, got.Nodes())

	// 完整模式同样裁剪无关Pipeline
	got = Filter(g, []string{"X"}, true)
	assert.Equal(t, []string{"X", "Y", "Z"}, got.Nodes())
}

// TestFilter_MultipleTargets 多目标取上游集合的并集
func TestFilter_MultipleTargets(t *testing.T) {
	g := chainXYZ()
	g.AddEdge("M", "N")

	got := Filter(g, []string{"Y", "M"}, false)
	assert.Equal(t, []string{"M", "N", "Y", "Z"}, got.Nodes())
}

// TestFilter_InputNotMutated 过滤不修改输入图
func TestFilter_InputNotMutated(t *testing.T) {
	g := chainXYZ()
	g.AddEdge("M", "N")

	_ = Filter(g, []string{"Y"}, false)

	require.Equal(t, []string{"M", "N", "X", "Y", "Z"}, g.Nodes())
	require.True(t, g.HasEdge("X", "Y"))
}

// TestFilter_TargetMissing 目标不在图中时结果为空图
func TestFilter_TargetMissing(t *testing.T) {
	g := chainXYZ()

	got := Filter(g, []string{"不存在"}, false)
	assert.Zero(t, got.Len())
}
