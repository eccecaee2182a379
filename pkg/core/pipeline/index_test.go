package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewIndex_DuplicateOut(t *testing.T) {
	_, err := NewIndex([]*Stage{
		{Name: "a", Path: "pipeline.yaml", Outs: []string{"model.pkl"}},
		{Name: "b", Path: "pipeline.yaml", Outs: []string{"model.pkl"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "model.pkl")
	assert.Contains(t, err.Error(), "被多个Stage生产")
}

func TestNewIndex_DuplicateAddress(t *testing.T) {
	_, err := NewIndex([]*Stage{
		{Name: "a", Path: "pipeline.yaml", Outs: []string{"x"}},
		{Name: "a", Path: "pipeline.yaml", Outs: []string{"y"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "地址冲突")
}

func TestNewIndex_Cycle(t *testing.T) {
	_, err := NewIndex([]*Stage{
		{Name: "a", Path: "pipeline.yaml", Deps: []string{"bo"}, Outs: []string{"ao"}},
		{Name: "b", Path: "pipeline.yaml", Deps: []string{"ao"}, Outs: []string{"bo"}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "循环依赖")
}

// TestNewIndex_EdgeResolution 依赖边解析：精确、目录展开、输出目录内部
func TestNewIndex_EdgeResolution(t *testing.T) {
	prepare := &Stage{Name: "prepare", Path: "pipeline.yaml",
		Outs: []string{"data/prepared"}}
	split := &Stage{Name: "split", Path: "pipeline.yaml",
		Outs: []string{"raw/a.csv", "raw/b.csv"}}
	// 精确路径依赖
	exact := &Stage{Name: "exact", Path: "pipeline.yaml",
		Deps: []string{"raw/a.csv"}, Outs: []string{"o1"}}
	// 目录依赖展开为其下全部输出
	dir := &Stage{Name: "dir", Path: "pipeline.yaml",
		Deps: []string{"raw"}, Outs: []string{"o2"}}
	// 依赖位于某输出目录内部
	inner := &Stage{Name: "inner", Path: "pipeline.yaml",
		Deps: []string{"data/prepared/train.csv"}, Outs: []string{"o3"}}

	idx, err := NewIndex([]*Stage{prepare, split, exact, dir, inner})
	require.NoError(t, err)

	edges := make(map[[2]string]bool)
	for _, e := range idx.StageEdges() {
		edges[[2]string{e[0].Name, e[1].Name}] = true
	}
	assert.True(t, edges[[2]string{"exact", "split"}])
	assert.True(t, edges[[2]string{"dir", "split"}])
	assert.True(t, edges[[2]string{"inner", "prepare"}])
	assert.Len(t, edges, 3, "同一对Stage之间的边应去重")
}

// TestNewIndex_OutEdges 输出级边连接输出路径本身
func TestNewIndex_OutEdges(t *testing.T) {
	idx, err := NewIndex([]*Stage{
		{Name: "a", Path: "pipeline.yaml", Outs: []string{"raw"}},
		{Name: "b", Path: "pipeline.yaml", Deps: []string{"raw"},
			Outs: []string{"clean", "report.txt"}},
	})
	require.NoError(t, err)

	edges := idx.OutEdges()
	require.Len(t, edges, 2)
	assert.Equal(t, "clean", edges[0][0].Path)
	assert.Equal(t, "raw", edges[0][1].Path)
	assert.Equal(t, "report.txt", edges[1][0].Path)
}

func TestIndex_OutsUnder(t *testing.T) {
	idx, err := NewIndex([]*Stage{
		{Name: "s", Path: "pipeline.yaml",
			Outs: []string{"data/a.csv", "data/sub/b.csv", "datafile"}},
	})
	require.NoError(t, err)

	var got []string
	for _, o := range idx.OutsUnder("data") {
		got = append(got, o.Path)
	}
	assert.Equal(t, []string{"data/a.csv", "data/sub/b.csv"}, got,
		"前缀按路径分段匹配，不应包含datafile")

	assert.Empty(t, idx.OutsUnder("missing"))
}

func TestIndex_OutContaining(t *testing.T) {
	idx, err := NewIndex([]*Stage{
		{Name: "s", Path: "pipeline.yaml", Outs: []string{"data/prepared", "model.pkl"}},
	})
	require.NoError(t, err)

	o, ok := idx.OutContaining("model.pkl")
	require.True(t, ok)
	assert.Equal(t, "model.pkl", o.Path)

	o, ok = idx.OutContaining("data/prepared/train.csv")
	require.True(t, ok, "目录输出内部的路径应归属该输出")
	assert.Equal(t, "data/prepared", o.Path)

	_, ok = idx.OutContaining("elsewhere/x")
	assert.False(t, ok)
}

func TestIndex_SelfDependencyIgnored(t *testing.T) {
	idx, err := NewIndex([]*Stage{
		{Name: "s", Path: "pipeline.yaml",
			Deps: []string{"dir/in.txt"}, Outs: []string{"dir"}},
	})
	require.NoError(t, err)
	assert.Empty(t, idx.StageEdges(), "Stage对自身输出的依赖不产生边")
}
