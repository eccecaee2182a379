package dag

import (
	"github.com/LENAX/pipedag/pkg/core/graph"
	"github.com/LENAX/pipedag/pkg/core/pipeline"
)

// Transform 将索引中的结构图重标号为以规范化字符串为节点的图
// outs为false时消费Stage级结构图（节点为Stage地址），
// 为true时消费输出级结构图（节点为输出路径）。
// 边方向保持不变；重标号后相同的标识自然合并为一个节点（边取并集）。
func Transform(idx *pipeline.Index, outs bool) *graph.Graph {
	g := graph.New()
	if outs {
		for _, o := range idx.Outputs() {
			g.AddNode(o.Path)
		}
		for _, e := range idx.OutEdges() {
			g.AddEdge(e[0].Path, e[1].Path)
		}
		return g
	}
	for _, s := range idx.Stages() {
		g.AddNode(s.Addressing())
	}
	for _, e := range idx.StageEdges() {
		g.AddEdge(e[0].Addressing(), e[1].Addressing())
	}
	return g
}
