package dag

import "github.com/LENAX/pipedag/pkg/core/graph"

// Filter 将图限制为与目标节点相关的子图
// 目标列表为空时原样返回输入图（不复制，也绝不修改输入）。
// full为false时先做可达性裁剪：仅保留各目标的上游集合
// （目标自身加上沿依赖边正向可达的全部节点）的并集；
// 两种模式最后都做连通性裁剪：仅保留包含目标的弱连通分量，
// 从而丢弃与目标无关的独立Pipeline。裁剪顺序不可交换。
func Filter(g *graph.Graph, targets []string, full bool) *graph.Graph {
	if len(targets) == 0 {
		return g
	}

	ng := g
	if !full {
		upstream := make(map[string]struct{})
		for _, t := range targets {
			upstream[t] = struct{}{}
			for n := range g.Reachable(t) {
				upstream[n] = struct{}{}
			}
		}
		ng = g.Subgraph(upstream)
	}

	connected := make(map[string]struct{})
	for _, t := range targets {
		for n := range ng.ConnectedComponent(t) {
			connected[n] = struct{}{}
		}
	}
	return ng.Subgraph(connected)
}
