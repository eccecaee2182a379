package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// Mermaid 将图编码为Mermaid流程图文本
// 按Pipeline（弱连通分量）分组：每个Pipeline内节点按字典序分配
// 递增的合成标识node1、node2……计数器跨Pipeline连续，保证全局唯一。
// 边按(依赖, 依赖方)的标签字典序输出，方向为 依赖 --> 依赖方。
// markdown为true时整体包裹在```mermaid围栏中。
func Mermaid(g *graph.Graph, markdown bool) string {
	var b strings.Builder
	b.WriteString("flowchart TD")

	total := 0
	for _, p := range g.Components() {
		ids := make(map[string]string, p.Len())
		for _, n := range p.Nodes() {
			total++
			id := fmt.Sprintf("node%d", total)
			ids[n] = id
			fmt.Fprintf(&b, "\n\t%s[\"%s\"]", id, n)
		}

		edges := make([][2]string, 0)
		for _, e := range p.Edges() {
			// 内部边为 依赖方 -> 依赖，输出时反转
			edges = append(edges, [2]string{e[1], e[0]})
		}
		sort.Slice(edges, func(i, j int) bool {
			if edges[i][0] != edges[j][0] {
				return edges[i][0] < edges[j][0]
			}
			return edges[i][1] < edges[j][1]
		})
		for _, e := range edges {
			fmt.Fprintf(&b, "\n\t%s-->%s", ids[e[0]], ids[e[1]])
		}
	}

	if markdown {
		return "```mermaid\n" + b.String() + "\n```"
	}
	return b.String()
}
