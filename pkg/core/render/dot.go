package render

import (
	"fmt"
	"strings"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// quoteLabel 为未被双引号包裹的标签加引号
// DOT中的节点名包含':'时必须加引号。
func quoteLabel(label string) string {
	if len(label) >= 2 && label[0] == '"' && label[len(label)-1] == '"' {
		return label
	}
	return `"` + label + `"`
}

// Dot 将图编码为Graphviz DOT文本
// 输出前反转所有边方向（画出的箭头为 依赖 -> 依赖方），
// 与"构建自上游向下游流动"的常规画法一致；孤立节点也会声明。
func Dot(g *graph.Graph) string {
	var b strings.Builder
	b.WriteString("strict digraph {\n")
	for _, n := range g.Nodes() {
		fmt.Fprintf(&b, "\t%s;\n", quoteLabel(n))
	}
	for _, e := range g.Reverse().Edges() {
		fmt.Fprintf(&b, "\t%s -> %s;\n", quoteLabel(e[0]), quoteLabel(e[1]))
	}
	b.WriteString("}\n")
	return b.String()
}
