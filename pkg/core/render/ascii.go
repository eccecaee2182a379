package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// Ascii 将图编码为ASCII管道示意图
// 按Pipeline（弱连通分量）分别渲染，Pipeline之间以空行分隔，
// 顺序按各Pipeline最小节点的字典序，保证同一输入的渲染结果稳定。
func Ascii(g *graph.Graph) string {
	var parts []string
	for _, p := range g.Components() {
		parts = append(parts, asciiPipeline(p))
	}
	return strings.Join(parts, "\n\n")
}

// asciiPipeline 渲染单个Pipeline：
// 每个末端Stage（没有任何节点依赖它）画一个边框盒，
// 其下以树形缩进逐级展开依赖。
// 折叠产生的自环可能让分量没有末端节点，此时末端树覆盖不到的
// 节点按字典序补为额外的根，保证每个节点都出现在输出中。
func asciiPipeline(p *graph.Graph) string {
	var b strings.Builder

	covered := make(map[string]bool)
	first := true
	render := func(root string) {
		if !first {
			b.WriteByte('\n')
		}
		first = false
		writeBox(&b, root)
		covered[root] = true
		writeTree(&b, p, root, "", map[string]bool{root: true}, covered)
	}

	for _, n := range p.Nodes() {
		if len(p.Dependents(n)) == 0 {
			render(n)
		}
	}
	for _, n := range p.Nodes() {
		if !covered[n] {
			render(n)
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

// writeBox 输出边框包裹的节点标签
func writeBox(w io.Writer, label string) {
	border := "+" + strings.Repeat("-", len(label)+2) + "+"
	fmt.Fprintf(w, "%s\n| %s |\n%s\n", border, label, border)
}

// writeTree 以树形缩进展开节点的依赖
// onPath记录当前展开路径上的节点，出现回边时以"..."截断，不再展开；
// covered累计已出现在输出中的节点。
func writeTree(w io.Writer, p *graph.Graph, node, prefix string, onPath, covered map[string]bool) {
	deps := p.Dependencies(node)
	for i, d := range deps {
		connector, childPrefix := "├── ", prefix+"│   "
		if i == len(deps)-1 {
			connector, childPrefix = "└── ", prefix+"    "
		}
		if onPath[d] {
			fmt.Fprintf(w, "%s%s%s ...\n", prefix, connector, d)
			continue
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, connector, d)
		covered[d] = true
		onPath[d] = true
		writeTree(w, p, d, childPrefix, onPath, covered)
		delete(onPath, d)
	}
}
