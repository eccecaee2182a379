package dag

import (
	"strings"

	"github.com/LENAX/pipedag/pkg/core/graph"
	"github.com/LENAX/pipedag/pkg/core/pipeline"
)

// isForeachMatrixNode 判断节点是否为foreach/matrix生成的Stage节点
// 元文件节点即使包含连接符也不参与折叠：节点本身或其连接符之前的
// 模板部分以元文件后缀结尾时均豁免。
func isForeachMatrixNode(node string) bool {
	if strings.HasSuffix(node, pipeline.MetafileSuffix) {
		return false
	}
	i := strings.Index(node, pipeline.JoinToken)
	if i < 0 {
		return false
	}
	return !strings.HasSuffix(node[:i], pipeline.MetafileSuffix)
}

// templateName 生成节点的模板名：首个连接符之前的部分
func templateName(node string) string {
	return node[:strings.Index(node, pipeline.JoinToken)]
}

// CollapseForeachMatrix 将同一foreach/matrix模板生成的节点折叠为单个模板节点
// 仅对Stage级图有意义（输出级图在选项校验时已被排除）。
// 涉及生成节点的边按模板名重写（集合语义去重）；
// 两个同模板兄弟节点之间的边折叠后成为模板节点的自环并予以保留。
func CollapseForeachMatrix(g *graph.Graph) *graph.Graph {
	ng := g.Copy()

	toRemove := make(map[string]struct{})
	newNodes := make(map[string]struct{})
	for _, n := range g.Nodes() {
		if isForeachMatrixNode(n) {
			toRemove[n] = struct{}{}
			newNodes[templateName(n)] = struct{}{}
		}
	}

	for _, e := range g.Edges() {
		u, v := e[0], e[1]
		ru, rv := u, v
		replace := false
		if isForeachMatrixNode(u) {
			ru = templateName(u)
			replace = true
		}
		if isForeachMatrixNode(v) {
			rv = templateName(v)
			replace = true
		}
		if replace {
			ng.RemoveEdge(u, v)
			ng.AddEdge(ru, rv)
		}
	}

	// 模板节点显式加入，保证没有存留边的模板也出现在结果中
	for n := range newNodes {
		ng.AddNode(n)
	}
	for n := range toRemove {
		ng.RemoveNode(n)
	}
	return ng
}
