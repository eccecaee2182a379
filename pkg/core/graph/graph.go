package graph

import "sort"

// Graph 有向依赖图（集合语义）
// 边 (u, v) 表示 u 依赖 v，即 v 必须先于 u 存在。
// 节点以规范化字符串为唯一标识，重复的节点和边自动合并。
type Graph struct {
	nodes map[string]struct{}
	succ  map[string]map[string]struct{} // u -> u直接依赖的节点集合
	pred  map[string]map[string]struct{} // v -> 直接依赖v的节点集合
}

// New 创建空图
func New() *Graph {
	return &Graph{
		nodes: make(map[string]struct{}),
		succ:  make(map[string]map[string]struct{}),
		pred:  make(map[string]map[string]struct{}),
	}
}

// AddNode 添加节点（幂等）
func (g *Graph) AddNode(id string) {
	if _, ok := g.nodes[id]; ok {
		return
	}
	g.nodes[id] = struct{}{}
	g.succ[id] = make(map[string]struct{})
	g.pred[id] = make(map[string]struct{})
}

// AddEdge 添加边 u -> v（u 依赖 v）
// 缺失的端点自动补齐，保证图中不会出现悬空边；重复边合并。
// 允许自环（foreach折叠可能产生 template -> template 的边）。
func (g *Graph) AddEdge(u, v string) {
	g.AddNode(u)
	g.AddNode(v)
	g.succ[u][v] = struct{}{}
	g.pred[v][u] = struct{}{}
}

// RemoveNode 删除节点及其关联的所有边（节点不存在时为空操作）
func (g *Graph) RemoveNode(id string) {
	if _, ok := g.nodes[id]; !ok {
		return
	}
	for v := range g.succ[id] {
		delete(g.pred[v], id)
	}
	for u := range g.pred[id] {
		delete(g.succ[u], id)
	}
	delete(g.succ, id)
	delete(g.pred, id)
	delete(g.nodes, id)
}

// RemoveEdge 删除边 u -> v（边不存在时为空操作），端点保留
func (g *Graph) RemoveEdge(u, v string) {
	if _, ok := g.succ[u]; !ok {
		return
	}
	delete(g.succ[u], v)
	delete(g.pred[v], u)
}

// HasNode 判断节点是否存在
func (g *Graph) HasNode(id string) bool {
	_, ok := g.nodes[id]
	return ok
}

// HasEdge 判断边 u -> v 是否存在
func (g *Graph) HasEdge(u, v string) bool {
	_, ok := g.succ[u][v]
	return ok
}

// Len 节点数量
func (g *Graph) Len() int {
	return len(g.nodes)
}

// Nodes 返回按字典序排序的节点列表
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		nodes = append(nodes, id)
	}
	sort.Strings(nodes)
	return nodes
}

// Edges 返回按 (u, v) 字典序排序的边列表
func (g *Graph) Edges() [][2]string {
	edges := make([][2]string, 0)
	for u, vs := range g.succ {
		for v := range vs {
			edges = append(edges, [2]string{u, v})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i][0] != edges[j][0] {
			return edges[i][0] < edges[j][0]
		}
		return edges[i][1] < edges[j][1]
	})
	return edges
}

// Dependencies 返回节点的直接依赖（排序后）
func (g *Graph) Dependencies(id string) []string {
	deps := make([]string, 0, len(g.succ[id]))
	for v := range g.succ[id] {
		deps = append(deps, v)
	}
	sort.Strings(deps)
	return deps
}

// Dependents 返回直接依赖该节点的节点（排序后）
func (g *Graph) Dependents(id string) []string {
	dependents := make([]string, 0, len(g.pred[id]))
	for u := range g.pred[id] {
		dependents = append(dependents, u)
	}
	sort.Strings(dependents)
	return dependents
}

// Copy 返回图的深拷贝
func (g *Graph) Copy() *Graph {
	c := New()
	for id := range g.nodes {
		c.AddNode(id)
	}
	for u, vs := range g.succ {
		for v := range vs {
			c.AddEdge(u, v)
		}
	}
	return c
}

// Reverse 返回所有边方向反转后的新图
func (g *Graph) Reverse() *Graph {
	r := New()
	for id := range g.nodes {
		r.AddNode(id)
	}
	for u, vs := range g.succ {
		for v := range vs {
			r.AddEdge(v, u)
		}
	}
	return r
}

// Subgraph 返回仅保留 keep 中节点的导出子图（边两端均在 keep 中才保留）
func (g *Graph) Subgraph(keep map[string]struct{}) *Graph {
	s := New()
	for id := range g.nodes {
		if _, ok := keep[id]; ok {
			s.AddNode(id)
		}
	}
	for u, vs := range g.succ {
		if _, ok := keep[u]; !ok {
			continue
		}
		for v := range vs {
			if _, ok := keep[v]; ok {
				s.AddEdge(u, v)
			}
		}
	}
	return s
}

// Reachable 返回沿依赖边正向可达的节点集合（不含起点自身）
// 即 from 直接或间接依赖的全部节点；起点不存在时返回空集合。
func (g *Graph) Reachable(from string) map[string]struct{} {
	reached := make(map[string]struct{})
	if _, ok := g.nodes[from]; !ok {
		return reached
	}
	queue := []string{from}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for v := range g.succ[cur] {
			if _, ok := reached[v]; ok {
				continue
			}
			reached[v] = struct{}{}
			queue = append(queue, v)
		}
	}
	return reached
}

// ConnectedComponent 返回包含指定节点的弱连通分量节点集合（边视为无向）
func (g *Graph) ConnectedComponent(id string) map[string]struct{} {
	component := make(map[string]struct{})
	if _, ok := g.nodes[id]; !ok {
		return component
	}
	component[id] = struct{}{}
	queue := []string{id}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for v := range g.succ[cur] {
			if _, ok := component[v]; !ok {
				component[v] = struct{}{}
				queue = append(queue, v)
			}
		}
		for u := range g.pred[cur] {
			if _, ok := component[u]; !ok {
				component[u] = struct{}{}
				queue = append(queue, u)
			}
		}
	}
	return component
}

// Components 返回全部弱连通分量，每个分量是独立的子图拷贝
// 分量按各自最小节点的字典序排序，保证渲染结果稳定。
func (g *Graph) Components() []*Graph {
	visited := make(map[string]struct{})
	var components []*Graph
	for _, id := range g.Nodes() {
		if _, ok := visited[id]; ok {
			continue
		}
		member := g.ConnectedComponent(id)
		for m := range member {
			visited[m] = struct{}{}
		}
		components = append(components, g.Subgraph(member))
	}
	// Nodes()已排序，按遍历顺序得到的分量即按最小节点排序
	return components
}
