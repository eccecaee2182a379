package graph

// FindCycle 使用DFS检测图中是否存在循环依赖（三色标记法）
// 0=白色（未访问），1=灰色（正在访问），2=黑色（已访问）
// 存在环路时返回环路路径（首尾为同一节点），无环返回nil。
func (g *Graph) FindCycle() []string {
	color := make(map[string]int)
	parent := make(map[string]string)
	var cyclePath []string

	var dfs func(id string) bool
	dfs = func(id string) bool {
		// 标记为灰色（正在访问）
		color[id] = 1

		for _, v := range g.Dependencies(id) {
			switch color[v] {
			case 0:
				// 白色节点，递归访问
				parent[v] = id
				if dfs(v) {
					return true
				}
			case 1:
				// 灰色节点，说明存在后向边，检测到循环
				cyclePath = append(cyclePath, v)
				cur := id
				for cur != v && cur != "" {
					cyclePath = append(cyclePath, cur)
					cur = parent[cur]
				}
				cyclePath = append(cyclePath, v) // 闭合循环
				return true
			}
			// 黑色节点，跳过（已访问且无循环）
		}

		// 标记为黑色（已访问）
		color[id] = 2
		return false
	}

	for _, id := range g.Nodes() {
		if color[id] == 0 {
			if dfs(id) {
				return cyclePath
			}
		}
	}
	return nil
}
