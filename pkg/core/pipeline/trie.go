package pipeline

import (
	"sort"
	"strings"
)

// pathTrie 以路径分段为键的输出前缀索引
// 用于按目录前缀检索全部已知输出（目标解析时使用）。
type pathTrie struct {
	children map[string]*pathTrie
	out      *Output // 该节点路径恰好是一个输出时非nil
}

func newPathTrie() *pathTrie {
	return &pathTrie{children: make(map[string]*pathTrie)}
}

// insert 插入输出（按其路径分段）
func (t *pathTrie) insert(o *Output) {
	cur := t
	for _, part := range splitPath(o.Path) {
		child, ok := cur.children[part]
		if !ok {
			child = newPathTrie()
			cur.children[part] = child
		}
		cur = child
	}
	cur.out = o
}

// lookup 定位路径分段对应的子树，不存在返回nil
func (t *pathTrie) lookup(parts []string) *pathTrie {
	cur := t
	for _, part := range parts {
		child, ok := cur.children[part]
		if !ok {
			return nil
		}
		cur = child
	}
	return cur
}

// collect 收集子树内的全部输出，按路径字典序排序
func (t *pathTrie) collect() []*Output {
	var outs []*Output
	var walk func(n *pathTrie)
	walk = func(n *pathTrie) {
		if n.out != nil {
			outs = append(outs, n.out)
		}
		for _, child := range n.children {
			walk(child)
		}
	}
	walk(t)
	sort.Slice(outs, func(i, j int) bool { return outs[i].Path < outs[j].Path })
	return outs
}

// splitPath 将斜杠路径拆分为分段
func splitPath(p string) []string {
	p = strings.Trim(p, "/")
	if p == "" {
		return nil
	}
	return strings.Split(p, "/")
}
