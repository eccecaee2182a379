package pipeline

import (
	"fmt"
	gopath "path"
	"strings"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// Index 工作区内全部Stage与输出的只读索引
// 载入时构建Stage级与输出级结构图，供后续变换、过滤与渲染使用。
type Index struct {
	stages []*Stage
	byAddr map[string]*Stage
	outs   map[string]*Output // 生产路径 -> 输出
	trie   *pathTrie

	stageEdges [][2]*Stage  // Stage -> 其依赖的生产Stage
	outEdges   [][2]*Output // 输出 -> 其依赖的上游输出
}

// NewIndex 从Stage列表构建索引
// 校验输出唯一性与地址唯一性，解析依赖边并检测循环依赖。
func NewIndex(stages []*Stage) (*Index, error) {
	idx := &Index{
		stages: stages,
		byAddr: make(map[string]*Stage, len(stages)),
		outs:   make(map[string]*Output),
		trie:   newPathTrie(),
	}

	for _, s := range stages {
		addr := s.Addressing()
		if prev, ok := idx.byAddr[addr]; ok && prev != s {
			return nil, fmt.Errorf("stage地址冲突: '%s'", addr)
		}
		idx.byAddr[addr] = s

		for i, p := range s.Outs {
			p = cleanPath(p)
			s.Outs[i] = p
			if prev, ok := idx.outs[p]; ok {
				return nil, fmt.Errorf("输出 '%s' 被多个Stage生产: %s 和 %s",
					p, prev.Stage.Addressing(), s.Addressing())
			}
			o := &Output{Path: p, Stage: s}
			idx.outs[p] = o
			idx.trie.insert(o)
		}
	}

	idx.buildEdges()

	// Stage级结构图必须无环
	g := graph.New()
	for _, s := range idx.stages {
		g.AddNode(s.Addressing())
	}
	for _, e := range idx.stageEdges {
		g.AddEdge(e[0].Addressing(), e[1].Addressing())
	}
	if cycle := g.FindCycle(); cycle != nil {
		return nil, fmt.Errorf("检测到循环依赖: %s", strings.Join(cycle, " -> "))
	}

	return idx, nil
}

// buildEdges 解析依赖关系，生成Stage级与输出级的结构边（集合语义去重）
func (idx *Index) buildEdges() {
	stageSeen := make(map[[2]string]struct{})
	outSeen := make(map[[2]string]struct{})

	for _, s := range idx.stages {
		for _, d := range s.Deps {
			for _, po := range idx.producersOf(cleanPath(d)) {
				if po.Stage == s {
					continue
				}
				se := [2]string{s.Addressing(), po.Stage.Addressing()}
				if _, ok := stageSeen[se]; !ok {
					stageSeen[se] = struct{}{}
					idx.stageEdges = append(idx.stageEdges, [2]*Stage{s, po.Stage})
				}
				for _, op := range s.Outs {
					o := idx.outs[op]
					oe := [2]string{o.Path, po.Path}
					if _, ok := outSeen[oe]; !ok {
						outSeen[oe] = struct{}{}
						idx.outEdges = append(idx.outEdges, [2]*Output{o, po})
					}
				}
			}
		}
	}
}

// producersOf 返回生产指定依赖路径的输出
// 依次尝试：精确匹配；依赖是目录时取其下全部输出；依赖位于某输出目录内部时取该输出。
func (idx *Index) producersOf(dep string) []*Output {
	if o, ok := idx.outs[dep]; ok {
		return []*Output{o}
	}
	if sub := idx.trie.lookup(splitPath(dep)); sub != nil {
		if outs := sub.collect(); len(outs) > 0 {
			return outs
		}
	}
	parts := splitPath(dep)
	for i := len(parts) - 1; i > 0; i-- {
		if o, ok := idx.outs[strings.Join(parts[:i], "/")]; ok {
			return []*Output{o}
		}
	}
	return nil
}

// Stages 返回全部Stage（载入顺序）
func (idx *Index) Stages() []*Stage {
	return append([]*Stage(nil), idx.stages...)
}

// FindStage 按规范化地址查找Stage，不存在返回nil
func (idx *Index) FindStage(address string) *Stage {
	return idx.byAddr[address]
}

// Outputs 返回全部输出，按路径字典序排序
func (idx *Index) Outputs() []*Output {
	return idx.trie.collect()
}

// Out 按路径精确查找输出
func (idx *Index) Out(path string) (*Output, bool) {
	o, ok := idx.outs[cleanPath(path)]
	return o, ok
}

// OutContaining 返回恰好生产该路径、或生产包含该路径的目录的输出
func (idx *Index) OutContaining(path string) (*Output, bool) {
	p := cleanPath(path)
	if o, ok := idx.outs[p]; ok {
		return o, true
	}
	parts := splitPath(p)
	for i := len(parts) - 1; i > 0; i-- {
		if o, ok := idx.outs[strings.Join(parts[:i], "/")]; ok {
			return o, true
		}
	}
	return nil, false
}

// OutsUnder 返回位于指定路径前缀之下的全部输出（按路径分段匹配，排序后）
func (idx *Index) OutsUnder(path string) []*Output {
	sub := idx.trie.lookup(splitPath(cleanPath(path)))
	if sub == nil {
		return nil
	}
	return sub.collect()
}

// StageEdges 返回Stage级结构边：(Stage, 其依赖的Stage)
func (idx *Index) StageEdges() [][2]*Stage {
	return append([][2]*Stage(nil), idx.stageEdges...)
}

// OutEdges 返回输出级结构边：(输出, 其依赖的上游输出)
func (idx *Index) OutEdges() [][2]*Output {
	return append([][2]*Output(nil), idx.outEdges...)
}

// cleanPath 规范化为相对slash路径
func cleanPath(p string) string {
	p = gopath.Clean(strings.ReplaceAll(p, "\\", "/"))
	return strings.TrimPrefix(p, "./")
}
