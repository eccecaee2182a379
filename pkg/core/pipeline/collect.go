package pipeline

import "fmt"

// StagePair 目标解析结果：命中的Stage与可选的子路径
// Path为空表示目标指向整个Stage；非空表示目标是该Stage输出下的一个路径。
type StagePair struct {
	Stage *Stage
	Path  string
}

// CollectGranular 将用户目标字符串解析为(Stage, 子路径)对列表
// 解析顺序：规范化地址精确匹配、Stage名称匹配、foreach/matrix模板名匹配、
// 输出路径匹配（精确、目录前缀、输出目录内部）。均未命中时返回解析错误。
func (idx *Index) CollectGranular(target string) ([]StagePair, error) {
	if target == "" {
		return nil, nil
	}

	if s := idx.FindStage(target); s != nil {
		return []StagePair{{Stage: s}}, nil
	}

	// 名称匹配：非根定义文件中的Stage也可以用裸名称寻址
	var pairs []StagePair
	for _, s := range idx.stages {
		if !s.Metafile && s.Name == target {
			pairs = append(pairs, StagePair{Stage: s})
		}
	}
	if len(pairs) > 0 {
		return pairs, nil
	}

	// 模板名匹配：裸模板名解析为该模板生成的全部Stage
	for _, s := range idx.stages {
		if s.IsGenerated() && s.TemplateName() == target {
			pairs = append(pairs, StagePair{Stage: s})
		}
	}
	if len(pairs) > 0 {
		return pairs, nil
	}

	// 路径匹配
	p := cleanPath(target)
	if o, ok := idx.outs[p]; ok {
		return []StagePair{{Stage: o.Stage, Path: p}}, nil
	}
	if outs := idx.OutsUnder(p); len(outs) > 0 {
		seen := make(map[*Stage]struct{})
		for _, o := range outs {
			if _, ok := seen[o.Stage]; ok {
				continue
			}
			seen[o.Stage] = struct{}{}
			pairs = append(pairs, StagePair{Stage: o.Stage, Path: p})
		}
		return pairs, nil
	}
	if o, ok := idx.OutContaining(p); ok {
		return []StagePair{{Stage: o.Stage, Path: p}}, nil
	}

	return nil, fmt.Errorf("目标 '%s' 未匹配任何Stage或输出", target)
}
