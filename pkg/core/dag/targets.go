package dag

import "github.com/LENAX/pipedag/pkg/core/pipeline"

// CollectTargets 将用户目标字符串解析为用于过滤的节点标识列表（有序去重）
// 目标为空时返回nil（表示不过滤）；解析失败的错误原样向上传递。
// outs为false时每个命中的Stage贡献其规范化地址；
// 为true时无子路径的命中贡献该Stage的全部输出路径，
// 有子路径的命中贡献前缀索引中位于该子路径之下的全部输出路径，
// 子路径位于某目录输出内部时则贡献拥有它的目录输出。
func CollectTargets(idx *pipeline.Index, target string, outs bool) ([]string, error) {
	if target == "" {
		return nil, nil
	}

	pairs, err := idx.CollectGranular(target)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	var targets []string
	add := func(id string) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		targets = append(targets, id)
	}

	for _, pair := range pairs {
		if !outs {
			add(pair.Stage.Addressing())
			continue
		}
		if pair.Path == "" {
			for _, p := range pair.Stage.Outs {
				add(p)
			}
			continue
		}
		outs := idx.OutsUnder(pair.Path)
		if len(outs) == 0 {
			// 子路径位于某目录输出内部时，落到拥有它的输出
			if o, ok := idx.OutContaining(pair.Path); ok {
				add(o.Path)
			}
			continue
		}
		for _, o := range outs {
			add(o.Path)
		}
	}
	return targets, nil
}
