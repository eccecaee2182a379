package pipeline

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"

	"gopkg.in/yaml.v3"
)

// interpVar 模板体中的替换变量 ${item} / ${key} / ${item.字段}
var interpVar = regexp.MustCompile(`\$\{([^}]+)\}`)

// buildStages 将一个Stage定义展开为一个或多个Stage
// 普通定义产生单个Stage；foreach/matrix模板按实例键展开为 名称@键 的生成Stage。
func buildStages(relpath, name string, cfg *StageConfig) ([]*Stage, error) {
	if cfg.Foreach.IsZero() && cfg.Matrix == nil {
		if cfg.Do != nil {
			return nil, fmt.Errorf("stage '%s' 定义了do但缺少foreach/matrix", name)
		}
		return []*Stage{newStage(relpath, name, cfg)}, nil
	}
	if cfg.Do == nil {
		return nil, fmt.Errorf("stage '%s' 定义了foreach/matrix但缺少do", name)
	}
	if !cfg.Foreach.IsZero() && cfg.Matrix != nil {
		return nil, fmt.Errorf("stage '%s' 不能同时定义foreach和matrix", name)
	}
	if !cfg.Foreach.IsZero() {
		return expandForeach(relpath, name, cfg)
	}
	return expandMatrix(relpath, name, cfg)
}

func newStage(relpath, name string, cfg *StageConfig) *Stage {
	return &Stage{
		Name: name,
		Path: relpath,
		Cmd:  cfg.Cmd,
		Deps: append([]string(nil), cfg.Deps...),
		Outs: paths(cfg.Outs),
	}
}

// expandForeach 按foreach迭代源展开模板
// 迭代源为映射时实例键取映射键；为标量序列时取元素值；为映射序列时取元素下标。
func expandForeach(relpath, name string, cfg *StageConfig) ([]*Stage, error) {
	src := &cfg.Foreach
	if src.Kind == yaml.DocumentNode && len(src.Content) == 1 {
		src = src.Content[0]
	}

	var stages []*Stage
	add := func(key string, item *yaml.Node) error {
		ctx, err := itemContext(item)
		if err != nil {
			return fmt.Errorf("stage '%s': %w", name, err)
		}
		ctx["key"] = key
		s, err := interpolateStage(relpath, name+JoinToken+key, cfg.Do, ctx)
		if err != nil {
			return err
		}
		stages = append(stages, s)
		return nil
	}

	switch src.Kind {
	case yaml.MappingNode:
		for i := 0; i+1 < len(src.Content); i += 2 {
			if err := add(src.Content[i].Value, src.Content[i+1]); err != nil {
				return nil, err
			}
		}
	case yaml.SequenceNode:
		for i, item := range src.Content {
			key := strconv.Itoa(i)
			if item.Kind == yaml.ScalarNode {
				key = item.Value
			}
			if err := add(key, item); err != nil {
				return nil, err
			}
		}
	default:
		return nil, fmt.Errorf("stage '%s': foreach必须是序列或映射", name)
	}
	return stages, nil
}

// expandMatrix 按matrix各轴的笛卡尔积展开模板
// 实例键为各轴取值按轴名字典序以'-'连接。
func expandMatrix(relpath, name string, cfg *StageConfig) ([]*Stage, error) {
	axes := make([]string, 0, len(cfg.Matrix))
	for axis := range cfg.Matrix {
		if len(cfg.Matrix[axis]) == 0 {
			return nil, fmt.Errorf("stage '%s': matrix轴 '%s' 不能为空", name, axis)
		}
		axes = append(axes, axis)
	}
	if len(axes) == 0 {
		return nil, fmt.Errorf("stage '%s': matrix不能为空", name)
	}
	sort.Strings(axes)

	var stages []*Stage
	ctx := make(map[string]string)
	var walk func(depth int, keyParts []string) error
	walk = func(depth int, keyParts []string) error {
		if depth == len(axes) {
			key := ""
			for i, p := range keyParts {
				if i > 0 {
					key += "-"
				}
				key += p
			}
			leafCtx := copyContext(ctx)
			leafCtx["key"] = key
			s, err := interpolateStage(relpath, name+JoinToken+key, cfg.Do, leafCtx)
			if err != nil {
				return err
			}
			stages = append(stages, s)
			return nil
		}
		axis := axes[depth]
		for _, v := range cfg.Matrix[axis] {
			val := fmt.Sprint(v)
			ctx["item."+axis] = val
			if err := walk(depth+1, append(keyParts, val)); err != nil {
				return err
			}
		}
		return nil
	}
	if err := walk(0, nil); err != nil {
		return nil, err
	}
	return stages, nil
}

// itemContext 将迭代元素转换为替换上下文
// 标量元素提供 ${item}；映射元素提供 ${item.字段}。
func itemContext(item *yaml.Node) (map[string]string, error) {
	ctx := make(map[string]string)
	switch item.Kind {
	case yaml.ScalarNode:
		ctx["item"] = item.Value
	case yaml.MappingNode:
		for i := 0; i+1 < len(item.Content); i += 2 {
			k, v := item.Content[i], item.Content[i+1]
			if v.Kind != yaml.ScalarNode {
				return nil, fmt.Errorf("foreach元素字段 '%s' 必须是标量", k.Value)
			}
			ctx["item."+k.Value] = v.Value
		}
	default:
		return nil, fmt.Errorf("foreach元素必须是标量或映射（第%d行）", item.Line)
	}
	return ctx, nil
}

func copyContext(ctx map[string]string) map[string]string {
	c := make(map[string]string, len(ctx))
	for k, v := range ctx {
		c[k] = v
	}
	return c
}

// interpolateStage 对模板体应用替换上下文，生成具体Stage
func interpolateStage(relpath, name string, do *StageConfig, ctx map[string]string) (*Stage, error) {
	interp := func(s string) (string, error) {
		var missing string
		out := interpVar.ReplaceAllStringFunc(s, func(m string) string {
			v := m[2 : len(m)-1]
			if val, ok := ctx[v]; ok {
				return val
			}
			missing = v
			return m
		})
		if missing != "" {
			return "", fmt.Errorf("stage '%s': 未定义的替换变量 ${%s}", name, missing)
		}
		return out, nil
	}

	cmd, err := interp(do.Cmd)
	if err != nil {
		return nil, err
	}
	deps := make([]string, 0, len(do.Deps))
	for _, d := range do.Deps {
		v, err := interp(d)
		if err != nil {
			return nil, err
		}
		deps = append(deps, v)
	}
	outs := make([]string, 0, len(do.Outs))
	for _, o := range do.Outs {
		v, err := interp(o.Path)
		if err != nil {
			return nil, err
		}
		outs = append(outs, v)
	}
	return &Stage{Name: name, Path: relpath, Cmd: cmd, Deps: deps, Outs: outs}, nil
}
