package pipeline

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// FileConfig Pipeline定义文件结构（pipeline.yaml）
type FileConfig struct {
	Stages map[string]*StageConfig `yaml:"stages"`
}

// StageConfig 单个Stage定义，或foreach/matrix模板定义
type StageConfig struct {
	Cmd  string     `yaml:"cmd"`
	Deps []string   `yaml:"deps"`
	Outs []OutEntry `yaml:"outs"`

	// Foreach 模板迭代源：标量序列、映射序列或映射
	Foreach yaml.Node        `yaml:"foreach"`
	Matrix  map[string][]any `yaml:"matrix"`
	// Do 模板体，仅在定义了foreach/matrix时合法
	Do *StageConfig `yaml:"do"`
}

// MetafileConfig 单Stage元文件结构（*.dvc）
type MetafileConfig struct {
	Outs []OutEntry `yaml:"outs"`
	Deps []OutEntry `yaml:"deps"`
}

// OutEntry 输出/依赖条目，兼容三种YAML写法：
//   - data.xml
//   - data.xml: {cache: false}
//   - {path: data.xml, md5: ...}
type OutEntry struct {
	Path string
}

// UnmarshalYAML 实现yaml.Unmarshaler
func (e *OutEntry) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		e.Path = node.Value
		return nil
	case yaml.MappingNode:
		// {path: ...} 形式优先，否则取单键映射的键作为路径
		for i := 0; i+1 < len(node.Content); i += 2 {
			if node.Content[i].Value == "path" {
				e.Path = node.Content[i+1].Value
				return nil
			}
		}
		if len(node.Content) >= 2 {
			e.Path = node.Content[0].Value
			return nil
		}
	}
	return fmt.Errorf("无法解析输出条目（第%d行）", node.Line)
}

// paths 提取条目列表中的全部路径
func paths(entries []OutEntry) []string {
	ps := make([]string, 0, len(entries))
	for _, e := range entries {
		ps = append(ps, e.Path)
	}
	return ps
}
