package pipeline

import "strings"

const (
	// JoinToken foreach/matrix生成Stage名称中的保留连接符（模板名@实例键）
	JoinToken = "@"

	// MetafileSuffix 单Stage元文件的保留后缀
	// 以该后缀结尾的节点不参与foreach/matrix折叠。
	MetafileSuffix = ".dvc"

	// DefaultPipelineFile 默认的Pipeline定义文件名
	DefaultPipelineFile = "pipeline.yaml"
)

// Stage Pipeline中的一个阶段：消费deps、生产outs
type Stage struct {
	Name string // Stage名称；foreach/matrix生成的为 模板名@实例键
	Path string // 定义文件的工作区相对路径（统一使用斜杠）
	Cmd  string
	Deps []string // 消费的路径（相对工作区）
	Outs []string // 生产的路径（相对工作区）

	// Metafile 标记该Stage来自单Stage元文件（*.dvc），寻址时直接使用文件路径
	Metafile bool
}

// Addressing 返回Stage的规范化地址，作为图节点的唯一标识
//   - 元文件Stage：文件相对路径（如 data/raw.dvc）
//   - 根目录 pipeline.yaml 中的Stage：Stage名称
//   - 其他定义文件中的Stage：相对路径:名称（如 sub/pipeline.yaml:train）
func (s *Stage) Addressing() string {
	if s.Metafile {
		return s.Path
	}
	if s.Path == "" || s.Path == DefaultPipelineFile {
		return s.Name
	}
	return s.Path + ":" + s.Name
}

// IsGenerated 判断Stage是否由foreach/matrix模板生成
func (s *Stage) IsGenerated() bool {
	return !s.Metafile && strings.Contains(s.Name, JoinToken)
}

// TemplateName 返回生成Stage的模板名；非生成Stage返回自身名称
func (s *Stage) TemplateName() string {
	if !s.IsGenerated() {
		return s.Name
	}
	return s.Name[:strings.Index(s.Name, JoinToken)]
}
