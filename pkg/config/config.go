package config

// DefaultConfigFile 默认的工具配置文件名（位于工作区根目录）
const DefaultConfigFile = ".pipedag.yaml"

// Config pipedag工具配置
type Config struct {
	// PipelineFile Pipeline定义文件名，扫描工作区时按该名称收集
	PipelineFile string `yaml:"pipeline_file"`
	// Color 彩色输出开关: auto/always/never
	Color string `yaml:"color"`
}

// Default 返回默认配置
func Default() *Config {
	return &Config{
		PipelineFile: "pipeline.yaml",
		Color:        "auto",
	}
}
