package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Load 加载工具配置文件
// 文件不存在时返回默认配置；存在但解析失败时返回错误。
// 未填写的字段补齐默认值。
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		// 若文件不存在，返回默认配置
		return Default(), nil
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	if cfg.PipelineFile == "" {
		cfg.PipelineFile = Default().PipelineFile
	}
	if cfg.Color == "" {
		cfg.Color = Default().Color
	}
	return cfg, nil
}
