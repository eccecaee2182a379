package config

import (
	"fmt"
	"strings"
)

// Validate 校验工具配置合法性
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("配置不能为空")
	}

	if cfg.PipelineFile == "" {
		return fmt.Errorf("pipeline_file不能为空")
	}
	if strings.ContainsAny(cfg.PipelineFile, `/\`) {
		return fmt.Errorf("pipeline_file必须是文件名，不能包含路径分隔符")
	}

	validColors := map[string]bool{
		"auto":   true,
		"always": true,
		"never":  true,
	}
	if !validColors[cfg.Color] {
		return fmt.Errorf("color必须是auto/always/never之一")
	}

	return nil
}
