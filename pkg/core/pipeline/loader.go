package pipeline

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Load 从工作区目录载入全部Pipeline定义并构建索引
// 收集目录树中的每个Pipeline定义文件与*.dvc元文件（跳过隐藏目录），
// 展开foreach/matrix模板后建立Stage索引与结构图。
// pipelineFile为空时使用DefaultPipelineFile。
func Load(dir, pipelineFile string) (*Index, error) {
	if pipelineFile == "" {
		pipelineFile = DefaultPipelineFile
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if path != dir && strings.HasPrefix(d.Name(), ".") {
				return filepath.SkipDir
			}
			return nil
		}
		if d.Name() == pipelineFile || strings.HasSuffix(d.Name(), MetafileSuffix) {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("扫描工作区失败: %w", err)
	}
	// WalkDir按字典序遍历，这里再排一次以保证索引顺序稳定
	sort.Strings(files)

	var stages []*Stage
	for _, path := range files {
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return nil, err
		}
		rel = filepath.ToSlash(rel)

		var loaded []*Stage
		if strings.HasSuffix(path, MetafileSuffix) {
			s, err := loadMetafile(path, rel)
			if err != nil {
				return nil, err
			}
			loaded = []*Stage{s}
		} else {
			loaded, err = loadPipelineFile(path, rel)
			if err != nil {
				return nil, err
			}
		}
		stages = append(stages, loaded...)
	}

	return NewIndex(stages)
}

// loadPipelineFile 解析一个pipeline.yaml定义文件
func loadPipelineFile(path, rel string) ([]*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取定义文件 '%s' 失败: %w", rel, err)
	}

	var cfg FileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析定义文件 '%s' 失败: %w", rel, err)
	}

	// map键无序，按名称排序保证展开顺序稳定
	names := make([]string, 0, len(cfg.Stages))
	for name := range cfg.Stages {
		names = append(names, name)
	}
	sort.Strings(names)

	var stages []*Stage
	for _, name := range names {
		sc := cfg.Stages[name]
		if sc == nil {
			return nil, fmt.Errorf("定义文件 '%s': stage '%s' 定义为空", rel, name)
		}
		built, err := buildStages(rel, name, sc)
		if err != nil {
			return nil, fmt.Errorf("定义文件 '%s': %w", rel, err)
		}
		stages = append(stages, built...)
	}
	return stages, nil
}

// loadMetafile 解析一个单Stage元文件（*.dvc）
func loadMetafile(path, rel string) (*Stage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取元文件 '%s' 失败: %w", rel, err)
	}

	var cfg MetafileConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("解析元文件 '%s' 失败: %w", rel, err)
	}

	return &Stage{
		Name:     rel,
		Path:     rel,
		Deps:     paths(cfg.Deps),
		Outs:     paths(cfg.Outs),
		Metafile: true,
	}, nil
}
