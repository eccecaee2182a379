package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// 全局参数
	workDir    string
	configPath string
)

// rootCmd 根命令
var rootCmd = &cobra.Command{
	Use:   "pipedag",
	Short: "Pipedag CLI - Pipeline DAG可视化工具",
	Long: `Pipedag CLI 是一个用于可视化数据Pipeline依赖关系的命令行工具。

支持的功能：
  - 从工作区载入Pipeline定义（pipeline.yaml与*.dvc元文件）
  - 按目标Stage或输出过滤DAG
  - 折叠foreach/matrix生成的Stage
  - 渲染为ASCII、Graphviz DOT或Mermaid流程图

使用示例：
  # 渲染整个工作区的DAG
  pipedag dag

  # 仅展示train的上游依赖
  pipedag dag train

  # 输出Mermaid格式（Markdown围栏）
  pipedag dag --md

  # 展示输出级DAG
  pipedag dag --outs data/model.pkl`,
}

// Execute 执行根命令
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// 全局参数
	rootCmd.PersistentFlags().StringVarP(&workDir, "cwd", "C", ".", "工作区目录")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "配置文件路径（默认为工作区下的.pipedag.yaml）")

	// 添加子命令
	rootCmd.AddCommand(dagCmd)
	rootCmd.AddCommand(versionCmd)
}
