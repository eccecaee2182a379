package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/LENAX/pipedag/pkg/cli/output"
	"github.com/LENAX/pipedag/pkg/config"
	"github.com/LENAX/pipedag/pkg/core/dag"
	"github.com/LENAX/pipedag/pkg/core/pipeline"
	"github.com/LENAX/pipedag/pkg/core/render"
)

var (
	dagDot      bool
	dagMermaid  bool
	dagMarkdown bool
	dagCollapse bool
	dagFull     bool
	dagOuts     bool
)

// dagCmd dag命令
var dagCmd = &cobra.Command{
	Use:   "dag [target]",
	Short: "可视化Pipeline DAG",
	Long: `可视化工作区Pipeline的依赖关系DAG。

默认渲染为ASCII示意图；不指定目标时展示全部Stage。

示例：
  # 渲染整个DAG
  pipedag dag

  # 仅展示train及其上游依赖
  pipedag dag train

  # 展示train所在的完整Pipeline
  pipedag dag --full train

  # 输出Graphviz DOT格式
  pipedag dag --dot

  # 折叠foreach/matrix生成的Stage
  pipedag dag --collapse-foreach-matrix`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts := dag.Options{
			Full:                  dagFull,
			Outs:                  dagOuts,
			CollapseForeachMatrix: dagCollapse,
		}
		if len(args) > 0 {
			opts.Target = args[0]
		}

		// 互斥选项在任何图计算之前校验
		if err := opts.Validate(); err != nil {
			output.Error("参数错误: %v", err)
			return err
		}

		cfgPath := configPath
		if cfgPath == "" {
			cfgPath = filepath.Join(workDir, config.DefaultConfigFile)
		}
		cfg, err := config.Load(cfgPath)
		if err != nil {
			output.Error("加载配置失败: %v", err)
			return err
		}
		if err := config.Validate(cfg); err != nil {
			output.Error("配置不合法: %v", err)
			return err
		}
		output.SetColorMode(cfg.Color)

		idx, err := pipeline.Load(workDir, cfg.PipelineFile)
		if err != nil {
			output.Error("载入Pipeline失败: %v", err)
			return err
		}

		g, err := dag.Build(idx, opts)
		if err != nil {
			output.Error("构建DAG失败: %v", err)
			return err
		}

		switch {
		case dagDot:
			output.Print(render.Dot(g))
		case dagMermaid || dagMarkdown:
			output.Print(render.Mermaid(g, dagMarkdown))
		default:
			output.Print(render.Ascii(g))
		}
		return nil
	},
}

func init() {
	dagCmd.Flags().BoolVar(&dagDot, "dot", false, "输出Graphviz DOT格式")
	dagCmd.Flags().BoolVar(&dagMermaid, "mermaid", false, "输出Mermaid格式")
	dagCmd.Flags().BoolVar(&dagMarkdown, "md", false, "输出Mermaid格式并包裹Markdown围栏")
	dagCmd.Flags().BoolVar(&dagCollapse, "collapse-foreach-matrix", false, "将foreach/matrix生成的Stage折叠为单个节点")
	dagCmd.Flags().BoolVar(&dagFull, "full", false, "展示目标所在的完整Pipeline，而非仅上游依赖")
	dagCmd.Flags().BoolVarP(&dagOuts, "outs", "o", false, "展示输出级DAG而非Stage级DAG")

	dagCmd.SilenceUsage = true
	dagCmd.SilenceErrors = true
}
