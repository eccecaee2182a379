package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// 版本信息（编译时通过 -ldflags 注入）
var (
	Version   = "0.3.1"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// versionCmd version命令
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "显示版本信息",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("pipedag %s (commit %s, built %s)\n", Version, GitCommit, BuildTime)
	},
}
