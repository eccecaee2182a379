package main

import "github.com/LENAX/pipedag/pkg/cli/cmd"

// CLI工具入口
func main() {
	cmd.Execute()
}
