package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

// SetColorMode 设置彩色输出模式: auto/always/never
// auto模式由底层库根据终端自行判断。
func SetColorMode(mode string) {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}
}

// Print 将渲染结果写入标准输出（末尾保证换行）
func Print(text string) {
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	fmt.Fprint(os.Stdout, text)
}

// Success 输出成功消息
func Success(format string, args ...interface{}) {
	green := color.New(color.FgGreen, color.Bold)
	green.Fprintf(os.Stderr, "✅ "+format+"\n", args...)
}

// Error 输出错误消息
func Error(format string, args ...interface{}) {
	red := color.New(color.FgRed, color.Bold)
	red.Fprintf(os.Stderr, "❌ "+format+"\n", args...)
}

// Info 输出信息
func Info(format string, args ...interface{}) {
	cyan := color.New(color.FgCyan)
	cyan.Fprintf(os.Stderr, "ℹ️  "+format+"\n", args...)
}

// Warning 输出警告
func Warning(format string, args ...interface{}) {
	yellow := color.New(color.FgYellow)
	yellow.Fprintf(os.Stderr, "⚠️  "+format+"\n", args...)
}
