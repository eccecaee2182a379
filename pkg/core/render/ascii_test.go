package render

import (
	"strings"
	"testing"

	"github.com/LENAX/pipedag/pkg/core/graph"
)

// TestAscii_Chain 末端Stage画边框盒，依赖树形缩进展开
func TestAscii_Chain(t *testing.T) {
	g := graph.New()
	g.AddEdge("train", "prepare")
	g.AddEdge("prepare", "raw")

	got := Ascii(g)
	want := strings.Join([]string{
		"+-------+",
		"| train |",
		"+-------+",
		"└── prepare",
		"    └── raw",
	}, "\n")
	if got != want {
		t.Errorf("ASCII输出不符\n得到:\n%s\n期望:\n%s", got, want)
	}
}

// TestAscii_Branches 多个依赖按字典序排列，非末位用├──连接
func TestAscii_Branches(t *testing.T) {
	g := graph.New()
	g.AddEdge("eval", "train@a")
	g.AddEdge("eval", "train@b")
	g.AddEdge("train@a", "prepare")
	g.AddEdge("train@b", "prepare")

	got := Ascii(g)
	want := strings.Join([]string{
		"+------+",
		"| eval |",
		"+------+",
		"├── train@a",
		"│   └── prepare",
		"└── train@b",
		"    └── prepare",
	}, "\n")
	if got != want {
		t.Errorf("ASCII输出不符\n得到:\n%s\n期望:\n%s", got, want)
	}
}

// TestAscii_TwoPipelines 多条Pipeline以空行分隔，按最小节点排序
func TestAscii_TwoPipelines(t *testing.T) {
	g := graph.New()
	g.AddEdge("y", "x")
	g.AddEdge("b", "a")

	got := Ascii(g)
	want := strings.Join([]string{
		"+---+",
		"| b |",
		"+---+",
		"└── a",
		"",
		"+---+",
		"| y |",
		"+---+",
		"└── x",
	}, "\n")
	if got != want {
		t.Errorf("ASCII输出不符\n得到:\n%s\n期望:\n%s", got, want)
	}
}

// TestAscii_SelfLoop 折叠产生的自环以"..."截断，不无限展开
func TestAscii_SelfLoop(t *testing.T) {
	g := graph.New()
	g.AddEdge("train", "train")

	got := Ascii(g)
	want := strings.Join([]string{
		"+-------+",
		"| train |",
		"+-------+",
		"└── train ...",
	}, "\n")
	if got != want {
		t.Errorf("ASCII输出不符\n得到:\n%s\n期望:\n%s", got, want)
	}
}

// TestAscii_SinklessComponent 自环让分量没有末端节点时，
// 末端树覆盖不到的节点补为额外的根，任何节点和边都不丢失
func TestAscii_SinklessComponent(t *testing.T) {
	g := graph.New()
	g.AddEdge("train", "train")
	g.AddEdge("train", "prepare")

	got := Ascii(g)
	want := strings.Join([]string{
		"+---------+",
		"| prepare |",
		"+---------+",
		"",
		"+-------+",
		"| train |",
		"+-------+",
		"├── prepare",
		"└── train ...",
	}, "\n")
	if got != want {
		t.Errorf("ASCII输出不符\n得到:\n%s\n期望:\n%s", got, want)
	}
}

// TestAscii_Deterministic 同一输入多次渲染结果一致
func TestAscii_Deterministic(t *testing.T) {
	g := graph.New()
	g.AddEdge("eval", "train@a")
	g.AddEdge("eval", "train@b")
	g.AddEdge("report", "eval")

	first := Ascii(g)
	for i := 0; i < 10; i++ {
		if got := Ascii(g); got != first {
			t.Fatal("渲染结果不稳定")
		}
	}
}
