package pipeline

// Output Stage生产的一个输出
type Output struct {
	Path  string // 工作区相对路径（统一使用斜杠）
	Stage *Stage // 生产该输出的Stage
}

func (o *Output) String() string {
	return o.Path
}
