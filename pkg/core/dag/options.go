package dag

import "errors"

// ErrOutsWithCollapse 输出模式与foreach/matrix折叠互斥时的配置错误
// 这是核心内部唯一面向用户的校验错误，在任何图计算开始之前抛出。
var ErrOutsWithCollapse = errors.New("--outs 与 --collapse-foreach-matrix 互斥，不能同时使用")

// Options DAG构建选项
type Options struct {
	Target                string // 目标Stage或输出路径，为空表示不过滤
	Full                  bool   // 展示目标所在的完整Pipeline，而非仅上游
	Outs                  bool   // 展示输出级DAG而非Stage级DAG
	CollapseForeachMatrix bool   // 将foreach/matrix生成的Stage折叠为单个节点
}

// Validate 校验选项组合合法性
func (o Options) Validate() error {
	if o.Outs && o.CollapseForeachMatrix {
		return ErrOutsWithCollapse
	}
	return nil
}
