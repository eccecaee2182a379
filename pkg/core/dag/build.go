package dag

import (
	"github.com/LENAX/pipedag/pkg/core/graph"
	"github.com/LENAX/pipedag/pkg/core/pipeline"
)

// Build 构建最终用于渲染的DAG
// 流程：选项校验 -> 目标解析 -> 结构图重标号 -> 过滤 -> 可选的foreach/matrix折叠。
// 整个过程同步完成，不修改索引，每次调用返回全新的图。
func Build(idx *pipeline.Index, opts Options) (*graph.Graph, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	targets, err := CollectTargets(idx, opts.Target, opts.Outs)
	if err != nil {
		return nil, err
	}

	g := Transform(idx, opts.Outs)
	g = Filter(g, targets, opts.Full)
	if opts.CollapseForeachMatrix {
		g = CollapseForeachMatrix(g)
	}
	return g, nil
}
