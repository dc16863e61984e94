package tree

import (
	"log/slog"
	"os"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/sdk/metric"
)

type RBTreeOpt[K, O any] func(*rbTree[K, O])

// WithRBTreeOrderCtx attaches an opaque ordering context handed back
// verbatim to every comparator call, e.g. a collation table or a sort
// direction flag. It is fixed at construction time, swapping the
// context under a populated tree breaks the total order.
func WithRBTreeOrderCtx[K, O any](orderCtx any) RBTreeOpt[K, O] {
	return func(tree *rbTree[K, O]) {
		tree.orderCtx = orderCtx
	}
}

// WithRBTreeName labels the tree in the exported metrics.
func WithRBTreeName[K, O any](name string) RBTreeOpt[K, O] {
	return func(tree *rbTree[K, O]) {
		if name == "" {
			slog.Warn("[x-rbtree options] ignore the blank tree name", "keep", tree.name)
			return
		}
		tree.name = name
	}
}

// WithRBTreeStats enables the per-tree otel instruments.
func WithRBTreeStats[K, O any]() RBTreeOpt[K, O] {
	return func(tree *rbTree[K, O]) {
		tree.isStatsEnabled = true
	}
}

func withRBTreeDebugStatsInit[K, O any](interval int64) RBTreeOpt[K, O] {
	return func(tree *rbTree[K, O]) {
		_, debugLogDisabled := os.LookupEnv("DISABLE_TEST_DEBUG_LOG")
		if debugLogDisabled {
			return
		}

		exp, err := stdoutmetric.New(
			stdoutmetric.WithWriter(os.Stdout),
		)
		if err != nil {
			panic(err)
		}
		mp := metric.NewMeterProvider(metric.WithReader(metric.NewPeriodicReader(exp, metric.WithInterval(time.Duration(interval)*time.Second))))
		otel.SetMeterProvider(mp)
	}
}
