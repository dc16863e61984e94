package tree

import (
	"context"
	"fmt"

	"github.com/samber/lo"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	RBTreeStatsName = "xtree/rbtree"
)

// rbTreeStats carries the opt-in otel instruments of one tree. A nil
// receiver is a no-op, so the hot paths never branch on the option.
type rbTreeStats struct {
	attrs          attribute.Set
	nodeCount      metric.Int64ObservableGauge
	insertedCount  metric.Int64Counter
	removedCount   metric.Int64Counter
	duplicateCount metric.Int64Counter
	findCount      metric.Int64Counter
}

func (stats *rbTreeStats) RecordInsert() {
	if stats == nil {
		return
	}
	stats.insertedCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.attrs))
}

func (stats *rbTreeStats) RecordRemove() {
	if stats == nil {
		return
	}
	stats.removedCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.attrs))
}

func (stats *rbTreeStats) RecordDuplicate() {
	if stats == nil {
		return
	}
	stats.duplicateCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.attrs))
}

func (stats *rbTreeStats) RecordFind(hit bool) {
	if stats == nil {
		return
	}
	as := attribute.NewSet(
		attribute.Bool("rbtree.find.hit", hit),
	)
	stats.findCount.Add(context.Background(), 1, metric.WithAttributeSet(stats.attrs), metric.WithAttributeSet(as))
}

func newRBTreeStats(name string, size func() int64) *rbTreeStats {
	meterName := fmt.Sprintf("%s/%s", RBTreeStatsName, name)
	stats := &rbTreeStats{
		attrs: attribute.NewSet(
			attribute.String("rbtree.name", name),
		),
		insertedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"rbtree.inserted.count",
				metric.WithDescription("The number of nodes linked into the rbtree."),
			),
		),
		removedCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"rbtree.removed.count",
				metric.WithDescription("The number of nodes unlinked from the rbtree."),
			),
		),
		duplicateCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"rbtree.duplicate.count",
				metric.WithDescription("The number of rejected duplicate-key insertions."),
			),
		),
		findCount: lo.Must[metric.Int64Counter](otel.Meter(meterName).
			Int64Counter(
				"rbtree.find.count",
				metric.WithDescription("The number of key lookups."),
			),
		),
	}
	stats.nodeCount = lo.Must[metric.Int64ObservableGauge](otel.Meter(meterName).
		Int64ObservableGauge(
			"rbtree.node.count",
			metric.WithDescription("The number of nodes currently linked into the rbtree."),
			metric.WithInt64Callback(func(ctx context.Context, ob metric.Int64Observer) error {
				ob.Observe(size(), metric.WithAttributeSet(stats.attrs))
				return nil
			}),
		),
	)
	return stats
}
