package tree

import (
	"fmt"
	"sync"
	"testing"

	"github.com/panjf2000/ants/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/benz9527/xtree/lib/infra"
)

type antsZapLogger struct {
	logger *zap.SugaredLogger
}

func (l *antsZapLogger) Printf(format string, args ...any) {
	if l == nil || l.logger == nil {
		return
	}
	l.logger.Errorf(format, args...)
}

func stressLifecycle(total int) error {
	tree, err := NewRBTree[int, struct{}](infra.OrderedKeyCompare[int])
	if err != nil {
		return err
	}

	nodes := make([]*RBNode[int, struct{}], total)
	for i := 0; i < total; i++ {
		key := i - 42
		if i%2 == 1 {
			key = i + 42
		}
		nodes[i] = &RBNode[int, struct{}]{}
		if err := tree.Insert(key, nodes[i]); err != nil {
			return err
		}
	}
	if err := Validate(tree); err != nil {
		return err
	}

	for i := 0; i < total; i += 3 {
		if err := tree.Remove(nodes[i]); err != nil {
			return err
		}
	}
	if err := Validate(tree); err != nil {
		return err
	}

	for !tree.IsEmpty() {
		if _, err := tree.RemoveMin(); err != nil {
			return err
		}
	}
	if tree.Len() != 0 {
		return fmt.Errorf("stress tree not drained, %d left", tree.Len())
	}
	return nil
}

// Every worker owns a private tree, concurrency lives outside the
// tree handle, exactly the exclusive-access contract the library
// demands.
func TestRBTreeStress_PrivateTreePerWorker(t *testing.T) {
	logger, err := zap.NewDevelopment()
	require.NoError(t, err)
	defer func() { _ = logger.Sync() }()

	pool, err := ants.NewPool(8,
		ants.WithPreAlloc(true),
		ants.WithLogger(&antsZapLogger{logger: logger.Named("Ants").Sugar()}),
	)
	require.NoError(t, err)
	defer pool.Release()

	const workers = 32
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		workErr error
	)
	for i := 0; i < workers; i++ {
		total := 256 + i*16
		wg.Add(1)
		require.NoError(t, pool.Submit(func() {
			defer wg.Done()
			if err := stressLifecycle(total); err != nil {
				mu.Lock()
				workErr = err
				mu.Unlock()
			}
		}))
	}
	wg.Wait()
	require.NoError(t, workErr)
}
