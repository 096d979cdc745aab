package catalog

import (
	"context"
	"strings"
	"sync"
	"testing"

	"dealerhub/internal/database"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeIntRow struct{ n int }

func (r *fakeIntRow) Scan(dest ...any) error {
	*dest[0].(*int) = r.n
	return nil
}

func TestEnsureSkipsWhenNotEmpty(t *testing.T) {
	execCalls := 0
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			require.Contains(t, sql, "count")
			return &fakeIntRow{n: 5}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			execCalls++
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, Ensure(context.Background(), db))
	require.Zero(t, execCalls)
}

func TestEnsureSeedsWhenEmpty(t *testing.T) {
	var (
		mu         sync.Mutex
		makeCalls  int
		modelCalls int
	)
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			mu.Lock()
			defer mu.Unlock()
			if strings.Contains(sql, "count") {
				return &fakeIntRow{n: 0}
			}
			makeCalls++
			return &fakeIntRow{n: makeCalls}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			mu.Lock()
			defer mu.Unlock()
			modelCalls++
			return pgconn.CommandTag{}, nil
		},
	}
	require.NoError(t, Ensure(context.Background(), db))
	// fixture 內含 5 個品牌、15 個型號
	require.Equal(t, 5, makeCalls)
	require.Equal(t, 15, modelCalls)
}

func TestEnsureConcurrentFirstCalls(t *testing.T) {
	var (
		mu        sync.Mutex
		seeded    bool
		makeCalls int
	)
	db := &database.FakeDB{
		QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
			mu.Lock()
			defer mu.Unlock()
			if strings.Contains(sql, "count") {
				if seeded {
					return &fakeIntRow{n: 5}
				}
				return &fakeIntRow{n: 0}
			}
			makeCalls++
			if makeCalls == 5 {
				seeded = true
			}
			return &fakeIntRow{n: makeCalls}
		},
		ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
			return pgconn.CommandTag{}, nil
		},
	}

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			require.NoError(t, Ensure(context.Background(), db))
		}()
	}
	wg.Wait()
	// 併發首次呼叫只會有一個真正執行種子載入
	require.Equal(t, 5, makeCalls)
}
