package spawngroup

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCollectStream_ForwardsValuesAndErrorsThenCloses(t *testing.T) {
	in := make(chan func(context.Context) (int, error))
	results, errs := CollectStream(context.Background(), in)

	go func() {
		in <- func(ctx context.Context) (int, error) { return 1, nil }
		in <- func(ctx context.Context) (int, error) { return 0, errThree }
		in <- func(ctx context.Context) (int, error) { return 2, nil }
		close(in)
	}()

	var (
		values     []int
		errorCount int
	)

	resultsOpen, errsOpen := true, true
	for resultsOpen || errsOpen {
		select {
		case v, ok := <-results:
			if !ok {
				resultsOpen = false
				results = nil
				continue
			}
			values = append(values, v)
		case e, ok := <-errs:
			if !ok {
				errsOpen = false
				errs = nil
				continue
			}
			require.ErrorIs(t, e, errThree)
			errorCount++
		case <-time.After(time.Second):
			t.Fatal("CollectStream did not close its channels in time")
		}
	}

	sort.Ints(values)
	require.Equal(t, []int{1, 2}, values)
	require.Equal(t, 1, errorCount)
}
