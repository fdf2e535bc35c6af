package spawngroup

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestMapStream_AppliesFnConcurrentlyAndCloses(t *testing.T) {
	in := make(chan int)
	results, errs := MapStream(context.Background(), in, func(ctx context.Context, n int) (int, error) {
		if n == 0 {
			return 0, errFive
		}
		return n * n, nil
	})

	go func() {
		for _, n := range []int{1, 2, 3, 0} {
			in <- n
		}
		close(in)
	}()

	var (
		squares    []int
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
			squares = append(squares, v)
		case e, ok := <-errs:
			if !ok {
				errsOpen = false
				errs = nil
				continue
			}
			require.ErrorIs(t, e, errFive)
			errorCount++
		case <-time.After(time.Second):
			t.Fatal("MapStream did not close its channels in time")
		}
	}

	sort.Ints(squares)
	require.Equal(t, []int{1, 4, 9}, squares)
	require.Equal(t, 1, errorCount)
}
