package spawngroup

import (
	"context"
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCollect_GathersValuesAndJoinsErrors(t *testing.T) {
	fns := []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 0, errThree },
		func(ctx context.Context) (int, error) { return 2, nil },
		func(ctx context.Context) (int, error) { return 0, errFive },
	}

	values, err := Collect(context.Background(), fns)

	sort.Ints(values)
	require.Equal(t, []int{1, 2}, values)
	require.ErrorIs(t, err, errThree)
	require.ErrorIs(t, err, errFive)
}

func TestCollect_EmptyInputReturnsNilNil(t *testing.T) {
	values, err := Collect[int](context.Background(), nil)
	require.Nil(t, values)
	require.NoError(t, err)
}

func TestCollect_AllSuccessesReturnsNilError(t *testing.T) {
	fns := []func(context.Context) (int, error){
		func(ctx context.Context) (int, error) { return 1, nil },
		func(ctx context.Context) (int, error) { return 2, nil },
	}

	values, err := Collect(context.Background(), fns)
	require.NoError(t, err)

	sort.Ints(values)
	require.Equal(t, []int{1, 2}, values)
	require.False(t, errors.Is(err, errThree))
}
