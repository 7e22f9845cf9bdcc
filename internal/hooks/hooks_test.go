package hooks

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errFetchFailed = errors.New("fetch failed")

func TestHookFetchOutcomes(t *testing.T) {
	testCases := []struct {
		name         string
		fetch        func() ([]string, error)
		expectedData []string
		expectedErr  error
	}{
		{
			name: "successful fetch",
			fetch: func() ([]string, error) {
				return []string{"a", "b"}, nil
			},
			expectedData: []string{"a", "b"},
		},
		{
			name: "failed fetch",
			fetch: func() ([]string, error) {
				return nil, errFetchFailed
			},
			expectedErr: errFetchFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hook := New(tc.fetch)
			snapshot := hook.Snapshot()

			assert.False(t, snapshot.Loading)

			if tc.expectedErr != nil {
				require.ErrorIs(t, snapshot.Err, tc.expectedErr)
				assert.Nil(t, snapshot.Data)
			} else {
				require.NoError(t, snapshot.Err)
				assert.Equal(t, tc.expectedData, snapshot.Data)
			}
		})
	}
}

func TestHookRefetchReplacesState(t *testing.T) {
	calls := 0
	hook := New(func() (int, error) {
		calls++
		if calls == 1 {
			return 0, errFetchFailed
		}

		return calls, nil
	})

	snapshot := hook.Snapshot()
	require.ErrorIs(t, snapshot.Err, errFetchFailed)

	// A successful refetch clears the previous error.
	hook.Refetch()
	snapshot = hook.Snapshot()
	require.NoError(t, snapshot.Err)
	assert.Equal(t, 2, snapshot.Data)

	hook.Refetch()
	snapshot = hook.Snapshot()
	assert.Equal(t, 3, snapshot.Data)
}

func TestHookCloseDiscardsLaterResults(t *testing.T) {
	hook := New(func() (string, error) {
		return "live", nil
	})
	require.Equal(t, "live", hook.Snapshot().Data)

	hook.Close()
	hook.Refetch()

	// The pre-close value survives; the refetch result was discarded.
	snapshot := hook.Snapshot()
	assert.Equal(t, "live", snapshot.Data)
	assert.False(t, snapshot.Loading)
}

func TestKeyedFetchPerKey(t *testing.T) {
	data := map[string]string{
		"jane-morrison": "Jane Morrison",
		"casey-reed":    "Casey Reed",
	}

	fetches := 0
	hook := NewKeyed("jane-morrison", func(key string) (string, error) {
		fetches++

		name, ok := data[key]
		if !ok {
			return "", errFetchFailed
		}

		return name, nil
	})

	snapshot := hook.Snapshot()
	require.NoError(t, snapshot.Err)
	assert.Equal(t, "Jane Morrison", snapshot.Data)

	// Re-setting the same key does not fetch again.
	hook.SetKey("jane-morrison")
	assert.Equal(t, 1, fetches)

	hook.SetKey("casey-reed")
	assert.Equal(t, 2, fetches)
	assert.Equal(t, "Casey Reed", hook.Snapshot().Data)

	hook.SetKey("nobody")
	snapshot = hook.Snapshot()
	require.ErrorIs(t, snapshot.Err, errFetchFailed)
	assert.Empty(t, snapshot.Data)
}

func TestKeyedEmptyKeySettlesWithoutFetch(t *testing.T) {
	fetches := 0
	hook := NewKeyed("", func(_ string) (string, error) {
		fetches++
		return "never", nil
	})

	snapshot := hook.Snapshot()
	assert.False(t, snapshot.Loading)
	assert.NoError(t, snapshot.Err)
	assert.Empty(t, snapshot.Data)
	assert.Zero(t, fetches)

	// Refetch on the empty key stays a no-op.
	hook.Refetch()
	assert.Zero(t, fetches)
}
