package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGormStorePersistsAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenGormStore(path)
	require.NoError(t, err)

	s.Set("user", `{"id":1}`)
	s.Set("access_token", "abc")
	s.Remove("access_token")

	reopened, err := OpenGormStore(path)
	require.NoError(t, err)

	v, ok := reopened.Get("user")
	require.True(t, ok)
	require.Equal(t, `{"id":1}`, v)

	_, ok = reopened.Get("access_token")
	require.False(t, ok)
}

func TestGormStoreUpsert(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.db")

	s, err := OpenGormStore(path)
	require.NoError(t, err)

	s.Set("foodCourtCart", "[]")
	s.Set("foodCourtCart", `[{"dishId":1}]`)

	v, ok := s.Get("foodCourtCart")
	require.True(t, ok)
	require.Equal(t, `[{"dishId":1}]`, v)
}
