package helpers

import (
	"testing"

	"koreatrip/store"
)

func NewTestStore(t *testing.T) *store.MemoryStore {
	t.Helper()

	s := store.NewMemoryStore()

	t.Cleanup(func() {
		_ = s.Close()
	})

	return s
}
