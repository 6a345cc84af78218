package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskwell/taskwell-api/internal/store"
)

func TestListParams_Normalize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   store.ListParams
		want store.ListParams
	}{
		{
			name: "zero value gets defaults",
			in:   store.ListParams{},
			want: store.ListParams{Page: 1, Limit: store.DefaultListLimit},
		},
		{
			name: "negative page and limit are clamped",
			in:   store.ListParams{Page: -3, Limit: -1},
			want: store.ListParams{Page: 1, Limit: store.DefaultListLimit},
		},
		{
			name: "valid values pass through",
			in:   store.ListParams{Page: 4, Limit: 25, Search: "milk", Status: "done"},
			want: store.ListParams{Page: 4, Limit: 25, Search: "milk", Status: "done"},
		},
		{
			name: "search and status are trimmed",
			in:   store.ListParams{Page: 1, Limit: 10, Search: " milk ", Status: " all "},
			want: store.ListParams{Page: 1, Limit: 10, Search: "milk", Status: "all"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Normalize())
		})
	}
}

func TestListParams_Offset(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 0, store.ListParams{Page: 1, Limit: 10}.Offset())
	assert.Equal(t, 10, store.ListParams{Page: 2, Limit: 10}.Offset())
	assert.Equal(t, 42, store.ListParams{Page: 7, Limit: 7}.Offset())
}

func TestListParams_HasStatusFilter(t *testing.T) {
	t.Parallel()

	assert.False(t, store.ListParams{}.HasStatusFilter())
	assert.False(t, store.ListParams{Status: store.StatusAll}.HasStatusFilter())
	assert.True(t, store.ListParams{Status: "pending"}.HasStatusFilter())
	assert.True(t, store.ListParams{Status: "done"}.HasStatusFilter())
}
