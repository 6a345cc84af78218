package api_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taskwell/taskwell-api/internal/api"
)

func TestNewPagination(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		page     int
		limit    int
		returned int
		total    int
		want     api.Pagination
	}{
		{
			name: "first of several pages",
			page: 1, limit: 10, returned: 10, total: 25,
			want: api.Pagination{CurrentPage: 1, TotalPages: 3, TotalTasks: 25, HasNext: true, HasPrev: false},
		},
		{
			name: "middle page",
			page: 2, limit: 10, returned: 10, total: 25,
			want: api.Pagination{CurrentPage: 2, TotalPages: 3, TotalTasks: 25, HasNext: true, HasPrev: true},
		},
		{
			name: "last partial page",
			page: 3, limit: 10, returned: 5, total: 25,
			want: api.Pagination{CurrentPage: 3, TotalPages: 3, TotalTasks: 25, HasNext: false, HasPrev: true},
		},
		{
			name: "exactly one full page",
			page: 1, limit: 10, returned: 10, total: 10,
			want: api.Pagination{CurrentPage: 1, TotalPages: 1, TotalTasks: 10, HasNext: false, HasPrev: false},
		},
		{
			name: "no results at all",
			page: 1, limit: 10, returned: 0, total: 0,
			want: api.Pagination{CurrentPage: 1, TotalPages: 0, TotalTasks: 0, HasNext: false, HasPrev: false},
		},
		{
			name: "empty page past the end",
			page: 5, limit: 10, returned: 0, total: 25,
			want: api.Pagination{CurrentPage: 5, TotalPages: 3, TotalTasks: 25, HasNext: false, HasPrev: true},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got := api.NewPagination(tc.page, tc.limit, tc.returned, tc.total)
			assert.Equal(t, tc.want, got)
		})
	}
}
