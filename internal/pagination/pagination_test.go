package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		requested   int
		totalCount  int64
		wantNumber  int
		wantPages   int
		wantOffset  int
		wantHasNext bool
		wantHasPrev bool
	}{
		{"first page of 25", 1, 25, 1, 3, 0, true, false},
		{"middle page of 25", 2, 25, 2, 3, 10, true, true},
		{"last partial page of 25", 3, 25, 3, 3, 20, false, true},
		{"beyond last clamps to last", 4, 25, 3, 3, 20, false, true},
		{"far beyond last clamps to last", 99, 25, 3, 3, 20, false, true},
		{"zero page resolves to first", 0, 25, 1, 3, 0, true, false},
		{"negative page resolves to first", -3, 25, 1, 3, 0, true, false},
		{"empty result set", 1, 0, 1, 1, 0, false, false},
		{"empty result set with big page", 7, 0, 1, 1, 0, false, false},
		{"exact multiple of page size", 2, 20, 2, 2, 10, false, true},
		{"single item", 1, 1, 1, 1, 0, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			page := Resolve(tt.requested, tt.totalCount)
			assert.Equal(t, tt.wantNumber, page.Number)
			assert.Equal(t, tt.wantPages, page.TotalPages)
			assert.Equal(t, tt.wantOffset, page.Offset())
			assert.Equal(t, tt.wantHasNext, page.HasNext)
			assert.Equal(t, tt.wantHasPrev, page.HasPrevious)
			assert.Equal(t, PageSize, page.Size)
			assert.Equal(t, tt.totalCount, page.TotalCount)
		})
	}
}
