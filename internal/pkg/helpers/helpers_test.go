package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/yigit/schedulocity/internal/app/models/dto"
)

func TestPaginate(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	tests := []struct {
		name      string
		page      dto.Page
		wantItems []int
		wantInfo  *dto.PaginationInfo
	}{
		{name: "disabled", page: dto.Page{}, wantItems: items, wantInfo: nil},
		{
			name:      "first page",
			page:      dto.Page{Page: 1, Size: 3},
			wantItems: []int{1, 2, 3},
			wantInfo:  &dto.PaginationInfo{CurrentPage: 1, TotalPages: 3, PageSize: 3, TotalItems: 7},
		},
		{
			name:      "last partial page",
			page:      dto.Page{Page: 3, Size: 3},
			wantItems: []int{7},
			wantInfo:  &dto.PaginationInfo{CurrentPage: 3, TotalPages: 3, PageSize: 3, TotalItems: 7},
		},
		{
			name:      "past the end clamps",
			page:      dto.Page{Page: 9, Size: 3},
			wantItems: []int{7},
			wantInfo:  &dto.PaginationInfo{CurrentPage: 3, TotalPages: 3, PageSize: 3, TotalItems: 7},
		},
		{
			name:      "size only",
			page:      dto.Page{Size: 5},
			wantItems: []int{1, 2, 3, 4, 5},
			wantInfo:  &dto.PaginationInfo{CurrentPage: 1, TotalPages: 2, PageSize: 5, TotalItems: 7},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, info := Paginate(items, tt.page)
			assert.Equal(t, tt.wantItems, got)
			assert.Equal(t, tt.wantInfo, info)
		})
	}
}

func TestPaginate_Empty(t *testing.T) {
	got, info := Paginate([]string{}, dto.Page{Page: 1, Size: 10})
	assert.Empty(t, got)
	assert.Equal(t, 1, info.TotalPages)
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 2*time.Second, ParseDuration("2s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("soon", time.Minute))
}
