package model

import "testing"

func TestNewPageInfo(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		pageSize   int
		totalItems int
		wantPage   int
		wantPages  int
		wantNext   bool
		wantPrev   bool
	}{
		{"first of two pages", 1, 10, 14, 1, 2, true, false},
		{"second of two pages", 2, 10, 14, 2, 2, false, true},
		{"past the end clamps to last", 99, 10, 14, 2, 2, false, true},
		{"zero page clamps to first", 0, 10, 14, 1, 2, true, false},
		{"negative page clamps to first", -5, 10, 14, 1, 2, true, false},
		{"empty set is one empty page", 1, 10, 0, 1, 1, false, false},
		{"exact multiple", 2, 10, 20, 2, 2, false, true},
		{"single item", 1, 10, 1, 1, 1, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := NewPageInfo(tt.page, tt.pageSize, tt.totalItems)
			if info.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", info.Page, tt.wantPage)
			}
			if info.TotalPages != tt.wantPages {
				t.Errorf("TotalPages = %d, want %d", info.TotalPages, tt.wantPages)
			}
			if info.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", info.HasNext, tt.wantNext)
			}
			if info.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", info.HasPrev, tt.wantPrev)
			}
			if info.TotalItems != tt.totalItems {
				t.Errorf("TotalItems = %d, want %d", info.TotalItems, tt.totalItems)
			}
		})
	}
}

func TestPageInfoOffset(t *testing.T) {
	tests := []struct {
		page       int
		pageSize   int
		totalItems int
		want       int
	}{
		{1, 10, 14, 0},
		{2, 10, 14, 10},
		{3, 5, 14, 10},
	}
	for _, tt := range tests {
		info := NewPageInfo(tt.page, tt.pageSize, tt.totalItems)
		if got := info.Offset(); got != tt.want {
			t.Errorf("NewPageInfo(%d, %d, %d).Offset() = %d, want %d",
				tt.page, tt.pageSize, tt.totalItems, got, tt.want)
		}
	}
}
