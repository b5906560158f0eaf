package rotator

import "testing"

func TestPager(t *testing.T) {
	tests := []struct {
		name               string
		total, per, page   int
		wantPage, wantMax  int
		wantStart, wantEnd int
	}{
		{"home first page", 4, 2, 0, 0, 1, 0, 2},
		{"home last page", 4, 2, 1, 1, 1, 2, 4},
		{"clients partial", 7, 3, 2, 2, 2, 6, 7},
		{"clamped high", 6, 3, 9, 1, 1, 3, 6},
		{"clamped low", 6, 3, -2, 0, 1, 0, 3},
		{"empty", 0, 3, 0, 0, 0, 0, 0},
		{"zero per page", 3, 0, 1, 1, 2, 1, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPager(tt.total, tt.per, tt.page)
			if p.Page != tt.wantPage {
				t.Errorf("Page = %d, want %d", p.Page, tt.wantPage)
			}
			if p.MaxPage() != tt.wantMax {
				t.Errorf("MaxPage() = %d, want %d", p.MaxPage(), tt.wantMax)
			}
			start, end := p.Window()
			if start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Window() = [%d,%d), want [%d,%d)", start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPagerStopsAtEnds(t *testing.T) {
	p := NewPager(6, 2, 0)
	if p.CanPrev() {
		t.Error("first page should not allow prev")
	}
	if p.Prev().Page != 0 {
		t.Error("Prev on first page should stay")
	}
	p = p.Next().Next().Next()
	if p.Page != 2 {
		t.Errorf("Page = %d, want 2", p.Page)
	}
	if p.CanNext() {
		t.Error("last page should not allow next")
	}
	if !p.CanPrev() {
		t.Error("last page should allow prev")
	}
}
