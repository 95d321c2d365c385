package basesvc

import "testing"

func TestNextSequenceNumber(t *testing.T) {
	tests := []struct {
		name string
		used []int
		want int
	}{
		{"empty", nil, 1},
		{"gap in middle", []int{1, 2, 4}, 3},
		{"no gap", []int{1, 2, 3}, 4},
		{"gap at start", []int{2, 3}, 1},
		{"unsorted", []int{4, 1, 3}, 2},
		{"duplicates", []int{1, 1, 2}, 3},
		{"ignores non-positive", []int{0, -1, 1}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextSequenceNumber(tt.used); got != tt.want {
				t.Errorf("NextSequenceNumber(%v) = %d, muốn %d", tt.used, got, tt.want)
			}
		})
	}
}

func TestFormatSequenceID(t *testing.T) {
	if got := FormatSequenceID("categoryId", 1); got != "categoryId0001" {
		t.Errorf("FormatSequenceID = %q, muốn categoryId0001", got)
	}
	if got := FormatSequenceID("productId", 123); got != "productId0123" {
		t.Errorf("FormatSequenceID = %q, muốn productId0123", got)
	}
	// Quá 4 chữ số thì không cắt bớt
	if got := FormatSequenceID("sliderId", 10000); got != "sliderId10000" {
		t.Errorf("FormatSequenceID = %q, muốn sliderId10000", got)
	}
}

func TestParseSequenceNumber(t *testing.T) {
	tests := []struct {
		id     string
		prefix string
		want   int
		ok     bool
	}{
		{"categoryId0001", "categoryId", 1, true},
		{"categoryId0042", "categoryId", 42, true},
		{"categoryId10000", "categoryId", 10000, true},
		{"categoryIdabc", "categoryId", 0, false},
		{"categoryId", "categoryId", 0, false},
		{"otherId0001", "categoryId", 0, false},
		{"categoryId0000", "categoryId", 0, false},
		{"", "categoryId", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseSequenceNumber(tt.id, tt.prefix)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseSequenceNumber(%q, %q) = (%d, %v), muốn (%d, %v)",
				tt.id, tt.prefix, got, ok, tt.want, tt.ok)
		}
	}
}
