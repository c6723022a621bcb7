package polestock

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestQuery(t *testing.T) {
	s := sample(t)
	tests := []struct {
		path string
		want any
	}{
		{"$.locations[*].location", []any{"A1", "A2"}},
		{"$.locations[0].currentQty", 6.0},
		{"$.balanced[0].balanceDate", "2025-05-02"},
		{"$.aging[*].rating", []any{20.0}},
		{`$.locations[?(@.currentQty < 5)].location`, []any{"A2"}},
		{`$.locations[?(@.remainingCapacity > 20)].location`, []any{"A2"}},
		{`$.imbalanced[?(@.location == "A1")].imbalanceQty`, []any{1.0}},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := Query(s, tt.path)
			if err != nil {
				t.Fatalf("Query(%q) unexpected error: %v", tt.path, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Query(%q) mismatch (-want +got):\n%s", tt.path, diff)
			}
		})
	}

	if _, err := Query(s, "$.locations[(("); err == nil {
		t.Error("Query() of an invalid path succeeded, want an error")
	}
}
