package pixeltoaster

import (
	"slices"
	"testing"
)

func TestFeatures_SortedAndIncludeHeadless(t *testing.T) {
	got := Features()
	if !slices.IsSorted(got) {
		t.Fatalf("expected sorted features, got %v", got)
	}
	if !slices.Contains(got, "backend:headless") {
		t.Fatalf("expected backend:headless in %v", got)
	}
	got[0] = "mutated"
	if Features()[0] == "mutated" {
		t.Fatal("expected Features to return a copy")
	}
}
