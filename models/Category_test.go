package models

import "testing"

func TestValidCategory(t *testing.T) {
	for _, category := range Categories {
		if !ValidCategory(category.Label) {
			t.Fatalf("expected %q to be a valid category", category.Label)
		}
	}

	for _, label := range []string{"", "Volcano", "beach"} {
		if ValidCategory(label) {
			t.Fatalf("expected %q to be rejected", label)
		}
	}
}
