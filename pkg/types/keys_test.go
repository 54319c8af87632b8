package types

import "testing"

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"color/brand/primary", "color-brand-primary"},
		{"typography.size.md", "typography-size-md"},
		{"spacing 4", "spacing-4"},
		{"Radius/LG", "radius-lg"},
		{"already-slugged", "already-slugged"},
	}
	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCamelKey(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"font-size", "fontSize"},
		{"color/brand/primary", "colorBrandPrimary"},
		{"typography.size.2xl", "typographySize2xl"},
		{"spacing", "spacing"},
		{"motion/ease-in-out", "motionEaseInOut"},
	}
	for _, tt := range tests {
		if got := CamelKey(tt.in); got != tt.want {
			t.Errorf("CamelKey(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestCountCategories(t *testing.T) {
	tokens := []Token{
		{Name: "a", Category: CategoryColor},
		{Name: "b", Category: CategoryColor},
		{Name: "c", Category: CategorySpacing},
	}
	counts := CountCategories(tokens)
	if counts[CategoryColor] != 2 || counts[CategorySpacing] != 1 {
		t.Errorf("unexpected counts: %v", counts)
	}
}
