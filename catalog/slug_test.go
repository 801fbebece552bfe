package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Lunch", "lunch"},
		{"Lunch Menu", "lunch-menu"},
		{"Chef's  Specials!", "chefs-specials"},
		{"winter_menu 2024", "winter-menu-2024"},
		{"--Brunch--", "brunch"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, slugify(tc.in), "slugify(%q)", tc.in)
	}
}

func TestDeriveSlug(t *testing.T) {
	got := deriveSlug("Lunch Menu", "5f2b8c1e-9a44-4d1f-8e3a-abcdef123456")
	assert.Equal(t, "lunch-menu-ef123456", got)
}

func TestDeriveSlugShortID(t *testing.T) {
	assert.Equal(t, "lunch-abc", deriveSlug("Lunch", "abc"))
}
