package catalog

import (
	"regexp"
	"strings"
)

var (
	slugStrip    = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
)

// slugify lowercases the name, strips non-word characters and collapses
// runs of spaces, underscores and hyphens into single hyphens.
func slugify(name string) string {
	s := strings.ToLower(name)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// deriveSlug builds the default menu slug: slugified name plus the last
// eight characters of the restaurant id, which keeps name collisions across
// restaurants from producing the same slug.
func deriveSlug(name, restaurantID string) string {
	suffix := restaurantID
	if len(suffix) > 8 {
		suffix = suffix[len(suffix)-8:]
	}
	return slugify(name) + "-" + suffix
}
