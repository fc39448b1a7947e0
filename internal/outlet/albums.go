package outlet

import "strings"

// Albums maps an outlet key to its shared photo-album URL.
type Albums map[string]string

// Directory returns the campus outlets and their Google Photos albums.
// The set is fixed at build time and never mutated at runtime.
func Directory() Albums {
	return Albums{
		"chatkara":       "https://photos.app.goo.gl/U6ZegD74Jecs3b2g6",
		"zaikaa":         "https://photos.app.goo.gl/ocoXSkr5zLKCSHsQ6",
		"theitalianoven": "https://photos.app.goo.gl/V8ZBba9oeopFTSCy9",
		"letsgolive":     "https://photos.app.goo.gl/arR4VvE4PprLfoL96",
		"chinatown":      "https://photos.app.goo.gl/r9jcCq4jbs9RpDFM6",
		"healthbar":      "https://photos.app.goo.gl/VWQagNGQF4sMrqxx7",
		"pizzabakers":    "https://photos.app.goo.gl/G3hPcwLZuj17eSyd7",
		"devsweets":      "https://photos.app.goo.gl/95LFYLZ6s1DSYHLf6",
		"tandoor":        "https://photos.app.goo.gl/PWagb7VkjmkJvC9QA",
		"dialogcafe":     "https://photos.app.goo.gl/bBNm4L5cQeg3qb2Z8",
	}
}

// Normalize derives an outlet key from a user-facing name by stripping
// spaces and lowercasing, so "The Italian Oven" matches "theitalianoven".
func Normalize(name string) string {
	return strings.ToLower(strings.ReplaceAll(name, " ", ""))
}

// Resolve looks up the album URL for an outlet name, normalizing it first.
func (a Albums) Resolve(name string) (string, bool) {
	url, ok := a[Normalize(name)]
	return url, ok
}
