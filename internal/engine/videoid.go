package engine

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

// videoIDRE matches a canonical 11-character YouTube video ID.
var videoIDRE = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)

// LooksLikeVideoID reports whether s has the canonical video ID shape.
func LooksLikeVideoID(s string) bool {
	return videoIDRE.MatchString(s)
}

// ResolveVideoID normalizes a user-supplied video reference into a canonical
// 11-character video ID. Accepted forms, first match wins:
//
//	dQw4w9WgXcQ                                  bare ID
//	https://www.youtube.com/watch?v=<id>
//	https://www.youtube.com/live/<id>
//	https://www.youtube.com/shorts/<id>
//	https://youtu.be/<id>
//
// Host matching is substring-based so subdomains (m.youtube.com) pass.
func ResolveVideoID(reference string) (string, error) {
	IncrResolve()

	reference = strings.TrimSpace(reference)
	if reference == "" {
		return "", ErrEmptyReference
	}

	// A bare ID short-circuits URL parsing for the common case and avoids
	// false negatives when a valid ID happens to parse as a malformed URL.
	if LooksLikeVideoID(reference) {
		return reference, nil
	}

	parsed, err := url.Parse(reference)
	if err != nil {
		return "", fmt.Errorf("%q: %w", reference, ErrUnrecognizedReference)
	}
	host := strings.ToLower(parsed.Host)

	if strings.Contains(host, "youtube.com") {
		if parsed.Path == "/watch" {
			if v := parsed.Query().Get("v"); LooksLikeVideoID(v) {
				return v, nil
			}
		}
		if strings.HasPrefix(parsed.Path, "/live/") || strings.HasPrefix(parsed.Path, "/shorts/") {
			parts := strings.Split(strings.Trim(parsed.Path, "/"), "/")
			if len(parts) >= 2 && LooksLikeVideoID(parts[1]) {
				return parts[1], nil
			}
		}
	}

	if strings.Contains(host, "youtu.be") {
		if candidate := strings.TrimPrefix(parsed.Path, "/"); LooksLikeVideoID(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf("%q: %w", reference, ErrUnrecognizedReference)
}
