package engine

import (
	"errors"
	"testing"
)

func TestResolveVideoID(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want string
	}{
		{"bare id", "dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"bare id with whitespace", "  dQw4w9WgXcQ\n", "dQw4w9WgXcQ"},
		{"bare id with underscore and dash", "a_b-C_d-E_f", "a_b-C_d-E_f"},
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"watch url extra params", "https://www.youtube.com/watch?t=42&v=dQw4w9WgXcQ&feature=share", "dQw4w9WgXcQ"},
		{"mobile subdomain", "https://m.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"shorts url", "https://www.youtube.com/shorts/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"live url", "https://www.youtube.com/live/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"live url with query", "https://www.youtube.com/live/dQw4w9WgXcQ?feature=share", "dQw4w9WgXcQ"},
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/dQw4w9WgXcQ?t=10", "dQw4w9WgXcQ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ResolveVideoID(tt.ref)
			if err != nil {
				t.Fatalf("ResolveVideoID(%q) error: %v", tt.ref, err)
			}
			if got != tt.want {
				t.Errorf("ResolveVideoID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestResolveVideoIDErrors(t *testing.T) {
	tests := []struct {
		name string
		ref  string
		want error
	}{
		{"empty", "", ErrEmptyReference},
		{"whitespace only", "   ", ErrEmptyReference},
		{"not a url", "not a url", ErrUnrecognizedReference},
		{"too short id", "dQw4w9WgXc", ErrUnrecognizedReference},
		{"too long id", "dQw4w9WgXcQQ", ErrUnrecognizedReference},
		{"bad alphabet", "dQw4w9WgXc!", ErrUnrecognizedReference},
		{"watch without v", "https://www.youtube.com/watch?t=10", ErrUnrecognizedReference},
		{"watch with bad id", "https://www.youtube.com/watch?v=short", ErrUnrecognizedReference},
		{"channel url", "https://www.youtube.com/@somechannel", ErrUnrecognizedReference},
		{"shorts without id", "https://www.youtube.com/shorts/", ErrUnrecognizedReference},
		{"short link bad id", "https://youtu.be/nope", ErrUnrecognizedReference},
		{"unrelated host", "https://vimeo.com/123456", ErrUnrecognizedReference},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolveVideoID(tt.ref)
			if !errors.Is(err, tt.want) {
				t.Errorf("ResolveVideoID(%q) error = %v, want %v", tt.ref, err, tt.want)
			}
		})
	}
}

func TestResolveVideoIDIdempotent(t *testing.T) {
	ref := "https://www.youtube.com/watch?v=dQw4w9WgXcQ"
	first, err := ResolveVideoID(ref)
	if err != nil {
		t.Fatalf("first resolve: %v", err)
	}
	second, err := ResolveVideoID(ref)
	if err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	if first != second {
		t.Errorf("resolve not idempotent: %q vs %q", first, second)
	}
}

func TestLooksLikeVideoID(t *testing.T) {
	if !LooksLikeVideoID("dQw4w9WgXcQ") {
		t.Error("canonical id rejected")
	}
	for _, bad := range []string{"", "short", "dQw4w9WgXcQQ", "dQw4w9WgXc ", "dQw4w9WgXc#"} {
		if LooksLikeVideoID(bad) {
			t.Errorf("LooksLikeVideoID(%q) = true, want false", bad)
		}
	}
}
