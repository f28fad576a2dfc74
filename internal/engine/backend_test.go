package engine

import (
	"context"
	"fmt"
)

// fakeTrack implements CaptionTrack for fallback-chain tests.
type fakeTrack struct {
	code         string
	name         string
	generated    bool
	translatable bool

	segments   []CaptionSegment
	fetchErr   error
	translated map[string]*fakeTrack // target code → track served by Translate
}

func (t *fakeTrack) LanguageCode() string { return t.code }
func (t *fakeTrack) Language() string     { return t.name }
func (t *fakeTrack) IsGenerated() bool    { return t.generated }
func (t *fakeTrack) IsTranslatable() bool { return t.translatable }

func (t *fakeTrack) Fetch(ctx context.Context) ([]CaptionSegment, error) {
	if t.fetchErr != nil {
		return nil, t.fetchErr
	}
	return t.segments, nil
}

func (t *fakeTrack) Translate(target string) (CaptionTrack, error) {
	if !t.translatable {
		return nil, fmt.Errorf("%w: track %s is not translatable", ErrNoTranscript, t.code)
	}
	if tr, ok := t.translated[target]; ok {
		return tr, nil
	}
	return nil, fmt.Errorf("%w: cannot translate %s into %s", ErrNoTranscript, t.code, target)
}

// fakeBackend implements CaptionBackend and counts calls so tests can assert
// which layers ran.
type fakeBackend struct {
	fetchSegments []CaptionSegment
	fetchErr      error
	tracks        []CaptionTrack
	listErr       error

	fetchCalls int
	listCalls  int
}

func (b *fakeBackend) Fetch(ctx context.Context, videoID string, languageCodes []string) ([]CaptionSegment, error) {
	b.fetchCalls++
	if b.fetchErr != nil {
		return nil, b.fetchErr
	}
	return b.fetchSegments, nil
}

func (b *fakeBackend) List(ctx context.Context, videoID string) ([]CaptionTrack, error) {
	b.listCalls++
	if b.listErr != nil {
		return nil, b.listErr
	}
	return b.tracks, nil
}

// useBackend installs b as the engine backend for the duration of a test.
func useBackend(b CaptionBackend) {
	Init(Config{Backend: b})
}
