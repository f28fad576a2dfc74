package engine

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// FetchTranscript returns captions for videoID in the requested language.
//
// Layered fallback, each layer attempted only when the previous one reported
// "no matching transcript" — any other error aborts the chain immediately:
//
//  1. direct fetch restricted to the requested code
//  2. exact-code lookup in the full track list
//  3. machine translation from each translatable track, in backend order
//
// The result records the requested code even when layer 3 satisfied it,
// since that is the language the caller asked for and received.
func FetchTranscript(ctx context.Context, videoID, language string) (*TranscriptResult, error) {
	language = strings.TrimSpace(language)
	if language == "" {
		return nil, ErrMissingLanguage
	}
	IncrTranscript()

	segments, err := fetchWithFallback(ctx, videoID, language)
	if err != nil {
		return nil, err
	}
	return &TranscriptResult{
		VideoID:  videoID,
		Language: language,
		Segments: segments,
	}, nil
}

func fetchWithFallback(ctx context.Context, videoID, language string) ([]CaptionSegment, error) {
	segments, err := cfg.Backend.Fetch(ctx, videoID, []string{language})
	if err == nil {
		return segments, nil
	}
	if !errors.Is(err, ErrNoTranscript) {
		return nil, err
	}
	slog.Debug("transcript: direct fetch missed, trying track list",
		slog.String("id", videoID), slog.String("language", language))

	tracks, err := cfg.Backend.List(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if track := findTrack(tracks, language); track != nil {
		segments, err := track.Fetch(ctx)
		if err == nil {
			return segments, nil
		}
		if !errors.Is(err, ErrNoTranscript) {
			return nil, err
		}
	}

	// Translation walks tracks in backend order; only the catalog listing
	// sorts by code.
	for _, t := range tracks {
		if !t.IsTranslatable() {
			continue
		}
		translated, err := t.Translate(language)
		if err != nil {
			if errors.Is(err, ErrNoTranscript) {
				continue
			}
			return nil, err
		}
		segments, err := translated.Fetch(ctx)
		if err == nil {
			IncrTranslate()
			slog.Debug("transcript: served via translation",
				slog.String("id", videoID),
				slog.String("from", t.LanguageCode()),
				slog.String("to", language))
			return segments, nil
		}
		if !errors.Is(err, ErrNoTranscript) {
			return nil, err
		}
	}

	return nil, fmt.Errorf("language code %s: %w", language, ErrLanguageNotAvailable)
}

// findTrack returns the first track with an exact language-code match.
func findTrack(tracks []CaptionTrack, language string) CaptionTrack {
	for _, t := range tracks {
		if t.LanguageCode() == language {
			return t
		}
	}
	return nil
}
