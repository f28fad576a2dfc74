package engine

import (
	"context"
	"sort"
)

// ListLanguages returns the caption languages videoID offers, sorted
// ascending by language code and deduplicated. When the backend returns
// duplicate codes (e.g. a manual and a generated track sharing one code) the
// first occurrence in sorted order wins and its metadata is kept verbatim.
func ListLanguages(ctx context.Context, videoID string) ([]LanguageDescriptor, error) {
	IncrListLanguages()

	tracks, err := cfg.Backend.List(ctx, videoID)
	if err != nil {
		return nil, err
	}

	sorted := make([]CaptionTrack, len(tracks))
	copy(sorted, tracks)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].LanguageCode() < sorted[j].LanguageCode()
	})

	seen := make(map[string]bool, len(sorted))
	languages := make([]LanguageDescriptor, 0, len(sorted))
	for _, t := range sorted {
		code := t.LanguageCode()
		if seen[code] {
			continue
		}
		seen[code] = true
		languages = append(languages, LanguageDescriptor{
			LanguageCode:   code,
			Language:       t.Language(),
			IsGenerated:    t.IsGenerated(),
			IsTranslatable: t.IsTranslatable(),
		})
	}
	return languages, nil
}
