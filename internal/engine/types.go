package engine

import "context"

// CaptionSegment is one caption entry of a transcript. Segments form an
// ordered sequence in backend-provided chronological order.
type CaptionSegment struct {
	Start    float64 `json:"start"`
	Duration float64 `json:"duration"`
	Text     string  `json:"text"`
}

// LanguageDescriptor describes one caption language a video offers.
type LanguageDescriptor struct {
	LanguageCode   string `json:"language_code"`
	Language       string `json:"language"`
	IsGenerated    bool   `json:"is_generated"`
	IsTranslatable bool   `json:"is_translatable"`
}

// TranscriptResult is the get_transcript tool output. Language is the code
// the caller requested, also when the captions were obtained by translation.
type TranscriptResult struct {
	VideoID  string           `json:"video_id"`
	Language string           `json:"language"`
	Segments []CaptionSegment `json:"segments"`
}

// LanguageCatalogResult is the list_transcript_languages tool output.
// Languages is sorted ascending by language code and deduplicated.
type LanguageCatalogResult struct {
	VideoID   string               `json:"video_id"`
	Languages []LanguageDescriptor `json:"languages"`
}

// CaptionBackend is the capability surface the engine needs from a caption
// source. Implementations must be safe for concurrent use.
//
// Both methods signal "this video offers nothing for the requested languages"
// with ErrNoTranscript and hard failures with ErrVideoUnavailable,
// ErrCaptionsDisabled or ErrRetrievalFailed, matched via errors.Is.
type CaptionBackend interface {
	// Fetch returns captions for the first of languageCodes the video offers.
	Fetch(ctx context.Context, videoID string, languageCodes []string) ([]CaptionSegment, error)

	// List returns every caption track the video offers, in backend order.
	List(ctx context.Context, videoID string) ([]CaptionTrack, error)
}

// CaptionTrack is a single caption stream for one language, generated or
// manually authored.
type CaptionTrack interface {
	LanguageCode() string
	Language() string
	IsGenerated() bool
	IsTranslatable() bool

	// Fetch downloads the track's segments in chronological order.
	Fetch(ctx context.Context) ([]CaptionSegment, error)

	// Translate returns a track serving this one machine-translated into
	// target. Reports ErrNoTranscript when the track cannot be translated.
	Translate(target string) (CaptionTrack, error)
}
