package engine

import "errors"

// Error taxonomy surfaced by the engine. Every one of these is terminal for
// the current call: no partial results, no retry. Callers match with
// errors.Is; the message text is what reaches the MCP client.
var (
	// ErrEmptyReference — the video reference was empty after trimming.
	ErrEmptyReference = errors.New("the video identifier string is empty")

	// ErrUnrecognizedReference — no recognition rule matched the reference.
	ErrUnrecognizedReference = errors.New("could not recognize the URL or ID for a YouTube video; provide it in the form https://youtu.be/<id> or https://www.youtube.com/watch?v=<id>")

	// ErrMissingLanguage — get_transcript was called with an empty language
	// code. Rejected before any backend interaction.
	ErrMissingLanguage = errors.New("provide a language code for the language parameter (e.g. en, ja)")

	// ErrLanguageNotAvailable — every fallback layer was exhausted for the
	// requested language.
	ErrLanguageNotAvailable = errors.New("captions for the requested language were not found")
)

// Errors reported by a CaptionBackend. ErrNoTranscript is the "no matching
// transcript" signal that advances the fallback chain; the other three are
// hard failures that abort it with the backend message preserved.
var (
	ErrNoTranscript     = errors.New("no matching transcript")
	ErrVideoUnavailable = errors.New("video unavailable")
	ErrCaptionsDisabled = errors.New("captions are disabled")
	ErrRetrievalFailed  = errors.New("could not retrieve captions")
)
