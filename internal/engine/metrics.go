package engine

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// Metrics tracks operational counters across the engine.
var metrics struct {
	ResolveRequests      atomic.Int64
	ListLanguageRequests atomic.Int64
	TranscriptRequests   atomic.Int64
	TranslateRequests    atomic.Int64
	InnertubeRequests    atomic.Int64
	TimedtextRequests    atomic.Int64
}

// GetMetrics returns a snapshot of all counters.
func GetMetrics() map[string]int64 {
	return map[string]int64{
		"resolve_requests":       metrics.ResolveRequests.Load(),
		"list_language_requests": metrics.ListLanguageRequests.Load(),
		"transcript_requests":    metrics.TranscriptRequests.Load(),
		"translate_requests":     metrics.TranslateRequests.Load(),
		"innertube_requests":     metrics.InnertubeRequests.Load(),
		"timedtext_requests":     metrics.TimedtextRequests.Load(),
	}
}

// FormatMetrics returns metrics as a simple text format for the HTTP endpoint.
func FormatMetrics() string {
	m := GetMetrics()
	var sb strings.Builder
	keys := []string{
		"resolve_requests", "list_language_requests",
		"transcript_requests", "translate_requests",
		"innertube_requests", "timedtext_requests",
	}
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d\n", k, m[k])
	}
	return sb.String()
}

// IncrResolve increments the reference resolution counter.
func IncrResolve() { metrics.ResolveRequests.Add(1) }

// IncrListLanguages increments the language catalog counter.
func IncrListLanguages() { metrics.ListLanguageRequests.Add(1) }

// IncrTranscript increments the transcript fetch counter.
func IncrTranscript() { metrics.TranscriptRequests.Add(1) }

// IncrTranslate increments the translation fallback counter.
func IncrTranslate() { metrics.TranslateRequests.Add(1) }

// IncrInnertube increments the Innertube request counter.
func IncrInnertube() { metrics.InnertubeRequests.Add(1) }

// IncrTimedtext increments the timedtext request counter.
func IncrTimedtext() { metrics.TimedtextRequests.Add(1) }
