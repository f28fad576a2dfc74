package captions

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Timedtext XML document: <transcript><text start="…" dur="…">…</text>…

type timedText struct {
	Lines []timedTextLine `xml:"text"`
}

type timedTextLine struct {
	Start float64 `xml:"start,attr"`
	Dur   float64 `xml:"dur,attr"`
	Text  string  `xml:",chardata"`
}

// fetchTimedText downloads and parses a timedtext caption URL into ordered
// segments.
func fetchTimedText(ctx context.Context, baseURL string) ([]engine.CaptionSegment, error) {
	engine.IncrTimedtext()

	body, err := doWithRetry(ctx, 512*1024, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", ytChromeUA)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: fetch timedtext: %v", engine.ErrRetrievalFailed, err)
	}
	return parseTimedText(body)
}

// parseTimedText converts a timedtext document into segments, preserving
// document order.
func parseTimedText(body []byte) ([]engine.CaptionSegment, error) {
	var tt timedText
	if err := xml.Unmarshal(body, &tt); err != nil {
		return nil, fmt.Errorf("%w: parse timedtext XML: %v", engine.ErrRetrievalFailed, err)
	}

	segments := make([]engine.CaptionSegment, 0, len(tt.Lines))
	for _, line := range tt.Lines {
		text := cleanCaptionText(line.Text)
		if text == "" {
			continue
		}
		segments = append(segments, engine.CaptionSegment{
			Start:    line.Start,
			Duration: line.Dur,
			Text:     text,
		})
	}
	return segments, nil
}

// cleanCaptionText strips markup that survives XML decoding — timedtext
// lines carry escaped tags like <font> and double-encoded entities — and
// collapses runs of whitespace.
func cleanCaptionText(s string) string {
	tz := html.NewTokenizer(strings.NewReader(s))
	var sb strings.Builder
	for {
		tt := tz.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.Write(tz.Text())
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
