package captions

import (
	"testing"
)

const sampleTimedText = `<?xml version="1.0" encoding="utf-8" ?>
<transcript>
	<text start="0" dur="1.54">Never gonna give you up</text>
	<text start="1.54" dur="2.2">Never gonna let you down</text>
	<text start="3.74" dur="1.1">it&amp;#39;s &lt;font color="#ffffff"&gt;highlighted&lt;/font&gt; text</text>
	<text start="4.84" dur="0.5"> </text>
	<text start="5.34" dur="1.9">A &amp;amp; B</text>
</transcript>`

func TestParseTimedText(t *testing.T) {
	segments, err := parseTimedText([]byte(sampleTimedText))
	if err != nil {
		t.Fatalf("parseTimedText error: %v", err)
	}

	// The whitespace-only line is dropped.
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}

	s := segments[0]
	if s.Start != 0 || s.Duration != 1.54 {
		t.Errorf("segment[0] timing = %v/%v, want 0/1.54", s.Start, s.Duration)
	}
	if s.Text != "Never gonna give you up" {
		t.Errorf("segment[0] text = %q", s.Text)
	}

	// Chronological order preserved exactly as received.
	if segments[1].Text != "Never gonna let you down" {
		t.Errorf("segment[1] text = %q", segments[1].Text)
	}
	if segments[1].Start != 1.54 {
		t.Errorf("segment[1] start = %v, want 1.54", segments[1].Start)
	}

	// Double-encoded entities and escaped markup are cleaned.
	if segments[2].Text != "it's highlighted text" {
		t.Errorf("segment[2] text = %q, want %q", segments[2].Text, "it's highlighted text")
	}
	if segments[3].Text != "A & B" {
		t.Errorf("segment[3] text = %q, want %q", segments[3].Text, "A & B")
	}
}

func TestParseTimedTextEmptyDocument(t *testing.T) {
	segments, err := parseTimedText([]byte(`<transcript></transcript>`))
	if err != nil {
		t.Fatalf("parseTimedText error: %v", err)
	}
	if len(segments) != 0 {
		t.Errorf("expected no segments, got %d", len(segments))
	}
}

func TestParseTimedTextInvalidXML(t *testing.T) {
	if _, err := parseTimedText([]byte(`<transcript><text`)); err == nil {
		t.Error("expected error for truncated XML")
	}
}

func TestCleanCaptionText(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain", "plain"},
		{"  spaced \n out  ", "spaced out"},
		{"<b>bold</b> move", "bold move"},
		{"&#39;quoted&#39;", "'quoted'"},
		{"", ""},
		{"<i></i>", ""},
	}
	for _, tt := range tests {
		if got := cleanCaptionText(tt.in); got != tt.want {
			t.Errorf("cleanCaptionText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
