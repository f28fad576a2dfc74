// Package captions implements engine.CaptionBackend against YouTube's
// Innertube API.
//
// Track discovery:
//
//	Primary:  watch page ytInitialPlayerResponse → captionTracks (any IP)
//	Fallback: ANDROID Innertube /player → captionTracks
//
// Caption data comes from each track's timedtext XML URL; translation appends
// a tlang parameter to a translatable track's URL.
package captions

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

// Client is a stateless caption backend; safe for concurrent use.
type Client struct{}

// NewClient returns a caption backend backed by the Innertube API.
func NewClient() *Client {
	return &Client{}
}

// Fetch returns captions for the first of languageCodes the video offers.
func (c *Client) Fetch(ctx context.Context, videoID string, languageCodes []string) ([]engine.CaptionSegment, error) {
	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	for _, code := range languageCodes {
		for _, t := range tracks {
			if t.languageCode == code {
				return t.Fetch(ctx)
			}
		}
	}
	return nil, fmt.Errorf("%w: video %s offers no track in %v", engine.ErrNoTranscript, videoID, languageCodes)
}

// List returns every caption track the video offers, in player-response order.
func (c *Client) List(ctx context.Context, videoID string) ([]engine.CaptionTrack, error) {
	tracks, err := c.listTracks(ctx, videoID)
	if err != nil {
		return nil, err
	}
	out := make([]engine.CaptionTrack, len(tracks))
	for i, t := range tracks {
		out[i] = t
	}
	return out, nil
}

func (c *Client) listTracks(ctx context.Context, videoID string) ([]*Track, error) {
	engine.IncrInnertube()

	resp, err := c.playerResponse(ctx, videoID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrRetrievalFailed, err)
	}
	return tracksFromPlayer(videoID, resp)
}

// tracksFromPlayer classifies a player response and converts its caption
// tracks. Split out of listTracks so error mapping is testable offline.
func tracksFromPlayer(videoID string, resp *playerResp) ([]*Track, error) {
	if ps := resp.PlayabilityStatus; ps != nil && ps.Status != "" && ps.Status != "OK" {
		reason := ps.Reason
		if reason == "" {
			reason = ps.Status
		}
		return nil, fmt.Errorf("%w: %s (%s)", engine.ErrVideoUnavailable, reason, videoID)
	}
	if resp.Captions == nil {
		return nil, fmt.Errorf("%w for video %s", engine.ErrCaptionsDisabled, videoID)
	}
	raw := resp.Captions.PlayerCaptionsTracklistRenderer.CaptionTracks
	if len(raw) == 0 {
		return nil, fmt.Errorf("%w for video %s", engine.ErrCaptionsDisabled, videoID)
	}

	tracks := make([]*Track, 0, len(raw))
	for _, ct := range raw {
		tracks = append(tracks, &Track{
			baseURL:      ct.BaseURL,
			languageCode: ct.LanguageCode,
			name:         ct.Name.String(),
			generated:    ct.Kind == "asr",
			translatable: ct.IsTranslatable,
		})
	}
	return tracks, nil
}

// playerResponse obtains ytInitialPlayerResponse for videoID. The watch-page
// scrape works from any IP; the ANDROID /player endpoint is the fallback for
// pages that ship without a player response.
func (c *Client) playerResponse(ctx context.Context, videoID string) (*playerResp, error) {
	resp, err := c.playerFromWatchPage(ctx, videoID)
	if err == nil {
		return resp, nil
	}
	slog.Debug("captions: watch page scrape failed, trying android player",
		slog.String("id", videoID), slog.Any("err", err))
	return c.playerFromInnertube(ctx, videoID)
}

func (c *Client) playerFromWatchPage(ctx context.Context, videoID string) (*playerResp, error) {
	body, err := doWithRetry(ctx, 6*1024*1024, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, ytWatchURL+videoID, nil)
		if err != nil {
			return nil, err
		}
		req.Header.Set("User-Agent", ytChromeUA)
		req.Header.Set("Accept-Language", "en-US,en;q=0.9")
		req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("watch page: %w", err)
	}

	idx := bytes.Index(body, []byte(ytInitialPlayerResponseMarker))
	if idx < 0 {
		return nil, fmt.Errorf("ytInitialPlayerResponse not found in watch page")
	}
	jsonData := extractJSON(body[idx+len(ytInitialPlayerResponseMarker):])
	if jsonData == nil {
		return nil, fmt.Errorf("failed to extract ytInitialPlayerResponse JSON")
	}

	var resp playerResp
	if err := json.Unmarshal(jsonData, &resp); err != nil {
		return nil, fmt.Errorf("decode ytInitialPlayerResponse: %w", err)
	}
	return &resp, nil
}

func (c *Client) playerFromInnertube(ctx context.Context, videoID string) (*playerResp, error) {
	reqBody, err := json.Marshal(innertubeReq{
		VideoID: videoID,
		Context: innertubeCtx{
			Client: innertubeClient{
				ClientName:        "ANDROID",
				ClientVersion:     ytAndroidVersion,
				AndroidSdkVersion: 30,
				Hl:                "en",
				Gl:                "US",
			},
		},
		RacyCheckOk:    true,
		ContentCheckOk: true,
	})
	if err != nil {
		return nil, err
	}

	body, err := doWithRetry(ctx, 3*1024*1024, func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, ytPlayerURL+"?prettyPrint=false", bytes.NewReader(reqBody))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("User-Agent", ytAndroidUA)
		req.Header.Set("X-Youtube-Client-Name", "3")
		req.Header.Set("X-Youtube-Client-Version", ytAndroidVersion)
		return req, nil
	})
	if err != nil {
		return nil, fmt.Errorf("android innertube: %w", err)
	}

	var resp playerResp
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, fmt.Errorf("decode player: %w", err)
	}
	return &resp, nil
}

// Track is a single caption stream for one language. It satisfies
// engine.CaptionTrack.
type Track struct {
	baseURL      string
	languageCode string
	name         string
	generated    bool
	translatable bool
}

func (t *Track) LanguageCode() string { return t.languageCode }
func (t *Track) Language() string     { return t.name }
func (t *Track) IsGenerated() bool    { return t.generated }
func (t *Track) IsTranslatable() bool { return t.translatable }

// Fetch downloads and parses the track's timedtext document. An empty
// document is the "no transcript" signal — YouTube serves empty XML for
// translation targets it cannot produce.
func (t *Track) Fetch(ctx context.Context) ([]engine.CaptionSegment, error) {
	segments, err := fetchTimedText(ctx, t.baseURL)
	if err != nil {
		return nil, err
	}
	if len(segments) == 0 {
		return nil, fmt.Errorf("%w: empty caption document for %s", engine.ErrNoTranscript, t.languageCode)
	}
	return segments, nil
}

// Translate returns a view of the track machine-translated into target.
func (t *Track) Translate(target string) (engine.CaptionTrack, error) {
	if !t.translatable {
		return nil, fmt.Errorf("%w: track %s is not translatable", engine.ErrNoTranscript, t.languageCode)
	}
	translated, err := translateURL(t.baseURL, target)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", engine.ErrRetrievalFailed, err)
	}
	return &Track{
		baseURL:      translated,
		languageCode: target,
		name:         t.name,
		generated:    t.generated,
		translatable: t.translatable,
	}, nil
}

// translateURL sets the tlang parameter on a timedtext URL, replacing any
// existing one.
func translateURL(baseURL, target string) (string, error) {
	u, err := url.Parse(baseURL)
	if err != nil {
		return "", err
	}
	target = strings.TrimSpace(target)
	if target == "" {
		return "", fmt.Errorf("empty translation target")
	}
	q := u.Query()
	q.Set("tlang", target)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
