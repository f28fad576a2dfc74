package transcriptserver

import (
	"context"
	"log/slog"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

type GetTranscriptInput struct {
	Video    string `json:"video" jsonschema:"Video URL or video ID"`
	Language string `json:"language" jsonschema:"Language code of the captions to retrieve (e.g. en, ja)"`
}

func registerGetTranscript(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "get_transcript",
		Description: "Retrieve captions for the specified YouTube video. Accepts a video URL or bare video ID plus a language code; falls back to machine translation when no native track exists for that language.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input GetTranscriptInput) (*mcp.CallToolResult, engine.TranscriptResult, error) {
		if strings.TrimSpace(input.Language) == "" {
			return nil, engine.TranscriptResult{}, engine.ErrMissingLanguage
		}

		videoID, err := engine.ResolveVideoID(input.Video)
		if err != nil {
			return nil, engine.TranscriptResult{}, err
		}

		out, err := engine.FetchTranscript(ctx, videoID, input.Language)
		if err != nil {
			slog.Warn("get_transcript failed",
				slog.String("video_id", videoID),
				slog.String("language", strings.TrimSpace(input.Language)),
				slog.Any("error", err))
			return nil, engine.TranscriptResult{}, err
		}

		slog.Info("get_transcript served",
			slog.String("video_id", videoID),
			slog.String("language", out.Language),
			slog.Int("segments", len(out.Segments)))
		return nil, *out, nil
	})
}
