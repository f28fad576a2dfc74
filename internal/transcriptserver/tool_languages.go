package transcriptserver

import (
	"context"
	"log/slog"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/engine"
)

type ListLanguagesInput struct {
	Video string `json:"video" jsonschema:"Video URL or video ID"`
}

func registerListLanguages(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "list_transcript_languages",
		Description: "Retrieve the list of available caption languages for the specified YouTube video. Accepts a video URL or bare video ID; returns one entry per language code, sorted ascending.",
		Annotations: &mcp.ToolAnnotations{ReadOnlyHint: true},
	}, func(ctx context.Context, req *mcp.CallToolRequest, input ListLanguagesInput) (*mcp.CallToolResult, engine.LanguageCatalogResult, error) {
		videoID, err := engine.ResolveVideoID(input.Video)
		if err != nil {
			return nil, engine.LanguageCatalogResult{}, err
		}

		languages, err := engine.ListLanguages(ctx, videoID)
		if err != nil {
			slog.Warn("list_transcript_languages failed",
				slog.String("video_id", videoID),
				slog.Any("error", err))
			return nil, engine.LanguageCatalogResult{}, err
		}

		return nil, engine.LanguageCatalogResult{
			VideoID:   videoID,
			Languages: languages,
		}, nil
	})
}
