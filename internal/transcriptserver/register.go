// Package transcriptserver registers the YouTube transcript MCP tools.
package transcriptserver

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterTools registers the transcript tools on the given MCP server:
// get_transcript, list_transcript_languages.
func RegisterTools(server *mcp.Server) {
	registerGetTranscript(server)
	registerListLanguages(server)
}
