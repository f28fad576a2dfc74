// command-mcp — expose a single shell command as an MCP tool over stdio.
//
// Usage:
//
//	command-mcp --command 'git' --command-help 'git --help'
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/anatolykoptev/go_transcript/internal/cmdserver"
)

var version = "dev"

func main() {
	command := flag.String("command", "", "Command to expose as an MCP tool (e.g. 'git')")
	commandHelp := flag.String("command-help", "", "Help command that explains usage (e.g. 'git --help')")
	flag.Parse()

	if *command == "" || *commandHelp == "" {
		fmt.Fprintln(os.Stderr, "both --command and --command-help are required")
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := cmdserver.NewConfig(*command, *commandHelp)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "command-mcp",
		Version: version,
	}, &mcp.ServerOptions{Instructions: cfg.Instructions()})

	cmdserver.RegisterTool(server, cfg)
	slog.Info("command tool registered", slog.String("name", cfg.Name))

	if err := server.Run(context.Background(), &mcp.StdioTransport{}); err != nil {
		slog.Error("server failed", slog.Any("error", err))
		os.Exit(1)
	}
}
