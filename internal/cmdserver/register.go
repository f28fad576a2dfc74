package cmdserver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type RunCommandInput struct {
	Arguments []string `json:"arguments,omitempty" jsonschema:"Command-line arguments appended to the base command"`
	Stdin     string   `json:"stdin,omitempty" jsonschema:"Optional standard input string piped to the command"`
}

type RunCommandOutput struct {
	Command  []string `json:"command"`
	ExitCode int      `json:"exit_code"`
	Stdout   string   `json:"stdout"`
	Stderr   string   `json:"stderr"`
}

// RegisterTool registers the wrapped command as a single MCP tool named after
// the command itself.
func RegisterTool(server *mcp.Server, cfg *Config) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        cfg.Name,
		Description: fmt.Sprintf("Run `%s` with the given arguments and capture exit code, stdout and stderr", cfg.CommandDisplay),
	}, func(ctx context.Context, req *mcp.CallToolRequest, input RunCommandInput) (*mcp.CallToolResult, RunCommandOutput, error) {
		argv := make([]string, 0, len(cfg.Command)+len(input.Arguments))
		argv = append(argv, cfg.Command...)
		argv = append(argv, input.Arguments...)

		out, err := runCommand(ctx, argv, input.Stdin)
		if err != nil {
			slog.Warn("command failed to start",
				slog.String("name", cfg.Name), slog.Any("error", err))
			return nil, RunCommandOutput{}, fmt.Errorf("failed to execute command `%s`: %w", cfg.Name, err)
		}
		return nil, out, nil
	})
}

// runCommand executes argv with optional stdin. A non-zero exit code is data,
// not an error; only spawn failures return an error.
func runCommand(ctx context.Context, argv []string, stdin string) (RunCommandOutput, error) {
	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	exitCode := 0
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return RunCommandOutput{}, err
		}
		exitCode = exitErr.ExitCode()
	}

	return RunCommandOutput{
		Command:  argv,
		ExitCode: exitCode,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
	}, nil
}
