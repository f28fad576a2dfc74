// Package cmdserver exposes a single local executable as an MCP tool.
package cmdserver

import (
	"fmt"
	"path/filepath"

	"github.com/google/shlex"
)

// Config describes the wrapped command.
type Config struct {
	Name               string   // tool name: base name of the command's argv[0]
	Command            []string // base command argv
	CommandDisplay     string   // raw --command value, shown in instructions
	HelpCommandDisplay string   // raw --command-help value, shown in instructions
}

// NewConfig shlex-splits the raw --command and --command-help values.
func NewConfig(command, commandHelp string) (*Config, error) {
	parts, err := shlex.Split(command)
	if err != nil {
		return nil, fmt.Errorf("parse --command: %w", err)
	}
	if len(parts) == 0 {
		return nil, fmt.Errorf("no command specified for --command")
	}

	helpParts, err := shlex.Split(commandHelp)
	if err != nil {
		return nil, fmt.Errorf("parse --command-help: %w", err)
	}
	if len(helpParts) == 0 {
		return nil, fmt.Errorf("no command specified for --command-help")
	}

	return &Config{
		Name:               filepath.Base(parts[0]),
		Command:            parts,
		CommandDisplay:     command,
		HelpCommandDisplay: commandHelp,
	}, nil
}

// Instructions returns the server instructions text for the wrapped command.
func (c *Config) Instructions() string {
	return fmt.Sprintf(
		"This MCP server wraps a shell command.\n"+
			"Invoke the `%s` tool to run `%s`.\n"+
			"Provide arguments via the `arguments` parameter; optional stdin can be set via `stdin`.\n"+
			"To review the command help, run: %s",
		c.Name, c.CommandDisplay, c.HelpCommandDisplay)
}
