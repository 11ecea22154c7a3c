// Package commands provides the command interface and implementations.
package commands

import (
	"bufio"
	"context"
	"flag"
	"io"
	"strings"

	"ttask/internal/config"
	"ttask/internal/output"
	"ttask/internal/service"
	"ttask/internal/session"
)

// Env carries everything a command needs to run. Cfg, Store, Auth, and
// the streams are always set; Session and Service are set only for
// commands whose NeedsAuth returns true.
type Env struct {
	Cfg     *config.Config
	Store   *session.Store
	Session *service.Session
	Service service.Service
	Auth    service.Authenticator
	In      io.Reader
	Out     io.Writer
	ErrOut  io.Writer
	Color   bool

	in  *bufio.Reader
	fmt *output.Formatter
}

// Formatter returns the Env's output formatter, creating it on first use.
func (e *Env) Formatter() *output.Formatter {
	if e.fmt == nil {
		e.fmt = output.New(e.Out, e.Color)
	}
	return e.fmt
}

// ReadLine reads one trimmed line from the Env's input stream.
func (e *Env) ReadLine() (string, error) {
	if e.in == nil {
		e.in = bufio.NewReader(e.In)
	}
	line, err := e.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsAuth returns true if the command requires a stored session.
	// Commands like help, version, login, and logout return false.
	NeedsAuth() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command with positional args after flag parsing
	// and returns the exit code.
	Run(ctx context.Context, env *Env, args []string) int
}
