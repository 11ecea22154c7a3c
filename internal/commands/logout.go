package commands

import (
	"context"
	"flag"
	"fmt"

	"ttask/internal/exitcode"
)

func init() {
	Register(&LogoutCmd{})
}

// LogoutCmd implements the logout command.
type LogoutCmd struct{}

func (c *LogoutCmd) Name() string      { return "logout" }
func (c *LogoutCmd) Aliases() []string { return nil }
func (c *LogoutCmd) Synopsis() string  { return "Remove the stored session" }
func (c *LogoutCmd) Usage() string     { return "ttask logout [common flags]" }
func (c *LogoutCmd) NeedsAuth() bool   { return false }

func (c *LogoutCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *LogoutCmd) Run(ctx context.Context, env *Env, args []string) int {
	sess, err := env.Store.Restore()
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: %v\n", err)
		return exitcode.AuthError
	}

	// Clear even when no session restored, to scrub partial state.
	if err := env.Store.Clear(); err != nil {
		fmt.Fprintf(env.ErrOut, "error: remove session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		if sess == nil {
			fmt.Fprintln(env.Out, "not logged in")
		} else {
			fmt.Fprintln(env.Out, "logged out")
		}
	}
	return exitcode.Success
}
