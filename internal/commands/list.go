package commands

import (
	"context"
	"flag"
	"fmt"

	"ttask/internal/exitcode"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command. Handles both `ttask` (no args)
// and `ttask list`. The list is always refetched in full, never patched
// from local state.
type ListCmd struct {
	done bool
	open bool
}

// SetFilter sets the completion filter flags (for testing).
func (c *ListCmd) SetFilter(done, open bool) {
	c.done = done
	c.open = open
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "ttask list [common flags] [--done | --open]" }
func (c *ListCmd) NeedsAuth() bool   { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.done, "done", false, "")
	fs.BoolVar(&c.open, "open", false, "")
}

func (c *ListCmd) Run(ctx context.Context, env *Env, args []string) int {
	if len(args) > 0 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if c.done && c.open {
		fmt.Fprintln(env.ErrOut, "error: cannot use both --done and --open")
		return exitcode.UserError
	}

	var filter *bool
	if c.done || c.open {
		completed := c.done
		filter = &completed
	}

	tasks, err := env.Service.ListTasks(ctx, filter)
	if err != nil {
		return reportServiceError(env, err)
	}

	if len(tasks) == 0 {
		if !env.Cfg.Quiet {
			fmt.Fprintln(env.Out, "no tasks found")
		}
		return exitcode.Success
	}

	f := env.Formatter()
	for _, t := range tasks {
		f.Task(t)
	}
	return exitcode.Success
}
