package commands

import (
	"context"
	"flag"
	"fmt"

	"ttask/internal/exitcode"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command. The toggle is server-side, so the
// command never needs to know the task's current state.
type DoneCmd struct{}

func (c *DoneCmd) Name() string      { return "done" }
func (c *DoneCmd) Aliases() []string { return []string{"toggle"} }
func (c *DoneCmd) Synopsis() string  { return "Toggle a task's completion" }
func (c *DoneCmd) Usage() string     { return "ttask done [common flags] <id>" }
func (c *DoneCmd) NeedsAuth() bool   { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, code := parseTaskID(env, args)
	if code != exitcode.Success {
		return code
	}

	task, err := env.Service.ToggleComplete(ctx, id)
	if err != nil {
		return reportServiceError(env, err)
	}

	if !env.Cfg.Quiet {
		if task.Completed {
			fmt.Fprintf(env.Out, "completed %s\n", task.ID)
		} else {
			fmt.Fprintf(env.Out, "reopened %s\n", task.ID)
		}
	}
	return exitcode.Success
}
