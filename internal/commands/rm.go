package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"ttask/internal/exitcode"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command. Deletion is permanent, so intent is
// confirmed unless --force is given.
type RmCmd struct {
	force bool
}

// SetForce sets the force flag (for testing).
func (c *RmCmd) SetForce(force bool) {
	c.force = force
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"delete"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "ttask rm [common flags] [--force] <id>" }
func (c *RmCmd) NeedsAuth() bool   { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
}

func (c *RmCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, code := parseTaskID(env, args)
	if code != exitcode.Success {
		return code
	}

	if !c.force {
		answer, err := promptLine(env, fmt.Sprintf("delete task %s? [y/N] ", id))
		if err != nil {
			fmt.Fprintf(env.ErrOut, "error: read confirmation: %v\n", err)
			return exitcode.UserError
		}
		if !strings.EqualFold(answer, "y") && !strings.EqualFold(answer, "yes") {
			if !env.Cfg.Quiet {
				fmt.Fprintln(env.Out, "aborted")
			}
			return exitcode.Success
		}
	}

	if err := env.Service.DeleteTask(ctx, id); err != nil {
		return reportServiceError(env, err)
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(env.Out, "deleted %s\n", id)
	}
	return exitcode.Success
}
