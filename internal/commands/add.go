package commands

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"ttask/internal/exitcode"
)

// maxTitleLen mirrors the backend's title bound.
const maxTitleLen = 200

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Synopsis() string  { return "Create a task" }
func (c *AddCmd) Usage() string     { return "ttask add [common flags] [--desc <text>] <title...>" }
func (c *AddCmd) NeedsAuth() bool   { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, env *Env, args []string) int {
	// Validation happens before any request is issued.
	title := strings.TrimSpace(strings.Join(args, " "))
	if code := validateTitle(env, title); code != exitcode.Success {
		return code
	}

	task, err := env.Service.CreateTask(ctx, title, c.description)
	if err != nil {
		return reportServiceError(env, err)
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(env.Out, "created %s\n", task.ID)
	}
	return exitcode.Success
}

func validateTitle(env *Env, title string) int {
	if title == "" {
		fmt.Fprintln(env.ErrOut, "error: title is required")
		return exitcode.UserError
	}
	if len(title) > maxTitleLen {
		fmt.Fprintf(env.ErrOut, "error: title must be %d characters or fewer\n", maxTitleLen)
		return exitcode.UserError
	}
	return exitcode.Success
}
