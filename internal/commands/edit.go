package commands

import (
	"context"
	"flag"
	"fmt"

	"ttask/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command. It fetches the task first and puts
// the replacement with the task's current completed flag, so an edit never
// resets fields the command does not own.
type EditCmd struct {
	title     string
	desc      string
	clearDesc bool
}

// SetFields sets the edit fields (for testing).
func (c *EditCmd) SetFields(title, desc string, clearDesc bool) {
	c.title = title
	c.desc = desc
	c.clearDesc = clearDesc
}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's title or description" }
func (c *EditCmd) Usage() string {
	return "ttask edit [common flags] [--title <text>] [--desc <text>] [--clear-desc] <id>"
}
func (c *EditCmd) NeedsAuth() bool { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.title, "title", "", "")
	fs.StringVar(&c.desc, "desc", "", "")
	fs.BoolVar(&c.clearDesc, "clear-desc", false, "")
}

func (c *EditCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, code := parseTaskID(env, args)
	if code != exitcode.Success {
		return code
	}

	if c.title == "" && c.desc == "" && !c.clearDesc {
		fmt.Fprintln(env.ErrOut, "error: nothing to change")
		return exitcode.UserError
	}
	if c.desc != "" && c.clearDesc {
		fmt.Fprintln(env.ErrOut, "error: cannot use both --desc and --clear-desc")
		return exitcode.UserError
	}

	current, err := env.Service.GetTask(ctx, id)
	if err != nil {
		return reportServiceError(env, err)
	}

	title := current.Title
	if c.title != "" {
		title = c.title
	}
	if code := validateTitle(env, title); code != exitcode.Success {
		return code
	}

	desc := current.Description
	switch {
	case c.clearDesc:
		desc = ""
	case c.desc != "":
		desc = c.desc
	}

	task, err := env.Service.UpdateTask(ctx, id, title, desc, current.Completed)
	if err != nil {
		return reportServiceError(env, err)
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(env.Out, "updated %s\n", task.ID)
	}
	return exitcode.Success
}
