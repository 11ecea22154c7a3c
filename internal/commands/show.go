package commands

import (
	"context"
	"flag"
	"fmt"
	"unicode"

	"ttask/internal/exitcode"
)

func init() {
	Register(&ShowCmd{})
}

// ShowCmd implements the show command.
type ShowCmd struct{}

func (c *ShowCmd) Name() string      { return "show" }
func (c *ShowCmd) Aliases() []string { return nil }
func (c *ShowCmd) Synopsis() string  { return "Show a task's details" }
func (c *ShowCmd) Usage() string     { return "ttask show [common flags] <id>" }
func (c *ShowCmd) NeedsAuth() bool   { return true }

func (c *ShowCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *ShowCmd) Run(ctx context.Context, env *Env, args []string) int {
	id, code := parseTaskID(env, args)
	if code != exitcode.Success {
		return code
	}

	task, err := env.Service.GetTask(ctx, id)
	if err != nil {
		return reportServiceError(env, err)
	}

	env.Formatter().TaskDetail(task)
	return exitcode.Success
}

// parseTaskID extracts the single task id argument. Backend ids are the
// string form of a numeric id, so anything else is rejected before a
// request is made.
func parseTaskID(env *Env, args []string) (string, int) {
	if len(args) == 0 {
		fmt.Fprintln(env.ErrOut, "error: task id required")
		return "", exitcode.UserError
	}
	if len(args) > 1 {
		fmt.Fprintf(env.ErrOut, "error: unexpected argument: %s\n", args[1])
		return "", exitcode.UserError
	}
	id := args[0]
	if !isAllDigits(id) {
		fmt.Fprintf(env.ErrOut, "error: invalid task id: %s\n", id)
		return "", exitcode.UserError
	}
	return id, exitcode.Success
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
