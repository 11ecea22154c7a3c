package commands

import (
	"context"
	"flag"
	"fmt"

	"ttask/internal/exitcode"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "ttask help" }
func (c *HelpCmd) NeedsAuth() bool   { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, env *Env, args []string) int {
	fmt.Fprint(env.Out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  ttask                                          List all tasks
  ttask list [common flags] [--done | --open]    List tasks, optionally filtered
  ttask add [common flags] [--desc <text>] <title...>
  ttask show [common flags] <id>
  ttask edit [common flags] [--title <text>] [--desc <text>] [--clear-desc] <id>
  ttask done [common flags] <id>                 Toggle completion
  ttask rm [common flags] [--force] <id>
  ttask register [common flags] [--email <email>] [--name <name>]
  ttask login [common flags] [--email <email>]
  ttask logout [common flags]
  ttask whoami [common flags]
  ttask help
  ttask version

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr
  --no-color       Disable styled output

The backend base URL comes from TTASK_API_URL, then api_url in
<configdir>/config.toml, then http://localhost:8000.
`
