package commands

import (
	"context"
	"flag"
	"fmt"

	"ttask/internal/exitcode"
)

func init() {
	Register(&RegisterCmd{})
}

// RegisterCmd implements the register command. Registration is
// auto-login: the server establishes a session in the same exchange.
type RegisterCmd struct {
	email string
	name  string
}

// SetEmail sets the email (for testing).
func (c *RegisterCmd) SetEmail(email string) {
	c.email = email
}

// SetDisplayName sets the display name (for testing).
func (c *RegisterCmd) SetDisplayName(name string) {
	c.name = name
}

func (c *RegisterCmd) Name() string      { return "register" }
func (c *RegisterCmd) Aliases() []string { return nil }
func (c *RegisterCmd) Synopsis() string  { return "Create an account and log in" }
func (c *RegisterCmd) Usage() string {
	return "ttask register [common flags] [--email <email>] [--name <name>]"
}
func (c *RegisterCmd) NeedsAuth() bool { return false }

func (c *RegisterCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
	fs.StringVar(&c.name, "name", "", "")
}

func (c *RegisterCmd) Run(ctx context.Context, env *Env, args []string) int {
	if sess, err := env.Store.Restore(); err == nil && sess != nil {
		if !env.Cfg.Quiet {
			fmt.Fprintf(env.Out, "already logged in as %s\n", sess.User.Email)
		}
		return exitcode.Success
	}

	email, code := resolveEmail(env, c.email)
	if code != exitcode.Success {
		return code
	}

	name := c.name
	if name == "" {
		line, err := promptLine(env, "Name: ")
		if err != nil {
			fmt.Fprintf(env.ErrOut, "error: read name: %v\n", err)
			return exitcode.UserError
		}
		name = line
	}
	if name == "" {
		fmt.Fprintln(env.ErrOut, "error: name required")
		return exitcode.UserError
	}

	password, err := promptPassword(env, "Password: ")
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: read password: %v\n", err)
		return exitcode.UserError
	}
	if password == "" {
		fmt.Fprintln(env.ErrOut, "error: password required")
		return exitcode.UserError
	}
	confirm, err := promptPassword(env, "Confirm password: ")
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: read password: %v\n", err)
		return exitcode.UserError
	}
	if confirm != password {
		fmt.Fprintln(env.ErrOut, "error: passwords do not match")
		return exitcode.UserError
	}

	sess, err := env.Auth.Register(ctx, email, password, name)
	if err != nil {
		return reportAuthError(env, err)
	}

	if err := env.Store.Set(sess.Token, sess.User); err != nil {
		fmt.Fprintf(env.ErrOut, "error: save session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(env.Out, "registered as %s\n", sess.User.Email)
	}
	return exitcode.Success
}
