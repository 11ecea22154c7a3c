package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"strings"

	"ttask/internal/exitcode"
	"ttask/internal/service"
)

func init() {
	Register(&LoginCmd{})
}

// LoginCmd implements the login command.
type LoginCmd struct {
	email string
}

// SetEmail sets the email (for testing).
func (c *LoginCmd) SetEmail(email string) {
	c.email = email
}

func (c *LoginCmd) Name() string      { return "login" }
func (c *LoginCmd) Aliases() []string { return nil }
func (c *LoginCmd) Synopsis() string  { return "Authenticate with the task tracker" }
func (c *LoginCmd) Usage() string     { return "ttask login [common flags] [--email <email>]" }
func (c *LoginCmd) NeedsAuth() bool   { return false }

func (c *LoginCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.email, "email", "", "")
}

func (c *LoginCmd) Run(ctx context.Context, env *Env, args []string) int {
	// Check if already logged in
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

	password, err := promptPassword(env, "Password: ")
	if err != nil {
		fmt.Fprintf(env.ErrOut, "error: read password: %v\n", err)
		return exitcode.UserError
	}
	if password == "" {
		fmt.Fprintln(env.ErrOut, "error: password required")
		return exitcode.UserError
	}

	sess, err := env.Auth.Login(ctx, email, password)
	if err != nil {
		return reportAuthError(env, err)
	}

	// Network success strictly precedes the durable write.
	if err := env.Store.Set(sess.Token, sess.User); err != nil {
		fmt.Fprintf(env.ErrOut, "error: save session: %v\n", err)
		return exitcode.AuthError
	}

	if !env.Cfg.Quiet {
		fmt.Fprintf(env.Out, "logged in as %s\n", sess.User.Email)
	}
	return exitcode.Success
}

// resolveEmail returns the email from the flag or by prompting.
func resolveEmail(env *Env, flagValue string) (string, int) {
	email := strings.TrimSpace(flagValue)
	if email == "" {
		line, err := promptLine(env, "Email: ")
		if err != nil {
			fmt.Fprintf(env.ErrOut, "error: read email: %v\n", err)
			return "", exitcode.UserError
		}
		email = line
	}
	if email == "" {
		fmt.Fprintln(env.ErrOut, "error: email required")
		return "", exitcode.UserError
	}
	return email, exitcode.Success
}

// reportAuthError prints a failed credential exchange. Rejections keep
// the server's message; transport failures are backend errors. Either
// way the prior session state is untouched.
func reportAuthError(env *Env, err error) int {
	var statusErr service.StatusError
	if errors.As(err, &statusErr) {
		fmt.Fprintf(env.ErrOut, "error: %s\n", statusErr.Error())
		return exitcode.AuthError
	}
	fmt.Fprintf(env.ErrOut, "error: %v\n", err)
	return exitcode.BackendError
}
