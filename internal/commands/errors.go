package commands

import (
	"errors"
	"fmt"
	"net/http"

	"ttask/internal/exitcode"
	"ttask/internal/service"
)

// reportServiceError prints err and maps it to an exit code. The message
// does not distinguish 404 from 403 from 401; the status only shows up in
// debug logs. A 401 means the stored session itself was rejected, so the
// session is also torn down.
func reportServiceError(env *Env, err error) int {
	var statusErr service.StatusError
	if errors.As(err, &statusErr) {
		if env.Cfg.Debug {
			fmt.Fprintf(env.ErrOut, "debug: api status %d\n", statusErr.HTTPStatus())
		}
		if statusErr.HTTPStatus() == http.StatusUnauthorized {
			if env.Store != nil {
				env.Store.Clear()
			}
			fmt.Fprintf(env.ErrOut, "error: %s (run: ttask login)\n", statusErr.Error())
			return exitcode.AuthError
		}
		fmt.Fprintf(env.ErrOut, "error: %s\n", statusErr.Error())
		return exitcode.BackendError
	}
	fmt.Fprintf(env.ErrOut, "error: %v\n", err)
	return exitcode.BackendError
}
