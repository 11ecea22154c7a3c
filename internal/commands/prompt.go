package commands

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// promptLine prints label to stderr and reads one line of input.
func promptLine(env *Env, label string) (string, error) {
	fmt.Fprint(env.ErrOut, label)
	return env.ReadLine()
}

// promptPassword reads a password without echo when input is a terminal,
// falling back to a plain line read otherwise (pipes, tests).
func promptPassword(env *Env, label string) (string, error) {
	fmt.Fprint(env.ErrOut, label)
	if file, ok := env.In.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		data, err := term.ReadPassword(int(file.Fd()))
		fmt.Fprintln(env.ErrOut)
		return string(data), err
	}
	return env.ReadLine()
}
