// Package main is the entry point for the ttask CLI.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"ttask/internal/backend/taskapi"
	"ttask/internal/cli"
	"ttask/internal/commands"
	"ttask/internal/config"
	"ttask/internal/service"
)

func main() {
	// Create context that cancels on interrupt
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	svcFactory := func(ctx context.Context, cfg *config.Config, sess *service.Session) (service.Service, error) {
		return taskapi.New(cfg.APIURL, sess.Token), nil
	}
	authFactory := func(cfg *config.Config) service.Authenticator {
		return taskapi.New(cfg.APIURL, "")
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, svcFactory, authFactory)

	code := dispatcher.Run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	os.Exit(code)
}
