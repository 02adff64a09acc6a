// Package main is the entry point for the pin CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/cmd/pin/commands"
	"go.trai.ch/pin/internal/app"
	"go.trai.ch/pin/internal/core/domain"
	_ "go.trai.ch/pin/internal/wiring"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.Telemetry.Close()
	}()

	cli := commands.New(components.App)
	cli.SetConfigHook(components.ConfigLoader.SetFilename)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrLockfileMismatch) {
			// zerr prints a pretty error report with stack trace and metadata
			// when using %+v
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
			return 2
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
