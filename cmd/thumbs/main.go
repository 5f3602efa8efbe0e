// Command thumbs generates and maintains freedesktop thumbnails.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/thumbs/cmd/thumbs/commands"
	"go.trai.ch/thumbs/internal/app"
	"go.trai.ch/thumbs/internal/core/domain"
	_ "go.trai.ch/thumbs/internal/wiring"
)

// ComponentProvider resolves the wired application and a release func.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stderr, wiredComponents))
}

func wiredComponents(ctx context.Context) (*app.Components, func(), error) {
	c, _, err := graft.ExecuteFor[*app.Components](ctx)
	return c, func() {}, err
}

func run(
	ctx context.Context,
	args []string,
	stderr io.Writer,
	provider ComponentProvider,
	opts ...func(*app.App),
) int {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	components, release, err := provider(ctx)
	if err != nil {
		// no logger yet
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer release()

	for _, opt := range opts {
		opt(components.App)
	}

	root := commands.New(components.App)
	root.SetArgs(args)
	root.SetOutput(os.Stdout, stderr)

	err = root.Execute(ctx)
	if err == nil {
		return 0
	}
	if !silentFailure(err) {
		components.Logger.Error(err)
	}
	return 1
}

// silentFailure reports errors the user has already seen: per-item failures
// printed by the renderer, and interrupts.
func silentFailure(err error) bool {
	return errors.Is(err, domain.ErrGenerateFailed) || errors.Is(err, context.Canceled)
}
