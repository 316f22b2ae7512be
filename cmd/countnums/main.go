package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/countnums/internal/app"
	apperrors "github.com/agbru/countnums/internal/errors"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		return
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		os.Exit(apperrors.HandleError(err, os.Stderr))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	exitCode := application.Run(ctx, os.Stdout)
	stop()
	os.Exit(exitCode)
}
