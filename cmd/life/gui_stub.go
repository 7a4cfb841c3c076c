//go:build !ebiten

package main

import (
	"context"

	"github.com/pkg/errors"

	"lifeloop/internal/app"
)

func runGUI(context.Context, *app.Config) error {
	return errors.New("the GUI build requires the ebiten build tag; re-run with `go run -tags ebiten ./cmd/life` or pass -headless")
}
