// Package tui contains the terminal screens: the plan list and the share
// flow's category picker.
package tui

import (
	"log/slog"

	"github.com/myrinnew/wpkit/internal/config"
	"github.com/myrinnew/wpkit/internal/wpapi"
)

// Deps carries everything the screens need.
type Deps struct {
	API    *wpapi.Client
	Cfg    config.Config
	Logger *slog.Logger
}

func (d Deps) logger() *slog.Logger {
	if d.Logger != nil {
		return d.Logger
	}
	return slog.Default()
}
