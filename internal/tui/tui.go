// Package tui implements the interactive terminal surface of the client
// application: sign-in, the one-time sync decision dialog, and the main menu
// for browsing synced collections and editing settings.
//
// Forms and selects are built with charmbracelet/huh; every flow is a plain
// blocking call so the caller drives the application lifecycle.
package tui

import (
	"errors"

	"github.com/MKhiriev/go-study-keeper/internal/logger"
	"github.com/MKhiriev/go-study-keeper/internal/service"
	"github.com/charmbracelet/huh"
)

// ErrUserQuit is returned when the user leaves the application from any
// top-level screen.
var ErrUserQuit = errors.New("вышел из программы")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("tui: nil client services")
	}
	return &TUI{services: services, logger: logger}, nil
}

// isUserAbort reports whether a form error means the user backed out rather
// than something failing.
func isUserAbort(err error) bool {
	return errors.Is(err, huh.ErrUserAborted)
}
