//go:build !ebiten

package view

import (
	"context"
	"errors"

	"rewindlife/src/universe"
)

// ErrNoWindow is returned by the window viewer of a build without the 'ebiten' tag
var ErrNoWindow = errors.New("view: the window mode requires building with the 'ebiten' tag")

// Window is a placeholder that satisfies the API expected by the GUI build
type Window struct{}

func NewWindow(string, int, int, int) *Window {
	return &Window{}
}

func (w *Window) Register(*universe.Universe) {}

func (w *Window) Refresh() {}

// Start always reports that the GUI build tag is missing
func (w *Window) Start(context.Context) error {
	return ErrNoWindow
}
