//go:build ebiten

package main

import "rewindlife/src/config"

const defaultMode = config.ModeWindow
