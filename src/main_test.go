package main

import (
	"os"
	"path/filepath"
	"testing"

	"rewindlife/src/config"
)

func TestViewersCoverModes(t *testing.T) {
	for _, m := range config.Modes() {
		if _, ok := viewers[m]; !ok {
			t.Errorf("no viewer for mode %q", m)
		}
	}
	if _, ok := viewers[defaultMode]; !ok {
		t.Errorf("no viewer for the default mode %q", defaultMode)
	}
}

func TestColorOutput_Redirected(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if colorOutput(f) {
		t.Fatal("a regular file should not get colors")
	}
}
