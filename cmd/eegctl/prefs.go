package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// prefsFile persists small client preferences between runs.
type prefsFile struct {
	ClearScreenAfterCapture bool   `toml:"clear_screen_after_capture"`
	DefaultSubject          string `toml:"default_subject"`
}

func (a *App) loadPrefs() error {
	if err := ensureFile(a.prefsPath); err != nil {
		return err
	}
	if _, err := toml.DecodeFile(a.prefsPath, &a.prefs); err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}
	return nil
}

func (a *App) savePrefs() error {
	buf := strings.Builder{}
	if err := toml.NewEncoder(&buf).Encode(a.prefs); err != nil {
		return err
	}
	return os.WriteFile(a.prefsPath, []byte(buf.String()), 0o644)
}

func ensureFile(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(path, nil, 0o644)
}
