// Package player launches an external media player at a seek offset.
// Each supported player is its own implementation of the Player
// interface; a name-keyed registry picks the implementation at runtime so
// adding a player means adding a type, not threading switches through
// callers.
package player

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"time"
)

// Player describes how to drive one external media player.
type Player interface {
	// Name is the registry key, as written in configuration.
	Name() string
	// Args builds the argument list to open video seeked to the offset.
	Args(videoPath string, seek time.Duration) []string
	// Binaries lists candidate executables, tried in order: bare names
	// are resolved on PATH, absolute paths are checked directly.
	Binaries() []string
}

var registry = map[string]Player{}

func register(p Player) {
	registry[p.Name()] = p
}

// Lookup returns the Player registered under name.
func Lookup(name string) (Player, bool) {
	p, ok := registry[name]
	return p, ok
}

// Names lists the registered player names.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

var ErrPlayerNotFound = errors.New("player binary not found")

// Launch starts the player detached, opening videoPath at seek. binary
// overrides the player's own candidate list when non-empty.
func Launch(p Player, binary, videoPath string, seek time.Duration) error {
	if binary == "" {
		var err error
		binary, err = findBinary(p)
		if err != nil {
			return err
		}
	}

	cmd := exec.Command(binary, p.Args(videoPath, seek)...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("launching %s: %w", p.Name(), err)
	}
	// The player owns its own lifetime; reap the process in the
	// background so it never lingers as a zombie.
	go cmd.Wait() // nolint: errcheck
	return nil
}

func findBinary(p Player) (string, error) {
	for _, candidate := range p.Binaries() {
		if path, err := exec.LookPath(candidate); err == nil {
			return path, nil
		}
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrPlayerNotFound, p.Name())
}

// clockSeek renders a seek offset as hh:mm:ss, the whole-second form most
// players accept on their command line.
func clockSeek(seek time.Duration) string {
	if seek < 0 {
		seek = 0
	}
	secs := int(seek.Seconds())
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, secs/60%60, secs%60)
}
