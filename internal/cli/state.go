package cli

import (
	"os"
	"path/filepath"
)

// stateDir returns the directory memscan keeps its result-set and
// tracked-address files in between invocations, creating it if
// necessary.
func stateDir(env map[string]string) (string, error) {
	dir := env["XDG_STATE_HOME"]
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}

		dir = filepath.Join(home, ".local", "state")
	}

	dir = filepath.Join(dir, "memscan")

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	return dir, nil
}

func resultSetPath(env map[string]string) (string, error) {
	dir, err := stateDir(env)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "results.json"), nil
}

func trackedSetPath(env map[string]string) (string, error) {
	dir, err := stateDir(env)
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "tracked.json"), nil
}
