package config

import (
	"context"
	"net/mail"
	"os"
	"os/exec"
	"os/user"
	"path/filepath"
	"strings"
	"time"
)

const dbFileName = "state.db"

// Config holds resolved configuration for the sprintdeck directory and
// state database.
type Config struct {
	DataDir   string // resolved .sprintdeck directory path
	DBPath    string // full path to state.db
	EnvVarSet bool   // whether SPRINTDECK_PATH was used
}

// Resolve returns the current configuration by checking SPRINTDECK_PATH
// first, then falling back to $PWD/.sprintdeck.
func Resolve() (*Config, error) {
	var dataDir string
	var envVarSet bool

	if envPath := os.Getenv("SPRINTDECK_PATH"); envPath != "" {
		dataDir = envPath
		envVarSet = true
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		dataDir = filepath.Join(cwd, ".sprintdeck")
	}

	return &Config{
		DataDir:   dataDir,
		DBPath:    filepath.Join(dataDir, dbFileName),
		EnvVarSet: envVarSet,
	}, nil
}

// Exists checks if the data directory and DB file both exist.
// It returns an error for non-existence failures (e.g. permission errors).
func (c *Config) Exists() (bool, error) {
	if _, err := os.Stat(c.DataDir); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	if _, err := os.Stat(c.DBPath); err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// DefaultOperator returns a best-guess name and email for the current
// user, for prefilling the login prompt. It tries git config first and
// falls back to the OS username with an empty email.
func DefaultOperator() (name, email string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if out, err := exec.CommandContext(ctx, "git", "config", "user.name").Output(); err == nil {
		name = strings.TrimSpace(string(out))
	}
	if out, err := exec.CommandContext(ctx, "git", "config", "user.email").Output(); err == nil {
		candidate := strings.TrimSpace(string(out))
		if _, err := mail.ParseAddress(candidate); err == nil {
			email = candidate
		}
	}

	if name == "" {
		if u, err := user.Current(); err == nil && u.Username != "" {
			name = u.Username
		}
	}
	return name, email
}
