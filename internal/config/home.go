package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// HomeEnvVar overrides the directory holding config.yaml.
const HomeEnvVar = "FATFILEFINDER_HOME"

// ConfigFileName is the file looked up inside the home directory.
const ConfigFileName = "config.yaml"

// GetHome returns the fatfilefinder home directory
// Priority order:
//  1. FATFILEFINDER_HOME environment variable (if set)
//  2. $HOME/.fatfilefinder
//
// The directory is not created; a missing home simply means defaults.
func GetHome() (string, error) {
	if home := os.Getenv(HomeEnvVar); home != "" {
		return home, nil
	}

	userHome, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get user home directory: %w", err)
	}

	return filepath.Join(userHome, ".fatfilefinder"), nil
}
