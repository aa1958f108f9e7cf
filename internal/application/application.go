package application

import (
	"os"
	"path/filepath"
	"sync"
)

const (
	// AppName is the application name used for identification
	AppName = "gitai"

	// UserAgent is sent with every GitHub API request
	UserAgent = "GitAI-CLI/1.0"

	// Version is the CLI version reported by --version
	Version = "1.0.0"

	// configFileName is the persisted settings file in the user's home
	configFileName = ".gitai_config.json"
)

var (
	once       sync.Once
	configPath string
)

// ConfigFilePath returns the fixed location of the persisted settings file,
// ~/.gitai_config.json. When the home directory cannot be resolved the file
// lives in the working directory instead.
func ConfigFilePath() string {
	once.Do(lazyLoad)

	return configPath
}

func lazyLoad() {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		configPath = configFileName

		return
	}

	configPath = filepath.Join(homeDir, configFileName)
}
