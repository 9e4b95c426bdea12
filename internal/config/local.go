package config

import (
	"errors"
	"os"
	"path/filepath"
)

// LocalConfigFileName is the per-project config file, looked up at the
// repository root.
const LocalConfigFileName = ".git-tidy.toml"

// LoadLocal reads the project config from the given repository root.
// Returns nil (no error) if the file doesn't exist.
// Returns an error only on parse or validation failure.
func LoadLocal(repoPath string) (*Config, error) {
	return loadFile(filepath.Join(repoPath, LocalConfigFileName))
}

const defaultLocalConfig = `# git-tidy project config
# Settings here are merged on top of the global config for this
# repository only: defaults replaces, additional and patterns are
# added to the global lists.

# [protected_branches]
# additional = ["release/*"]
# patterns = ["^spike/"]

# [filters]
# base_branch = "main"
`

// InitLocal creates a default project config file in dir.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func InitLocal(dir string, force bool) (string, error) {
	configPath := filepath.Join(dir, LocalConfigFileName)

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return "", errors.New("config file already exists: " + configPath)
		}
	}

	if err := os.WriteFile(configPath, []byte(defaultLocalConfig), 0644); err != nil {
		return "", err
	}

	return configPath, nil
}
