package config

import (
	"errors"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// GlobalConfigEnv overrides the global config file path when set.
const GlobalConfigEnv = "GIT_TIDY_CONFIG"

// ProtectedBranches lists branch names and patterns excluded from
// deletion. Nil slices mean "not set by this layer" (inherit).
type ProtectedBranches struct {
	Defaults   []string `toml:"defaults"`
	Additional []string `toml:"additional"`
	Patterns   []string `toml:"patterns"`
}

// Filters holds branch-filtering settings.
type Filters struct {
	BaseBranch string `toml:"base_branch"` // merge-status base; "" = current branch
}

// Config is one configuration layer. The same schema is used for the
// global and the project file.
type Config struct {
	ProtectedBranches ProtectedBranches `toml:"protected_branches"`
	Filters           Filters           `toml:"filters"`
}

// Default returns the built-in configuration. The defaults guarantee the
// conventional trunk names are protected even with no config files.
func Default() Config {
	return Config{
		ProtectedBranches: ProtectedBranches{
			Defaults: []string{"master", "develop", "main"},
		},
	}
}

// ProtectedNames returns the union of defaults and additional entries.
// Entries containing '*' are glob patterns; the rest are exact names.
func (c *Config) ProtectedNames() []string {
	names := make([]string, 0, len(c.ProtectedBranches.Defaults)+len(c.ProtectedBranches.Additional))
	names = append(names, c.ProtectedBranches.Defaults...)
	names = append(names, c.ProtectedBranches.Additional...)
	return names
}

// globalConfigPath returns the path to the global config file.
func globalConfigPath() (string, error) {
	if override := os.Getenv(GlobalConfigEnv); override != "" {
		return override, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "git-tidy", "config.toml"), nil
}

// LoadGlobal reads the global config file.
// Returns nil (no error) if the file doesn't exist.
func LoadGlobal() (*Config, error) {
	configPath, err := globalConfigPath()
	if err != nil {
		return nil, nil
	}
	return loadFile(configPath)
}

// loadFile reads and validates one config layer.
// Returns nil (no error) if the file doesn't exist.
func loadFile(configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", configPath, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", configPath, err)
	}

	if err := validate(&cfg, configPath); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// validate checks every pattern in one layer so that a bad pattern fails
// at load time, naming the pattern and its source, not per branch.
func validate(cfg *Config, source string) error {
	for _, name := range cfg.ProtectedNames() {
		if !strings.Contains(name, "*") {
			continue
		}
		if _, err := path.Match(name, ""); err != nil {
			return fmt.Errorf("invalid glob pattern %q in %s: %w", name, source, err)
		}
	}
	for _, pattern := range cfg.ProtectedBranches.Patterns {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("invalid regex pattern %q in %s: %w", pattern, source, err)
		}
	}
	return nil
}

const defaultGlobalConfig = `# git-tidy configuration

# Branch protection. Protected branches are never deleted.
#
# defaults:   replaces the built-in list (master, develop, main)
# additional: added on top of defaults; entries containing * are glob
#             patterns anchored to the full branch name (release/* matches
#             release/1.0 but not prerelease/1.0)
# patterns:   regular expressions
#
# [protected_branches]
# defaults = ["master", "develop", "main"]
# additional = ["release/*", "hotfix/*"]
# patterns = ["^feature/.*-wip$"]

# Filters
#
# base_branch: the branch merge status is evaluated against.
# Defaults to the currently checked-out branch.
#
# [filters]
# base_branch = "main"
`

// Init creates a default global config file.
// If force is true, overwrites an existing file.
// Returns the path to the created file.
func Init(force bool) (string, error) {
	configPath, err := globalConfigPath()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(configPath); err == nil {
			return "", errors.New("config file already exists: " + configPath)
		}
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", err
	}

	if err := os.WriteFile(configPath, []byte(defaultGlobalConfig), 0644); err != nil {
		return "", err
	}

	return configPath, nil
}
