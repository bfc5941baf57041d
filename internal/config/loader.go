package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const (
	// ProjectConfigFile is the name of the project-level config file
	ProjectConfigFile = "roommate.yaml"
	// UserConfigDir is the directory for user-level config
	UserConfigDir = ".config/roommate"
	// UserConfigFile is the name of the user-level config file
	UserConfigFile = "config.yaml"
	// DotEnvFile holds environment defaults next to the project config
	DotEnvFile = ".env"
)

// Loader handles configuration loading with layered precedence
type Loader struct {
	logger   *slog.Logger
	userPath string
	workDir  string
	lookup   LookupFunc
}

// LoaderOption customizes a Loader.
type LoaderOption func(*Loader)

// WithUserConfigPath overrides the user config location.
func WithUserConfigPath(path string) LoaderOption {
	return func(l *Loader) { l.userPath = path }
}

// WithWorkDir sets the directory the project config and .env are searched from.
func WithWorkDir(dir string) LoaderOption {
	return func(l *Loader) { l.workDir = dir }
}

// WithLookup replaces os.LookupEnv.
func WithLookup(lookup LookupFunc) LoaderOption {
	return func(l *Loader) { l.lookup = lookup }
}

// NewLoader creates a new configuration loader
func NewLoader(logger *slog.Logger, opts ...LoaderOption) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	l := &Loader{logger: logger, lookup: os.LookupEnv}
	if home, err := os.UserHomeDir(); err == nil {
		l.userPath = filepath.Join(home, UserConfigDir, UserConfigFile)
	}
	if cwd, err := os.Getwd(); err == nil {
		l.workDir = cwd
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load loads configuration with layered precedence:
// 1. Default config
// 2. User config (~/.config/roommate/config.yaml)
// 3. Project config (explicitPath, else roommate.yaml in the work dir or a parent)
// 4. Environment variables, falling back to a .env file in the work dir
func (l *Loader) Load(explicitPath string) (*Config, error) {
	config := DefaultConfig()

	if l.userPath != "" {
		if userConfig, err := LoadFromFile(l.userPath); err == nil {
			l.logger.Debug("Loaded user config", "path", l.userPath)
			config.Merge(userConfig)
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to load user config", "path", l.userPath, "error", err)
		}
	}

	projectConfigPath := explicitPath
	if projectConfigPath == "" {
		projectConfigPath = l.findProjectConfig()
	}
	if projectConfigPath != "" {
		projectConfig, err := LoadFromFile(projectConfigPath)
		if err != nil {
			// An explicitly requested file must exist and parse.
			if explicitPath != "" {
				return nil, err
			}
			l.logger.Warn("Failed to load project config", "path", projectConfigPath, "error", err)
		} else {
			l.logger.Debug("Loaded project config", "path", projectConfigPath)
			config.Merge(projectConfig)
		}
	} else {
		l.logger.Debug("No project config found")
	}

	if err := config.ApplyEnv(l.envLookup()); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.Auth.JWTSecret == DevJWTSecret {
		l.logger.Warn("Using the development JWT secret; set JWT_SECRET in production")
	}

	return config, nil
}

// envLookup consults the real environment first and the .env file second.
func (l *Loader) envLookup() LookupFunc {
	dotenv := map[string]string{}
	if l.workDir != "" {
		path := filepath.Join(l.workDir, DotEnvFile)
		if values, err := godotenv.Read(path); err == nil {
			l.logger.Debug("Loaded .env file", "path", path, "keys", len(values))
			dotenv = values
		} else if !errors.Is(err, fs.ErrNotExist) {
			l.logger.Warn("Failed to read .env file", "path", path, "error", err)
		}
	}
	return func(key string) (string, bool) {
		if v, ok := l.lookup(key); ok {
			return v, true
		}
		v, ok := dotenv[key]
		return v, ok
	}
}

// findProjectConfig searches for roommate.yaml in the work dir and its parents
func (l *Loader) findProjectConfig() string {
	if l.workDir == "" {
		return ""
	}

	dir := l.workDir
	for {
		configPath := filepath.Join(dir, ProjectConfigFile)
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
