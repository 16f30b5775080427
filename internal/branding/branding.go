// Package branding provides compile-time identity values for the launcher.
//
// Repackagers edit branding.yaml in this directory before building; Go's
// //go:embed bakes it into the binary, with hard defaults as a safety net.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	EngineName  string `yaml:"engine_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing or empty.
		defaults = brand{
			CLIName:     "agent-precommit",
			EngineName:  "apc",
			DisplayName: "agent-precommit",
			Description: "Smart pre-commit hooks for humans and AI coding agents",
			HomeDir:     ".apc",
			EnvPrefix:   "APC",
			GoModule:    "github.com/agent-precommit/apc-launcher",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the wrapper command name (e.g., "agent-precommit").
func CLIName() string { load(); return defaults.CLIName }

// EngineName returns the base name of the engine binary the launcher
// resolves and spawns (e.g., "apc"). Platform suffixes are applied elsewhere.
func EngineName() string { load(); return defaults.EngineName }

// DisplayName returns the human-readable product name.
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".apc").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "APC").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by packaging scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("INSTALL_DIR") → "APC_INSTALL_DIR".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
