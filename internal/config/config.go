package config

import (
	"os"
	"path/filepath"

	"github.com/agent-precommit/apc-launcher/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "launcher"
	fileType = "yaml"
)

// Keys understood by the launcher. These configure the launcher only; the
// engine's own configuration is never read here.
const (
	// KeyInstallDir overrides the directory probed for the co-located engine
	// binary. Empty means "the directory the launcher itself is installed in".
	KeyInstallDir = "install_dir"

	// KeyDebug enables the resolution trace on stderr.
	KeyDebug = "debug"
)

// Dir returns the path to the launcher config directory (~/.apc/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.apc/launcher.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// Load initializes Viper to read from the config file and environment.
// A missing config file is not an error; env vars (APC_INSTALL_DIR,
// APC_DEBUG) take precedence over file values.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	_ = viper.ReadInConfig()
}

// InstallDir returns the configured install directory override, or the
// empty string when the launcher should use its own location.
func InstallDir() string {
	return viper.GetString(KeyInstallDir)
}

// Debug reports whether the resolution trace is enabled.
func Debug() bool {
	return viper.GetBool(KeyDebug)
}
