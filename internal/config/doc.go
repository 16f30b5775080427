// Package config loads the launcher's own settings from ~/.apc/launcher.yaml
// and APC_* environment variables via Viper. It knows exactly two keys: the
// install directory override and the debug toggle. The engine binary's
// configuration is out of scope and is never touched by the launcher.
package config
