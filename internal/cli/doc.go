// Package cli defines the Cobra root command for the wrapper binary. The
// launcher owns no subcommands and no flags: parsing is disabled so every
// argument, flag-shaped or not, reaches the engine verbatim, and the engine's
// exit code becomes the wrapper's own.
package cli
