package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/agent-precommit/apc-launcher/internal/branding"
	"github.com/agent-precommit/apc-launcher/internal/config"
	"github.com/agent-precommit/apc-launcher/internal/launcher"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` is a thin wrapper around the ` + branding.EngineName() + ` engine binary.
It resolves the engine next to its own install location (falling back to PATH),
forwards all arguments to it, and exits with the engine's exit code.`,
	// The engine owns the entire CLI surface, --help and --version included.
	DisableFlagParsing: true,
	Args:               cobra.ArbitraryArgs,
	SilenceUsage:       true,
	SilenceErrors:      true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return forward(cmd.Context(), args)
	},
}

// exitError relays the engine's non-zero exit code through cobra without any
// launcher-owned output.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("%s exited with code %d", branding.EngineName(), e.code)
}

// forward runs the engine with args exactly as given.
func forward(ctx context.Context, args []string) error {
	config.Load()

	l := &launcher.Launcher{InstallDir: config.InstallDir()}
	if config.Debug() {
		l.Logger = newLogger(os.Stderr).With(
			"version", buildVersion,
			"commit", buildCommit,
			"built", buildDate,
		)
	}

	code, err := l.Run(ctx, args)
	if err != nil {
		return err
	}
	if code != 0 {
		return &exitError{code: code}
	}
	return nil
}

// newLogger builds the debug-trace logger, colored only when w is a terminal.
func newLogger(w io.Writer) *slog.Logger {
	color := false
	if f, ok := w.(*os.File); ok {
		color = isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:   slog.LevelDebug,
		NoColor: !color,
	}))
}

// Execute runs the root command and returns the process exit code. Build info
// is injected via ldflags. Engine exit codes pass through unchanged; a failed
// resolution prints one line and yields exit 1.
func Execute(version, commit, date string) int {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	if err := rootCmd.Execute(); err != nil {
		var exitErr *exitError
		if errors.As(err, &exitErr) {
			return exitErr.code
		}
		fmt.Fprintf(os.Stderr, "%s: %v\n", branding.CLIName(), err)
		return 1
	}
	return 0
}
