package launcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/agent-precommit/apc-launcher/internal/branding"
	"github.com/agent-precommit/apc-launcher/internal/platform"
)

// Launcher resolves the engine binary and runs it. The zero value targets the
// real environment: InstallDir defaults to the directory of the launcher's own
// executable, LookPath to exec.LookPath, and the streams to the process's own.
// Each invocation is independent; a Launcher holds no state between calls.
type Launcher struct {
	// InstallDir is the directory probed for the co-located engine binary.
	InstallDir string

	// LookPath finds a binary on the executable search path. Tests substitute
	// a deterministic implementation here.
	LookPath func(file string) (string, error)

	// Stdin, Stdout, and Stderr are wired to the child by Run. RunCaptured
	// ignores Stdout and Stderr and buffers instead.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// Logger receives the debug resolution trace. Engine output never goes
	// through it.
	Logger *slog.Logger
}

// Result captures the outcome of a single engine invocation.
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// ResolveExecutable returns the absolute path to the engine binary. The
// co-located candidate in the install directory wins; the search path is
// consulted only when that candidate is absent. When neither yields an
// executable, the error is a *NotFoundError naming the attempted path.
func (l *Launcher) ResolveExecutable() (string, error) {
	name := platform.ExecutableName(branding.EngineName())

	dir := l.InstallDir
	if dir == "" {
		d, err := selfDir()
		if err != nil {
			return "", fmt.Errorf("locating launcher install directory: %w", err)
		}
		dir = d
	}

	candidate := filepath.Join(dir, name)
	if platform.IsExecutable(candidate) {
		abs, err := filepath.Abs(candidate)
		if err != nil {
			return "", fmt.Errorf("resolving absolute path of %s: %w", candidate, err)
		}
		l.logger().Debug("resolved engine binary", "path", abs, "source", "install dir")
		return abs, nil
	}

	lookPath := l.LookPath
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	if found, lookErr := lookPath(name); lookErr == nil {
		abs, err := filepath.Abs(found)
		if err != nil {
			return "", fmt.Errorf("resolving absolute path of %s: %w", found, err)
		}
		l.logger().Debug("resolved engine binary", "path", abs, "source", "search path")
		return abs, nil
	}

	return "", &NotFoundError{Name: name, Attempted: candidate}
}

// Run resolves the engine, spawns it once with args forwarded verbatim, and
// blocks until it exits. The child's streams are wired straight through to
// the launcher's; its exit code is returned unchanged with a nil error, so a
// failing engine is not a failing launcher.
func (l *Launcher) Run(ctx context.Context, args []string) (int, error) {
	bin, err := l.ResolveExecutable()
	if err != nil {
		return 0, err
	}

	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = l.stdin()
	cmd.Stdout = l.stdout()
	cmd.Stderr = l.stderr()

	l.logger().Debug("spawning engine", "path", bin, "args", args)
	return waitExit(cmd, bin)
}

// RunCaptured is Run for programmatic callers: the child's stdout and stderr
// are buffered into the Result instead of being forwarded.
func (l *Launcher) RunCaptured(ctx context.Context, args []string) (*Result, error) {
	bin, err := l.ResolveExecutable()
	if err != nil {
		return nil, err
	}

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd := exec.CommandContext(ctx, bin, args...)
	cmd.Stdin = l.stdin()
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	l.logger().Debug("spawning engine", "path", bin, "args", args, "captured", true)
	code, err := waitExit(cmd, bin)
	if err != nil {
		return nil, err
	}

	return &Result{
		ExitCode: code,
		Stdout:   stdoutBuf.String(),
		Stderr:   stderrBuf.String(),
	}, nil
}

// waitExit runs the prepared command and translates *exec.ExitError into a
// plain exit code. Any other failure means the spawn itself went wrong.
func waitExit(cmd *exec.Cmd, bin string) (int, error) {
	if err := cmd.Run(); err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return exitErr.ExitCode(), nil
		}
		return 0, fmt.Errorf("executing %s: %w", bin, err)
	}
	return 0, nil
}

// selfDir returns the directory holding the launcher's own executable.
// Symlinked installs (a linked bin directory, say) resolve to the real
// location so the engine is found next to the actual file.
func selfDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Dir(exe), nil
}

func (l *Launcher) stdin() io.Reader {
	if l.Stdin != nil {
		return l.Stdin
	}
	return os.Stdin
}

func (l *Launcher) stdout() io.Writer {
	if l.Stdout != nil {
		return l.Stdout
	}
	return os.Stdout
}

func (l *Launcher) stderr() io.Writer {
	if l.Stderr != nil {
		return l.Stderr
	}
	return os.Stderr
}

func (l *Launcher) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
