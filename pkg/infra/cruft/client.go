package cruft

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"os/exec"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/update-template/pkg/domain/interfaces"
	"github.com/m-mizutani/update-template/pkg/domain/types"
	"github.com/m-mizutani/update-template/pkg/utils/logging"
)

// outdatedMessage is printed by `cruft check` when the project lags behind its template.
// cruft also exits with status 1 on unhandled exceptions, so the status alone is ambiguous.
const outdatedMessage = "out of date"

type Client struct {
	path string
}

var _ interfaces.Cruft = (*Client)(nil)

func New(path string) *Client {
	return &Client{path: path}
}

// Run executes cruft with args and returns combined stdout and stderr.
func (x *Client) Run(ctx context.Context, args []string) ([]byte, error) {
	logging.From(ctx).Debug("Running cruft", slog.String("path", x.path), slog.Any("args", args))

	var out bytes.Buffer
	cmd := exec.CommandContext(ctx, x.path, args...)
	cmd.Stdout = &out
	cmd.Stderr = &out
	// cruft clones the template with git; never block on a credential prompt.
	cmd.Env = append(os.Environ(), "GIT_TERMINAL_PROMPT=0")

	if err := cmd.Run(); err != nil {
		return out.Bytes(), goerr.Wrap(err, "failed to run cruft",
			goerr.V("path", x.path),
			goerr.V("args", args),
			goerr.V("output", out.String()),
		)
	}

	return out.Bytes(), nil
}

func (x *Client) Check(ctx context.Context, dir string, checkout types.BranchName) (bool, error) {
	out, err := x.Run(ctx, []string{
		"check",
		"--project-dir", dir,
		"--checkout", checkout.String(),
	})
	if err == nil {
		return true, nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && strings.Contains(string(out), outdatedMessage) {
		return false, nil
	}

	return false, goerr.Wrap(types.ErrCommandFailed, "cruft check failed",
		goerr.V("dir", dir),
		goerr.V("checkout", checkout),
		goerr.V("output", string(out)),
		goerr.V("cause", err.Error()),
	)
}

func (x *Client) Update(ctx context.Context, dir string, checkout types.BranchName) error {
	out, err := x.Run(ctx, []string{
		"update",
		"--project-dir", dir,
		"--checkout", checkout.String(),
		"--skip-apply-ask",
	})
	if err != nil {
		return goerr.Wrap(types.ErrCommandFailed, "cruft update failed",
			goerr.V("dir", dir),
			goerr.V("checkout", checkout),
			goerr.V("output", string(out)),
			goerr.V("cause", err.Error()),
		)
	}

	logging.From(ctx).Debug("cruft update finished", slog.String("dir", dir), slog.String("output", string(out)))
	return nil
}
