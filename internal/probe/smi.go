package probe

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

const smiQuery = "--query-gpu=name,driver_version,memory.total,memory.used"

// SMIProbe queries GPUs through the nvidia-smi management CLI. The invocation
// is bounded by Timeout; a timeout degrades to an error result, never a hang.
type SMIProbe struct {
	Binary  string
	Timeout time.Duration

	logger *slog.Logger
}

func NewSMIProbe(binary string, timeout time.Duration, logger *slog.Logger) *SMIProbe {
	return &SMIProbe{Binary: binary, Timeout: timeout, logger: logger}
}

func (p *SMIProbe) Probe(ctx context.Context) domain.SMIInfo {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Binary, smiQuery, "--format=csv,noheader")
	// A tool's orphaned child can inherit the stdout pipe and keep it open
	// after the deadline kill; WaitDelay bounds how long Output waits for it.
	cmd.WaitDelay = time.Second
	out, err := cmd.Output()
	if err != nil {
		reason := describeToolError(ctx, p.Binary, p.Timeout, err)
		p.logger.Debug("nvidia-smi probe failed", "reason", reason)
		return domain.SMIInfo{Error: reason}
	}

	return domain.SMIInfo{Available: true, GPUs: parseSMIOutput(string(out))}
}

// parseSMIOutput parses csv,noheader lines into descriptors. Memory values
// stay as the raw strings printed by the tool. Lines with fewer than four
// fields are skipped; empty output yields an empty, non-nil slice.
func parseSMIOutput(out string) []domain.SMIDevice {
	gpus := []domain.SMIDevice{}
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.Split(line, ",")
		if len(parts) < 4 {
			continue
		}
		gpus = append(gpus, domain.SMIDevice{
			Name:          strings.TrimSpace(parts[0]),
			DriverVersion: strings.TrimSpace(parts[1]),
			MemoryTotal:   strings.TrimSpace(parts[2]),
			MemoryUsed:    strings.TrimSpace(parts[3]),
		})
	}
	return gpus
}

// describeToolError maps an exec failure to a human-readable reason string.
// A missing binary and a timeout get dedicated messages; everything else is
// an execution failure.
func describeToolError(ctx context.Context, binary string, timeout time.Duration, err error) string {
	name := filepath.Base(binary)

	if errors.Is(err, exec.ErrNotFound) || errors.Is(err, os.ErrNotExist) {
		return fmt.Sprintf("%s not found", name)
	}
	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return fmt.Sprintf("%s timed out after %s", name, timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		if stderr != "" {
			return fmt.Sprintf("%s exited with code %d: %s", name, exitErr.ExitCode(), stderr)
		}
		return fmt.Sprintf("%s exited with code %d", name, exitErr.ExitCode())
	}

	return err.Error()
}
