package probe

import (
	"context"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

// ROCmProbe queries AMD GPUs through the rocm-smi management CLI. On success
// the raw tool output is kept as-is; no structured parsing is attempted.
type ROCmProbe struct {
	Binary  string
	Timeout time.Duration

	logger *slog.Logger
}

func NewROCmProbe(binary string, timeout time.Duration, logger *slog.Logger) *ROCmProbe {
	return &ROCmProbe{Binary: binary, Timeout: timeout, logger: logger}
}

func (p *ROCmProbe) Probe(ctx context.Context) domain.ROCmInfo {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, p.Binary, "--showproductname")
	cmd.WaitDelay = time.Second
	out, err := cmd.Output()
	if err != nil {
		reason := describeToolError(ctx, p.Binary, p.Timeout, err)
		p.logger.Debug("rocm-smi probe failed", "reason", reason)
		return domain.ROCmInfo{Error: reason}
	}

	return domain.ROCmInfo{Available: true, Output: strings.TrimSpace(string(out))}
}
