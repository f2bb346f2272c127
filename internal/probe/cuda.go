package probe

import (
	"context"
	"log/slog"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

// CUDAProbe checks for CUDA-capable GPUs through NVML. The library is loaded
// at call time; a host without the driver gets a well-formed unavailable
// result instead of an error. Detection is cheap and idempotent, so no
// availability flag is cached between calls.
type CUDAProbe struct {
	logger *slog.Logger
}

func NewCUDAProbe(logger *slog.Logger) *CUDAProbe {
	return &CUDAProbe{logger: logger}
}

func (p *CUDAProbe) Probe(_ context.Context) domain.CUDAInfo {
	info := probeNVML()
	if !info.Available && info.Error != "" {
		p.logger.Debug("cuda unavailable", "reason", info.Error)
	}
	return info
}
