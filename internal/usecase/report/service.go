package report

import (
	"context"
	"log/slog"

	"github.com/docker/go-units"

	"github.com/magicaleks/aicaps-agent/internal/capacity"
	"github.com/magicaleks/aicaps-agent/internal/config"
	"github.com/magicaleks/aicaps-agent/internal/domain"
	"github.com/magicaleks/aicaps-agent/internal/probe"
)

// Service runs every capability probe and assembles the report. Probes run
// sequentially and are fully failure isolated: a degraded probe degrades its
// own section only, never the report.
type Service struct {
	system     *probe.SystemProbe
	cuda       *probe.CUDAProbe
	smi        *probe.SMIProbe
	rocm       *probe.ROCmProbe
	frameworks *probe.FrameworkProbe
	logger     *slog.Logger
}

func NewService(cfg *config.Config, logger *slog.Logger) *Service {
	return &Service{
		system:     probe.NewSystemProbe(logger),
		cuda:       probe.NewCUDAProbe(logger),
		smi:        probe.NewSMIProbe(cfg.NvidiaSMIBinary, cfg.ProbeTimeout, logger),
		rocm:       probe.NewROCmProbe(cfg.ROCmSMIBinary, cfg.ProbeTimeout, logger),
		frameworks: probe.NewFrameworkProbe(cfg.PythonBinary, cfg.ProbeTimeout, logger),
		logger:     logger,
	}
}

// Collect builds a fresh CapabilityReport. It never fails: a probe that
// cannot reach its dependency contributes an unavailable section.
func (s *Service) Collect(ctx context.Context) domain.CapabilityReport {
	system := s.system.Probe(ctx)
	cuda := s.cuda.Probe(ctx)

	report := domain.CapabilityReport{
		System:        system,
		CUDA:          cuda,
		NvidiaSMI:     s.smi.Probe(ctx),
		ROCm:          s.rocm.Probe(ctx),
		Frameworks:    s.frameworks.Probe(ctx),
		TokenCapacity: capacity.Estimate(cuda, system.MemoryTotal),
	}

	s.logger.Debug("capability report assembled",
		"cuda_available", cuda.Available,
		"gpu_count", cuda.GPUCount,
		"memory_total", units.BytesSize(float64(system.MemoryTotal)),
		"max_context_length", report.TokenCapacity.EstimatedMaxContextLength,
	)

	return report
}
