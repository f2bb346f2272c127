package probe

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

// SystemProbe collects host platform, CPU and memory information.
// Every field is best effort: anything the platform does not expose is left
// at its zero value (or nil for cpu_freq) rather than failing the probe.
type SystemProbe struct {
	logger *slog.Logger
}

func NewSystemProbe(logger *slog.Logger) *SystemProbe {
	return &SystemProbe{logger: logger}
}

func (p *SystemProbe) Probe(ctx context.Context) domain.SystemInfo {
	info := domain.SystemInfo{
		Architecture: runtime.GOARCH,
		GoVersion:    runtime.Version(),
	}

	if hi, err := host.InfoWithContext(ctx); err == nil {
		info.Platform = fmt.Sprintf("%s-%s-%s", hi.Platform, hi.PlatformVersion, hi.KernelVersion)
	} else {
		p.logger.Debug("host info unavailable", "err", err)
		info.Platform = runtime.GOOS
	}

	if stats, err := cpu.InfoWithContext(ctx); err == nil && len(stats) > 0 {
		info.Processor = stats[0].ModelName
		if stats[0].Mhz > 0 {
			info.CPUFreq = &domain.CPUFrequency{MHz: stats[0].Mhz}
		}
	} else if err != nil {
		p.logger.Debug("cpu info unavailable", "err", err)
	}

	if physical, err := cpu.CountsWithContext(ctx, false); err == nil {
		info.CPUCount = physical
	}
	if logical, err := cpu.CountsWithContext(ctx, true); err == nil {
		info.CPUCountLogical = logical
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.MemoryTotal = vm.Total
		info.MemoryAvailable = vm.Available
		info.MemoryPercent = vm.UsedPercent
	} else {
		p.logger.Debug("virtual memory unavailable", "err", err)
	}

	return info
}
