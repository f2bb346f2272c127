//go:build !linux || !cgo

package probe

import "github.com/magicaleks/aicaps-agent/internal/domain"

func probeNVML() domain.CUDAInfo {
	return domain.CUDAInfo{
		GPUs:  []domain.CUDADevice{},
		Error: "NVML not supported on this platform",
	}
}
