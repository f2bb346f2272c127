//go:build linux && cgo

package probe

import (
	"fmt"

	"github.com/NVIDIA/go-nvml/pkg/nvml"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

func probeNVML() domain.CUDAInfo {
	info := domain.CUDAInfo{GPUs: []domain.CUDADevice{}}

	ret := nvml.Init()
	if ret == nvml.ERROR_LIBRARY_NOT_FOUND {
		info.Error = "NVML library not installed"
		return info
	}
	if ret != nvml.SUCCESS {
		info.Error = fmt.Sprintf("NVML init failed: %s", nvml.ErrorString(ret))
		return info
	}
	defer func() { _ = nvml.Shutdown() }()

	count, ret := nvml.DeviceGetCount()
	if ret != nvml.SUCCESS {
		info.Error = fmt.Sprintf("device count failed: %s", nvml.ErrorString(ret))
		return info
	}
	if count == 0 {
		return info
	}

	info.Available = true
	info.GPUCount = count

	if v, ret := nvml.SystemGetCudaDriverVersion(); ret == nvml.SUCCESS {
		info.Version = fmt.Sprintf("%d.%d", v/1000, (v%1000)/10)
	}
	if v, ret := nvml.SystemGetDriverVersion(); ret == nvml.SUCCESS {
		info.DriverVersion = v
	}

	for i := 0; i < count; i++ {
		dev, ret := nvml.DeviceGetHandleByIndex(i)
		if ret != nvml.SUCCESS {
			continue
		}
		gpu := domain.CUDADevice{ID: i}
		if name, ret := dev.GetName(); ret == nvml.SUCCESS {
			gpu.Name = name
		}
		if memory, ret := dev.GetMemoryInfo(); ret == nvml.SUCCESS {
			gpu.MemoryTotal = memory.Total
			gpu.MemoryUsed = memory.Used
			gpu.MemoryFree = memory.Free
		}
		info.GPUs = append(info.GPUs, gpu)
	}

	return info
}
