// Package capacity estimates how large a language model the host can run.
// The buckets are coarse heuristics keyed on GPU VRAM when a CUDA device is
// present and on system RAM otherwise.
package capacity

import (
	"github.com/docker/go-units"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

// Estimate is a pure function of the CUDA probe result and total system
// memory. Thresholds are inclusive on the lower bound: a device with exactly
// 24 GiB lands in the 24 GiB bucket.
func Estimate(cuda domain.CUDAInfo, memoryTotal uint64) domain.TokenCapacity {
	estimate := domain.TokenCapacity{SuggestedModels: []string{}}

	if cuda.Available && len(cuda.GPUs) > 0 {
		var maxMemory uint64
		for _, gpu := range cuda.GPUs {
			if gpu.MemoryTotal > maxMemory {
				maxMemory = gpu.MemoryTotal
			}
		}
		gpuGiB := float64(maxMemory) / units.GiB

		switch {
		case gpuGiB >= 24:
			estimate.EstimatedMaxContextLength = 32768
			estimate.SuggestedModels = []string{"LLaMA 2 70B", "GPT-3.5 equivalent"}
		case gpuGiB >= 16:
			estimate.EstimatedMaxContextLength = 16384
			estimate.SuggestedModels = []string{"LLaMA 2 13B", "Mistral 7B"}
		case gpuGiB >= 8:
			estimate.EstimatedMaxContextLength = 8192
			estimate.SuggestedModels = []string{"LLaMA 2 7B", "Phi-2"}
		case gpuGiB >= 4:
			estimate.EstimatedMaxContextLength = 4096
			estimate.SuggestedModels = []string{"Small quantized models"}
		}
		return estimate
	}

	ramGiB := float64(memoryTotal) / units.GiB

	switch {
	case ramGiB >= 32:
		estimate.EstimatedMaxContextLength = 8192
		estimate.SuggestedModels = []string{"Small quantized models on CPU"}
	case ramGiB >= 16:
		estimate.EstimatedMaxContextLength = 4096
		estimate.SuggestedModels = []string{"Tiny quantized models on CPU"}
	case ramGiB >= 8:
		estimate.EstimatedMaxContextLength = 2048
		estimate.SuggestedModels = []string{"Very small models only"}
	}

	return estimate
}
