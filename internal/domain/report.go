package domain

// CapabilityReport is the aggregate returned by GET /api/capabilities.
// It is built fresh per request and never mutated after assembly.
type CapabilityReport struct {
	System        SystemInfo               `json:"system"`
	CUDA          CUDAInfo                 `json:"cuda"`
	NvidiaSMI     SMIInfo                  `json:"nvidia_smi"`
	ROCm          ROCmInfo                 `json:"rocm"`
	Frameworks    map[string]FrameworkInfo `json:"frameworks"`
	TokenCapacity TokenCapacity            `json:"token_capacity"`
}

// SystemInfo describes the host platform, CPU and memory.
type SystemInfo struct {
	Platform        string        `json:"platform"`
	Processor       string        `json:"processor"`
	Architecture    string        `json:"architecture"`
	GoVersion       string        `json:"go_version"`
	CPUCount        int           `json:"cpu_count"`
	CPUCountLogical int           `json:"cpu_count_logical"`
	CPUFreq         *CPUFrequency `json:"cpu_freq"`
	MemoryTotal     uint64        `json:"memory_total"`
	MemoryAvailable uint64        `json:"memory_available"`
	MemoryPercent   float64       `json:"memory_percent"`
}

// CPUFrequency is reported only when the platform exposes it.
type CPUFrequency struct {
	MHz float64 `json:"mhz"`
}

// CUDAInfo is the result of the NVML probe.
type CUDAInfo struct {
	Available     bool         `json:"available"`
	Version       string       `json:"version,omitempty"`
	DriverVersion string       `json:"driver_version,omitempty"`
	GPUCount      int          `json:"gpu_count"`
	GPUs          []CUDADevice `json:"gpus"`
	Error         string       `json:"error,omitempty"`
}

// CUDADevice describes one NVML-visible GPU. All memory fields are bytes.
type CUDADevice struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	MemoryTotal uint64 `json:"memory_total"`
	MemoryUsed  uint64 `json:"memory_used"`
	MemoryFree  uint64 `json:"memory_free"`
}

// SMIInfo is the result of the nvidia-smi probe. Memory values stay as the
// raw strings printed by the tool (e.g. "8192 MiB").
type SMIInfo struct {
	Available bool        `json:"available"`
	GPUs      []SMIDevice `json:"gpus"`
	Error     string      `json:"error,omitempty"`
}

type SMIDevice struct {
	Name          string `json:"name"`
	DriverVersion string `json:"driver_version"`
	MemoryTotal   string `json:"memory_total"`
	MemoryUsed    string `json:"memory_used"`
}

// ROCmInfo is the result of the rocm-smi probe. On success Output holds the
// tool's raw stdout.
type ROCmInfo struct {
	Available bool   `json:"available"`
	Output    string `json:"output,omitempty"`
	Error     string `json:"error,omitempty"`
}

// FrameworkInfo records whether one ML framework is importable on the host.
// Absence carries no error detail: every failure mode collapses to
// Available == false.
type FrameworkInfo struct {
	Available bool   `json:"available"`
	Version   string `json:"version,omitempty"`
}

// TokenCapacity is the heuristic capacity estimate.
type TokenCapacity struct {
	EstimatedMaxContextLength int      `json:"estimated_max_context_length"`
	SuggestedModels           []string `json:"suggested_models"`
}
