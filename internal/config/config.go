package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Build-time variables injected via -ldflags.
var (
	Version   = "dev"
	BuildTime = "unknown"
)

// Config holds all agent configuration loaded from environment variables.
type Config struct {
	// Port is the listen port of the HTTP API.
	Port int

	// Debug enables verbose logging.
	Debug bool

	// DataDir is the root directory for persistent agent data.
	DataDir string

	// NvidiaSMIBinary is the nvidia-smi executable queried by the GPU probe.
	NvidiaSMIBinary string

	// ROCmSMIBinary is the rocm-smi executable queried by the AMD probe.
	ROCmSMIBinary string

	// PythonBinary is the interpreter used to probe ML framework presence.
	PythonBinary string

	// ProbeTimeout bounds every external tool invocation.
	ProbeTimeout time.Duration

	// InventoryURL is the base URL of the inventory service. Empty disables
	// publishing.
	InventoryURL string

	// APIKey authenticates the agent against the inventory service.
	APIKey string

	// PublishInterval is the period between inventory reports.
	PublishInterval time.Duration
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Port:            8000,
		DataDir:         "/var/lib/aicaps",
		NvidiaSMIBinary: "nvidia-smi",
		ROCmSMIBinary:   "rocm-smi",
		PythonBinary:    "python3",
		ProbeTimeout:    5 * time.Second,
		PublishInterval: 5 * time.Minute,
	}
}

// Load reads configuration from environment variables, applying defaults
// for anything not explicitly set. Returns an error if a value is malformed.
func Load() (*Config, error) {
	cfg := DefaultConfig()

	if v := os.Getenv("AICAPS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return nil, fmt.Errorf("AICAPS_PORT is invalid: %q", v)
		}
		cfg.Port = port
	}

	cfg.Debug = os.Getenv("AICAPS_DEBUG") == "true"

	if v := os.Getenv("AICAPS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}

	if v := os.Getenv("AICAPS_NVIDIA_SMI"); v != "" {
		cfg.NvidiaSMIBinary = v
	}

	if v := os.Getenv("AICAPS_ROCM_SMI"); v != "" {
		cfg.ROCmSMIBinary = v
	}

	if v := os.Getenv("AICAPS_PYTHON"); v != "" {
		cfg.PythonBinary = v
	}

	if v := os.Getenv("AICAPS_PROBE_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("AICAPS_PROBE_TIMEOUT is invalid: %q", v)
		}
		cfg.ProbeTimeout = d
	}

	cfg.InventoryURL = os.Getenv("AICAPS_INVENTORY_URL")
	cfg.APIKey = os.Getenv("AICAPS_API_KEY")
	if cfg.InventoryURL != "" && cfg.APIKey == "" {
		return nil, fmt.Errorf("AICAPS_API_KEY is required when AICAPS_INVENTORY_URL is set")
	}

	if v := os.Getenv("AICAPS_PUBLISH_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return nil, fmt.Errorf("AICAPS_PUBLISH_INTERVAL is invalid: %q", v)
		}
		cfg.PublishInterval = d
	}

	return cfg, nil
}

// NewLogger creates a structured JSON logger writing to stdout.
func NewLogger(cfg *Config) *slog.Logger {
	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}
