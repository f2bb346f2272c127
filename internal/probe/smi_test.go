package probe

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// writeStubTool installs an executable shell script standing in for a vendor
// management tool.
func writeStubTool(t *testing.T, name, script string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestParseSMIOutputSingleGPU(t *testing.T) {
	gpus := parseSMIOutput("GPU0,450.10,8192MiB,512MiB\n")

	require.Len(t, gpus, 1)
	assert.Equal(t, domain.SMIDevice{
		Name:          "GPU0",
		DriverVersion: "450.10",
		MemoryTotal:   "8192MiB",
		MemoryUsed:    "512MiB",
	}, gpus[0])
}

func TestParseSMIOutputMultipleGPUsWithWhitespace(t *testing.T) {
	out := "NVIDIA GeForce RTX 3090, 535.154.05, 24576 MiB, 1024 MiB\n" +
		"NVIDIA GeForce RTX 3090, 535.154.05, 24576 MiB, 2048 MiB\n"

	gpus := parseSMIOutput(out)

	require.Len(t, gpus, 2)
	assert.Equal(t, "NVIDIA GeForce RTX 3090", gpus[0].Name)
	assert.Equal(t, "24576 MiB", gpus[0].MemoryTotal)
	assert.Equal(t, "2048 MiB", gpus[1].MemoryUsed)
}

func TestParseSMIOutputEmpty(t *testing.T) {
	gpus := parseSMIOutput("")

	assert.NotNil(t, gpus)
	assert.Empty(t, gpus)
}

func TestParseSMIOutputSkipsShortLines(t *testing.T) {
	gpus := parseSMIOutput("garbage line\nGPU0,450.10,8192MiB,512MiB\n")

	require.Len(t, gpus, 1)
	assert.Equal(t, "GPU0", gpus[0].Name)
}

func TestSMIProbeBinaryMissing(t *testing.T) {
	p := NewSMIProbe("/nonexistent/nvidia-smi", 5*time.Second, testLogger())

	info := p.Probe(context.Background())

	assert.False(t, info.Available)
	assert.NotEmpty(t, info.Error)
	assert.Contains(t, info.Error, "nvidia-smi not found")
}

// A tool that outlives its deadline (including through a lingering child
// holding stdout) must degrade to a timeout error within the bound, not hang.
func TestSMIProbeTimeoutReturnsWithinBound(t *testing.T) {
	bin := writeStubTool(t, "nvidia-smi", "sleep 10\n")
	p := NewSMIProbe(bin, 200*time.Millisecond, testLogger())

	start := time.Now()
	info := p.Probe(context.Background())
	elapsed := time.Since(start)

	assert.False(t, info.Available)
	assert.Contains(t, info.Error, "nvidia-smi timed out after 200ms")
	assert.Less(t, elapsed, 5*time.Second)
}

func TestSMIProbeNonZeroExit(t *testing.T) {
	bin := writeStubTool(t, "nvidia-smi", "echo boom >&2\nexit 2\n")
	p := NewSMIProbe(bin, 5*time.Second, testLogger())

	info := p.Probe(context.Background())

	assert.False(t, info.Available)
	assert.Contains(t, info.Error, "exited with code 2")
	assert.Contains(t, info.Error, "boom")
}

func TestSMIProbeBinaryNotOnPath(t *testing.T) {
	p := NewSMIProbe("definitely-not-a-real-binary-aicaps", 5*time.Second, testLogger())

	info := p.Probe(context.Background())

	assert.False(t, info.Available)
	assert.NotEmpty(t, info.Error)
}
