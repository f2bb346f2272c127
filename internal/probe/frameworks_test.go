package probe

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrameworkProbeInterpreterMissing(t *testing.T) {
	p := NewFrameworkProbe("/nonexistent/python3", 5*time.Second, testLogger())

	frameworks := p.Probe(context.Background())

	require.Len(t, frameworks, 4)
	for _, name := range []string{"pytorch", "tensorflow", "transformers", "onnxruntime"} {
		info, ok := frameworks[name]
		require.True(t, ok, "missing framework entry %q", name)
		assert.False(t, info.Available)
		assert.Empty(t, info.Version)
	}
}

// A wedged interpreter collapses to Available == false like every other
// failure, within the per-import bound.
func TestFrameworkProbeInterpreterHangs(t *testing.T) {
	bin := writeStubTool(t, "python3", "sleep 10\n")
	p := NewFrameworkProbe(bin, 100*time.Millisecond, testLogger())

	start := time.Now()
	frameworks := p.Probe(context.Background())
	elapsed := time.Since(start)

	require.Len(t, frameworks, 4)
	for name, info := range frameworks {
		assert.False(t, info.Available, "framework %q should be unavailable", name)
	}
	assert.Less(t, elapsed, 10*time.Second)
}

func TestFrameworkProbeFixedKeySet(t *testing.T) {
	p := NewFrameworkProbe("/nonexistent/python3", time.Second, testLogger())

	frameworks := p.Probe(context.Background())

	assert.Len(t, frameworks, len(frameworkImports))
}
