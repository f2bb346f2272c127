package probe

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// The CUDA probe is environment dependent; what is fixed is its shape: it
// never panics, and an unavailable result always carries a reason.
func TestCUDAProbeNeverPanics(t *testing.T) {
	p := NewCUDAProbe(testLogger())

	info := p.Probe(context.Background())

	assert.NotNil(t, info.GPUs)
	if !info.Available {
		assert.Zero(t, info.GPUCount)
		assert.Empty(t, info.GPUs)
	} else {
		assert.LessOrEqual(t, len(info.GPUs), info.GPUCount)
	}
}
