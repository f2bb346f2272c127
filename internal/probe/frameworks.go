package probe

import (
	"context"
	"fmt"
	"log/slog"
	"os/exec"
	"strings"
	"time"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

// frameworkImports is the fixed probe list: report key -> Python module.
var frameworkImports = []struct {
	name   string
	module string
}{
	{"pytorch", "torch"},
	{"tensorflow", "tensorflow"},
	{"transformers", "transformers"},
	{"onnxruntime", "onnxruntime"},
}

// FrameworkProbe checks which ML frameworks are importable on the host by
// running the configured Python interpreter. A missing interpreter, a failed
// import and a timeout all collapse to Available == false; the report does
// not distinguish between them.
type FrameworkProbe struct {
	Python  string
	Timeout time.Duration

	logger *slog.Logger
}

func NewFrameworkProbe(python string, timeout time.Duration, logger *slog.Logger) *FrameworkProbe {
	return &FrameworkProbe{Python: python, Timeout: timeout, logger: logger}
}

func (p *FrameworkProbe) Probe(ctx context.Context) map[string]domain.FrameworkInfo {
	frameworks := make(map[string]domain.FrameworkInfo, len(frameworkImports))
	for _, fw := range frameworkImports {
		frameworks[fw.name] = p.probeModule(ctx, fw.module)
	}
	return frameworks
}

func (p *FrameworkProbe) probeModule(ctx context.Context, module string) domain.FrameworkInfo {
	ctx, cancel := context.WithTimeout(ctx, p.Timeout)
	defer cancel()

	script := fmt.Sprintf("import %s; print(getattr(%s, '__version__', ''))", module, module)
	cmd := exec.CommandContext(ctx, p.Python, "-c", script)
	cmd.WaitDelay = time.Second
	out, err := cmd.Output()
	if err != nil {
		p.logger.Debug("framework unavailable", "module", module)
		return domain.FrameworkInfo{Available: false}
	}

	return domain.FrameworkInfo{
		Available: true,
		Version:   strings.TrimSpace(string(out)),
	}
}
