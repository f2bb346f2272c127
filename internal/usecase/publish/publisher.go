package publish

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

// Collector produces a fresh capability report.
type Collector interface {
	Collect(ctx context.Context) domain.CapabilityReport
}

// InventoryAPI receives host reports.
type InventoryAPI interface {
	PublishReport(ctx context.Context, report domain.HostReport) error
}

// Publisher periodically pushes the host's capability report to the
// inventory service. Failures are logged and retried on the next tick.
type Publisher struct {
	collector   Collector
	api         InventoryAPI
	agentID     string
	fingerprint string
	version     string
	interval    time.Duration
	logger      *slog.Logger
}

func NewPublisher(collector Collector, api InventoryAPI, agentID, fingerprint, version string, interval time.Duration, logger *slog.Logger) *Publisher {
	return &Publisher{
		collector:   collector,
		api:         api,
		agentID:     agentID,
		fingerprint: fingerprint,
		version:     version,
		interval:    interval,
		logger:      logger,
	}
}

func (p *Publisher) Start(ctx context.Context) {
	go p.loop(ctx)
}

func (p *Publisher) loop(ctx context.Context) {
	// First report goes out immediately so a fresh host appears in the
	// inventory without waiting a full interval.
	p.publish(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publish(ctx)
		}
	}
}

func (p *Publisher) publish(ctx context.Context) {
	hostname, _ := os.Hostname()

	report := domain.HostReport{
		AgentID:      p.agentID,
		Fingerprint:  p.fingerprint,
		Hostname:     hostname,
		AgentVersion: p.version,
		Report:       p.collector.Collect(ctx),
	}

	if err := p.api.PublishReport(ctx, report); err != nil {
		p.logger.Warn("failed to publish capability report", "err", err)
		return
	}
	p.logger.Debug("capability report published", "agent_id", p.agentID)
}
