package jobs

import (
	"context"
	"sync"
	"time"

	"github.com/holyfit/holyfit-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

// Pinger is a content backend that can be checked without generating anything
type Pinger interface {
	Ping(ctx context.Context) error
	Name() string
}

// HealthGauge receives the probe outcome
type HealthGauge interface {
	SetProviderUp(up bool)
}

// ProbeStatus is the outcome of the most recent probe
type ProbeStatus struct {
	Backend string    `json:"backend"`
	Up      bool      `json:"up"`
	Error   string    `json:"error,omitempty"`
	LastRun time.Time `json:"last_run"`
}

// ProviderProbe checks that the content model is reachable
type ProviderProbe struct {
	client  Pinger
	gauge   HealthGauge
	timeout time.Duration
	logger  logger.Logger

	mu     sync.RWMutex
	status ProbeStatus
}

// NewProviderProbe creates a probe. gauge may be nil.
func NewProviderProbe(client Pinger, gauge HealthGauge, log logger.Logger) *ProviderProbe {
	if log == nil {
		log = logger.Default()
	}
	return &ProviderProbe{
		client:  client,
		gauge:   gauge,
		timeout: 15 * time.Second,
		logger:  log.With("component", "probe"),
		status:  ProbeStatus{Backend: client.Name()},
	}
}

// Run pings the backend once and records the result
func (p *ProviderProbe) Run(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err := p.client.Ping(ctx)

	status := ProbeStatus{Backend: p.client.Name(), Up: err == nil, LastRun: time.Now().UTC()}
	if err != nil {
		status.Error = err.Error()
		p.logger.Warn("⚠️  Content backend unreachable", "backend", status.Backend, "error", err)
	} else {
		p.logger.Debug("Content backend reachable", "backend", status.Backend)
	}

	p.mu.Lock()
	p.status = status
	p.mu.Unlock()

	if p.gauge != nil {
		p.gauge.SetProviderUp(status.Up)
	}
	return err
}

// Status returns the last recorded result
func (p *ProviderProbe) Status() ProbeStatus {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.status
}

// CronManager manages scheduled jobs
type CronManager struct {
	cron   *cron.Cron
	probe  *ProviderProbe
	logger logger.Logger
}

// NewCronManager creates a new cron manager
func NewCronManager(probe *ProviderProbe, log logger.Logger) *CronManager {
	if log == nil {
		log = logger.Default()
	}

	return &CronManager{
		cron:   cron.New(),
		probe:  probe,
		logger: log.With("component", "cron"),
	}
}

// SetupJobs configures all scheduled jobs
func (cm *CronManager) SetupJobs(probeSchedule string) error {
	cm.logger.Info("Setting up cron jobs...")

	if cm.probe == nil {
		cm.logger.Info("ℹ️  No remote content backend, probe disabled")
		return nil
	}

	_, err := cm.cron.AddFunc(probeSchedule, func() {
		_ = cm.probe.Run(context.Background())
	})
	if err != nil {
		return err
	}

	cm.logger.Info("✅ Cron jobs configured", "probe_schedule", probeSchedule)
	return nil
}

// Start starts the cron scheduler
func (cm *CronManager) Start() {
	cm.cron.Start()
	cm.logger.Info("✅ Cron scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs
func (cm *CronManager) Stop() {
	ctx := cm.cron.Stop()
	<-ctx.Done()
	cm.logger.Info("✅ Cron scheduler stopped")
}

// Entries reports how many jobs are scheduled
func (cm *CronManager) Entries() int {
	return len(cm.cron.Entries())
}

// Probe returns the provider probe, nil when disabled
func (cm *CronManager) Probe() *ProviderProbe {
	return cm.probe
}
