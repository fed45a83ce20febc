package fileserver

import (
	"time"

	"github.com/sandboxfs/fileserver/internal/access"
	"github.com/sandboxfs/fileserver/internal/infrastructure/logging"
	"github.com/sandboxfs/fileserver/internal/infrastructure/monitoring"
	"github.com/sandboxfs/fileserver/internal/registry"
	"github.com/sandboxfs/fileserver/internal/session"
	"github.com/sandboxfs/fileserver/internal/shell"
	"github.com/sandboxfs/fileserver/internal/types"
)

// DefaultPerm is assigned to entries created by a write of a new name.
const DefaultPerm = 0o644

// DefaultDeleteDelay is the fixed suspension between the delete
// operation's check and act phases.
const DefaultDeleteDelay = 100 * time.Millisecond

// Provider implements the sandboxed file-serving operations.
type Provider struct {
	root     string
	registry *registry.Registry
	checker  *access.Checker
	session  *session.Session
	runner   shell.Runner
	logger   *logging.Logger
	metrics  *monitoring.Metrics
	delay    time.Duration
}

// Option configures optional provider collaborators.
type Option func(*Provider)

// WithLogger sets the structured logger.
func WithLogger(logger *logging.Logger) Option {
	return func(p *Provider) { p.logger = logger }
}

// WithMetrics sets the metrics collector.
func WithMetrics(metrics *monitoring.Metrics) Option {
	return func(p *Provider) { p.metrics = metrics }
}

// WithRunner replaces the shell runner; tests use this to observe the
// constructed command line.
func WithRunner(runner shell.Runner) Option {
	return func(p *Provider) { p.runner = runner }
}

// WithDeleteDelay overrides the fixed check-to-act suspension. The delay
// stays unconditional; only its length is configurable.
func WithDeleteDelay(delay time.Duration) Option {
	return func(p *Provider) { p.delay = delay }
}

// NewProvider creates a fileserver provider over the given sandbox root,
// registry, access checker and session.
func NewProvider(root string, reg *registry.Registry, checker *access.Checker, sess *session.Session, opts ...Option) *Provider {
	p := &Provider{
		root:     root,
		registry: reg,
		checker:  checker,
		session:  sess,
		runner:   shell.SystemRunner{},
		logger:   logging.NewNop(),
		delay:    DefaultDeleteDelay,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// identity resolves the acting identity: an explicit context identity
// wins, otherwise the session's current user.
func (p *Provider) identity(appCtx *types.Context) string {
	if appCtx != nil && appCtx.Identity != nil && *appCtx.Identity != "" {
		return *appCtx.Identity
	}
	return p.session.Current()
}

// observe records an operation outcome when metrics are configured.
func (p *Provider) observe(op, status string, start time.Time) {
	if p.metrics == nil {
		return
	}
	p.metrics.RecordOperation(op, status, time.Since(start))
	p.metrics.SetRegistryEntries(p.registry.Len())
}

// success helper
func success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// failure helper
func failure(message string) (*types.Result, error) {
	msg := message
	return &types.Result{Success: false, Error: &msg}, nil
}
