// Package observability starts the process-wide telemetry: Uptrace tracing,
// Pyroscope profiling and the pprof listener.
package observability

import (
	"context"
	"errors"
	"fmt"

	"github.com/riskibarqy/tt-league/internal/config"
	"github.com/riskibarqy/tt-league/internal/platform/logging"
)

type stopFunc func(context.Context) error

type component struct {
	name string
	stop stopFunc
}

// Runtime holds whatever telemetry Start switched on.
type Runtime struct {
	logger  *logging.Logger
	running []component
}

// Start brings up each enabled component in turn. If one fails, those
// already running are stopped before the error is returned.
func Start(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Runtime, error) {
	if logger == nil {
		logger = logging.Default()
	}
	rt := &Runtime{logger: logger}

	starters := []struct {
		name  string
		start func(config.Config, *logging.Logger) (stopFunc, error)
	}{
		{"uptrace", startTracing},
		{"pyroscope", startProfiling},
		{"pprof", startPprof},
	}
	for _, s := range starters {
		stop, err := s.start(cfg, logger)
		if err != nil {
			return nil, errors.Join(fmt.Errorf("start %s: %w", s.name, err), rt.Shutdown(ctx))
		}
		if stop == nil {
			logger.Info("telemetry component disabled", "component", s.name)
			continue
		}
		rt.running = append(rt.running, component{name: s.name, stop: stop})
	}
	return rt, nil
}

// Shutdown stops components in reverse start order and reports every
// failure.
func (r *Runtime) Shutdown(ctx context.Context) error {
	if r == nil {
		return nil
	}
	var errs []error
	for i := len(r.running) - 1; i >= 0; i-- {
		c := r.running[i]
		if err := c.stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop %s: %w", c.name, err))
		}
	}
	r.running = nil
	return errors.Join(errs...)
}

// Running lists the names of the started components.
func (r *Runtime) Running() []string {
	names := make([]string, 0, len(r.running))
	for _, c := range r.running {
		names = append(names, c.name)
	}
	return names
}
