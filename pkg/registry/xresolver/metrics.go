package xresolver

import (
	"context"
	"fmt"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/omeyang/ouikit/pkg/registry/xoui"
)

const (
	metricLookupTotal   = "ouikit.lookup.total"
	metricReloadTotal   = "ouikit.registry.reload.total"
	metricEntries       = "ouikit.registry.entries"
	metricCacheRequests = "ouikit.format.cache.requests"
)

// 重载结果
const (
	statusOK        = "ok"
	statusError     = "error"
	statusUnchanged = "unchanged"
)

type metrics struct {
	lookups      metric.Int64Counter
	reloads      metric.Int64Counter
	registration metric.Registration
	closeOnce    sync.Once

	matchAttrs  map[xoui.Match]metric.AddOption
	statusAttrs map[string]metric.AddOption
}

func newMetrics(provider metric.MeterProvider, r *Resolver) (*metrics, error) {
	meter := provider.Meter(instrumentationName)

	lookups, err := meter.Int64Counter(metricLookupTotal,
		metric.WithDescription("OUI lookups by match result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolver: create lookup counter: %w", err)
	}
	reloads, err := meter.Int64Counter(metricReloadTotal,
		metric.WithDescription("registry reload attempts by status"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolver: create reload counter: %w", err)
	}
	entries, err := meter.Int64ObservableGauge(metricEntries,
		metric.WithDescription("distinct OUIs in the current registry"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolver: create entries gauge: %w", err)
	}
	cacheRequests, err := meter.Int64ObservableCounter(metricCacheRequests,
		metric.WithDescription("format cache requests by result"),
		metric.WithUnit("1"),
	)
	if err != nil {
		return nil, fmt.Errorf("xresolver: create cache counter: %w", err)
	}

	hit := metric.WithAttributes(attribute.String("result", "hit"))
	miss := metric.WithAttributes(attribute.String("result", "miss"))
	registration, err := meter.RegisterCallback(func(_ context.Context, o metric.Observer) error {
		o.ObserveInt64(entries, int64(r.Current().Size()))
		if r.cache != nil {
			s := r.cache.Stats()
			o.ObserveInt64(cacheRequests, int64(s.Hits), hit)
			o.ObserveInt64(cacheRequests, int64(s.Misses), miss)
		}
		return nil
	}, entries, cacheRequests)
	if err != nil {
		return nil, fmt.Errorf("xresolver: register callback: %w", err)
	}

	return &metrics{
		lookups:      lookups,
		reloads:      reloads,
		registration: registration,
		matchAttrs: map[xoui.Match]metric.AddOption{
			xoui.MatchDirect: metric.WithAttributes(attribute.String("result", "direct")),
			xoui.MatchMasked: metric.WithAttributes(attribute.String("result", "masked")),
			xoui.MatchNone:   metric.WithAttributes(attribute.String("result", "miss")),
		},
		statusAttrs: map[string]metric.AddOption{
			statusOK:        metric.WithAttributes(attribute.String("status", statusOK)),
			statusError:     metric.WithAttributes(attribute.String("status", statusError)),
			statusUnchanged: metric.WithAttributes(attribute.String("status", statusUnchanged)),
		},
	}, nil
}

func (m *metrics) lookup(ctx context.Context, match xoui.Match) {
	m.lookups.Add(ctx, 1, m.matchAttrs[match])
}

func (m *metrics) reload(ctx context.Context, status string) {
	m.reloads.Add(ctx, 1, m.statusAttrs[status])
}

func (m *metrics) close() error {
	var err error
	m.closeOnce.Do(func() {
		err = m.registration.Unregister()
	})
	return err
}
