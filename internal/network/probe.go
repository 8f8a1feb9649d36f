// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package network

import (
	"context"
	"time"

	"github.com/MKhiriev/go-note-sync/internal/adapter"
	"github.com/MKhiriev/go-note-sync/internal/logger"
)

// DefaultProbeInterval is how often [Probe] checks the server.
const DefaultProbeInterval = 15 * time.Second

// Probe is a Monitor driven by periodic health checks against the sync
// server. It starts offline and flips online after the first successful
// check.
type Probe struct {
	*Manual

	checker  adapter.HealthChecker
	interval time.Duration
	logger   *logger.Logger
}

func NewProbe(checker adapter.HealthChecker, interval time.Duration, logger *logger.Logger) *Probe {
	if interval <= 0 {
		interval = DefaultProbeInterval
	}
	return &Probe{
		Manual:   NewManual(false),
		checker:  checker,
		interval: interval,
		logger:   logger,
	}
}

// Check performs one health check and updates the state.
func (p *Probe) Check(ctx context.Context) bool {
	checkCtx, cancel := context.WithTimeout(ctx, p.interval)
	defer cancel()

	err := p.checker.Health(checkCtx)
	online := err == nil
	if !online && p.IsOnline() {
		p.logger.Warn().Err(err).Str("func", "*Probe.Check").Msg("sync server became unreachable")
	} else if online && !p.IsOnline() {
		p.logger.Info().Str("func", "*Probe.Check").Msg("sync server is reachable")
	}

	p.SetOnline(online)
	return online
}

// Run checks immediately and then every interval until ctx is done.
func (p *Probe) Run(ctx context.Context) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.Check(ctx)
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			p.Check(ctx)
		}
	}
}
