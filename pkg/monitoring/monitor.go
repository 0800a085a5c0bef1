/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package monitoring pkg/monitoring/monitor.go
package monitoring

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"
)

const defaultProbeTimeout = 2 * time.Second

// MonitorConfig holds configuration for monitoring.
type MonitorConfig struct {
	Interval time.Duration
}

// Monitor runs a check on a fixed interval and reports every result.
type Monitor struct {
	config MonitorConfig
	done   chan struct{}
	once   sync.Once
}

// NewMonitor creates a new monitoring system.
func NewMonitor(cfg MonitorConfig) *Monitor {
	return &Monitor{
		config: cfg,
		done:   make(chan struct{}),
	}
}

// StartMonitoring runs check immediately and then every interval until ctx
// is canceled or Stop is called. report receives each result, nil on success.
func (m *Monitor) StartMonitoring(ctx context.Context, check func(context.Context) error, report func(error)) {
	ticker := time.NewTicker(m.config.Interval)
	defer ticker.Stop()

	run := func() {
		err := check(ctx)
		if err != nil {
			log.Printf("Check failed: %v", err)
		}

		report(err)
	}

	run()

	for {
		select {
		case <-ctx.Done():
			return
		case <-m.done:
			return
		case <-ticker.C:
			run()
		}
	}
}

// Stop stops the monitoring. It is safe to call more than once.
func (m *Monitor) Stop(_ context.Context) {
	m.once.Do(func() { close(m.done) })
}

// HTTPProbe returns a check that expects 200 from path on the server bound
// to addr. An unspecified listen host is probed on loopback.
func HTTPProbe(addr net.Addr, path string) func(context.Context) error {
	url := "http://" + probeHost(addr) + path
	hc := &http.Client{Timeout: defaultProbeTimeout}

	return func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
		if err != nil {
			return err
		}

		resp, err := hc.Do(req)
		if err != nil {
			return fmt.Errorf("probe %s: %w", url, err)
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("%w: probe %s returned %d", errProbeStatus, url, resp.StatusCode)
		}

		return nil
	}
}

func probeHost(addr net.Addr) string {
	host, port, err := net.SplitHostPort(addr.String())
	if err != nil {
		return addr.String()
	}

	if ip := net.ParseIP(strings.Trim(host, "[]")); host == "" || (ip != nil && ip.IsUnspecified()) {
		if ip != nil && ip.To4() == nil {
			host = "::1"
		} else {
			host = "127.0.0.1"
		}
	}

	return net.JoinHostPort(host, port)
}
