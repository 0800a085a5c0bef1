package metrics

import (
	"net/http"
	"time"
)

// Nop discards everything. It is used when metrics are disabled.
type Nop struct{}

func (Nop) RecordHTTPRequest(string, string, string, time.Duration) {}

func (Nop) RecordResponseSize(string, string, float64) {}

func (Nop) IncHTTPRequestsInFlight() {}

func (Nop) DecHTTPRequestsInFlight() {}

func (Nop) RecordSnapshot(string) {}

func (Nop) RecordPageView(string) {}

func (Nop) StreamClientConnected() {}

func (Nop) StreamClientDisconnected() {}

// Handler answers 404 so /metrics looks absent.
func (Nop) Handler() http.Handler { return http.NotFoundHandler() }
