package dashboard

import (
	"time"

	"github.com/mfreeman451/networkhub/pkg/client"
)

// DashboardMsg delivers a successful poll.
type DashboardMsg struct{ Dashboard *client.Dashboard }

// FetchErrorMsg signals a poll failure.
type FetchErrorMsg struct{ Err error }

// TickMsg triggers the next scheduled poll. Gen is the poll generation that
// scheduled it.
type TickMsg struct {
	Time time.Time
	Gen  int
}
