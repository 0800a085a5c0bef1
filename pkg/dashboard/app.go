// Package dashboard is a terminal view of a running NetworkHub server.
package dashboard

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mfreeman451/networkhub/pkg/client"
)

const (
	minFetchTimeout = 500 * time.Millisecond
	maxBackoff      = 60 * time.Second
)

// App is the root Bubble Tea model.
type App struct {
	source   client.DashboardSource
	baseURL  string
	interval time.Duration

	fetching         bool
	current          *client.Dashboard
	consecutiveFails int
	lastError        error

	width    int
	showHelp bool

	// pollGen stamps scheduled ticks. Ticks from an older generation are
	// dropped, so at most one poll chain is ever live.
	pollGen int
}

// NewApp polls src every interval. baseURL is only displayed.
func NewApp(src client.DashboardSource, baseURL string, interval time.Duration) *App {
	return &App{
		source:   src,
		baseURL:  baseURL,
		interval: interval,
		fetching: true,
	}
}

// Init implements tea.Model.
func (app *App) Init() tea.Cmd {
	return fetchCmd(app.source, app.interval)
}

// Update implements tea.Model.
func (app *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		app.width = msg.Width

	case DashboardMsg:
		app.fetching = false
		app.current = msg.Dashboard
		app.consecutiveFails = 0
		app.lastError = nil
		app.pollGen++

		return app, tickCmd(app.interval, app.pollGen)

	case FetchErrorMsg:
		app.fetching = false
		app.consecutiveFails++
		app.lastError = msg.Err
		app.pollGen++

		return app, tickCmd(backoffDuration(app.consecutiveFails), app.pollGen)

	case TickMsg:
		if msg.Gen != app.pollGen || app.fetching {
			return app, nil
		}

		app.fetching = true

		return app, fetchCmd(app.source, app.interval)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return app, tea.Quit
		case key.Matches(msg, keys.Refresh):
			if app.fetching {
				return app, nil
			}

			app.fetching = true
			app.pollGen++

			return app, fetchCmd(app.source, app.interval)
		case key.Matches(msg, keys.Help):
			app.showHelp = !app.showHelp
		}
	}

	return app, nil
}

func tickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

func fetchCmd(src client.DashboardSource, interval time.Duration) tea.Cmd {
	return func() tea.Msg {
		timeout := max(interval-minFetchTimeout, minFetchTimeout)

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		d, err := client.FetchDashboard(ctx, src)
		if err != nil {
			return FetchErrorMsg{Err: err}
		}

		return DashboardMsg{Dashboard: d}
	}
}

// backoffDuration returns min(2^fails seconds, 60s).
func backoffDuration(fails int) time.Duration {
	if fails <= 0 {
		return time.Second
	}

	if fails >= 6 {
		return maxBackoff
	}

	return time.Duration(1<<fails) * time.Second
}
