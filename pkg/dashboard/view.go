package dashboard

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mfreeman451/networkhub/pkg/client"
)

const (
	defaultWidth = 100
	timeLayout   = "15:04:05"
)

// View implements tea.Model.
func (app *App) View() string {
	parts := []string{app.renderHeader()}

	if app.current != nil {
		top := lipgloss.JoinHorizontal(lipgloss.Top,
			panel("Health", renderHealth(app.current)),
			panel("Traffic", renderTraffic(app.current)),
		)
		bottom := lipgloss.JoinHorizontal(lipgloss.Top,
			panel("Trace route", renderTrace(app.current)),
			panel("Alerts", renderAlerts(app.current)),
		)

		parts = append(parts, top, bottom)
	} else if app.lastError == nil {
		parts = append(parts, styleDim.Render("Loading..."))
	}

	parts = append(parts, app.renderFooter())

	return strings.Join(parts, "\n")
}

func (app *App) renderHeader() string {
	width := app.width
	if width <= 0 {
		width = defaultWidth
	}

	status := styleOK.Render("connected")
	if app.lastError != nil {
		status = styleError.Render(fmt.Sprintf("disconnected (%d failures)", app.consecutiveFails))
	}

	updated := ""
	if app.current != nil {
		updated = "  updated " + app.current.FetchedAt.Format(timeLayout)
	}

	return styleHeader.Width(width).Render("NetworkHub  " + app.baseURL + "  " + status + updated)
}

func (app *App) renderFooter() string {
	var lines []string

	if app.lastError != nil {
		lines = append(lines, styleError.Render("Error: "+app.lastError.Error()))
	}

	if app.showHelp {
		lines = append(lines, styleDim.Render(helpLine()))
	} else {
		lines = append(lines, styleDim.Render("?: help"))
	}

	return strings.Join(lines, "\n")
}

func panel(title, body string) string {
	return stylePanel.Render(stylePanelTitle.Render(title) + "\n" + body)
}

func row(label string, value any) string {
	return styleLabel.Render(fmt.Sprintf("%-14s", label)) + fmt.Sprint(value)
}

func renderHealth(d *client.Dashboard) string {
	h := d.Health

	return strings.Join([]string{
		row("Status", statusStyle(h.OverallStatus).Render(h.OverallStatus)),
		row("Uptime", fmt.Sprintf("%.2f%%", h.UptimePct)),
		row("Response", fmt.Sprintf("%d ms", h.ResponseTimeMs)),
		row("Throughput", fmt.Sprintf("%d Mbps", h.ThroughputMbps)),
		row("Errors", fmt.Sprintf("%.3f%%", h.ErrorRatePct)),
		row("Connections", h.ActiveConnections),
		row("CPU/Mem/Disk", fmt.Sprintf("%d%% / %d%% / %d%%", h.CPUUsagePct, h.MemoryUsagePct, h.DiskUsagePct)),
	}, "\n")
}

func renderTraffic(d *client.Dashboard) string {
	t := d.Traffic

	lines := []string{
		row("Total", fmt.Sprintf("%.1f GB/day", t.TotalTrafficGBDay)),
		row("Peak hour", t.PeakHour),
		row("Utilization", fmt.Sprintf("%d%% now, %d%% avg, %d%% peak",
			t.BandwidthUtilization.CurrentPct, t.BandwidthUtilization.AveragePct, t.BandwidthUtilization.PeakPct)),
	}

	for _, p := range t.TopProtocols {
		lines = append(lines, row(p.Protocol, fmt.Sprintf("%d%%", p.Percentage)))
	}

	return strings.Join(lines, "\n")
}

func renderTrace(d *client.Dashboard) string {
	lines := make([]string, 0, len(d.Trace.Hops)+1)

	for _, h := range d.Trace.Hops {
		lines = append(lines, fmt.Sprintf("%2d %-28s %4d ms %s",
			h.Hop, h.Destination, h.LatencyMs, statusStyle(h.Status).Render(h.Status)))
	}

	lines = append(lines, row("Path", statusStyle(d.Trace.PathQuality).Render(d.Trace.PathQuality)))

	return strings.Join(lines, "\n")
}

func renderAlerts(d *client.Dashboard) string {
	lines := []string{row("Total", d.Alerts.TotalAlerts)}

	for _, a := range d.Alerts.RecentAlerts {
		lines = append(lines, fmt.Sprintf("%s %-11s %-8s %s",
			a.Timestamp.Format(timeLayout), a.Type, statusStyle(a.Severity).Render(a.Severity), a.Message))
	}

	return strings.Join(lines, "\n")
}
