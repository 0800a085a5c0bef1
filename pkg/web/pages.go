package web

import (
	"bytes"
	"embed"
	"html/template"
	"log"
	"net/http"
	"time"

	"github.com/mfreeman451/networkhub/pkg/catalog"
)

//go:embed templates/*.html
var templateContent embed.FS

const (
	pageIndex  = "index"
	layoutFile = "templates/layout.html"
)

type pageRoute struct {
	path     string
	key      string // catalog category, or pageIndex
	title    string
	template string
}

var pageRoutes = []pageRoute{
	{"/", pageIndex, "Home", "index.html"},
	{"/protocols", catalog.CategoryProtocols, "Network Protocols", "protocols.html"},
	{"/security", catalog.CategorySecurity, "Network Security", "topics.html"},
	{"/modern-tech", catalog.CategoryModernTech, "Modern Technologies", "topics.html"},
	{"/tools", catalog.CategoryTools, "Network Tools", "tools.html"},
	{"/cloud", catalog.CategoryCloud, "Cloud Networking", "cloud.html"},
	{"/performance", catalog.CategoryPerformance, "Performance", "performance.html"},
	{"/osi-model", catalog.CategoryOSIModel, "OSI Model", "osi-model.html"},
	{"/troubleshooting", catalog.CategoryTroubleshooting, "Troubleshooting", "troubleshooting.html"},
	{"/future", catalog.CategoryFuture, "Future of Networking", "topics.html"},
}

var pageTemplates = parsePageTemplates()

// parsePageTemplates pairs the layout with each page body. Every page
// defines its own "content" block, so each gets a separate template set.
func parsePageTemplates() map[string]*template.Template {
	layout := template.Must(template.New("layout.html").ParseFS(templateContent, layoutFile))

	out := make(map[string]*template.Template)

	for _, p := range pageRoutes {
		if _, ok := out[p.template]; ok {
			continue
		}

		t := template.Must(layout.Clone())
		out[p.template] = template.Must(t.ParseFS(templateContent, "templates/"+p.template))
	}

	return out
}

type navLink struct {
	Path  string
	Title string
}

type pageData struct {
	SiteName string
	Title    string
	Path     string
	Nav      []navLink
	Data     any
	Year     int
}

func navigation() []navLink {
	nav := make([]navLink, 0, len(pageRoutes))
	for _, p := range pageRoutes {
		nav = append(nav, navLink{Path: p.path, Title: p.title})
	}

	return nav
}

func (s *Server) setupPageRoutes() {
	nav := navigation()

	for _, p := range pageRoutes {
		var data any
		if p.key != pageIndex {
			data = s.catalog.MustCategory(p.key)
		} else {
			data = nav[1:]
		}

		s.router.HandleFunc(p.path, s.pageHandler(p, nav, data)).Methods(http.MethodGet)
	}
}

func (s *Server) pageHandler(p pageRoute, nav []navLink, data any) http.HandlerFunc {
	tmpl := pageTemplates[p.template]

	return func(w http.ResponseWriter, _ *http.Request) {
		var buf bytes.Buffer

		err := tmpl.ExecuteTemplate(&buf, "layout", pageData{
			SiteName: s.siteName,
			Title:    p.title,
			Path:     p.path,
			Nav:      nav,
			Data:     data,
			Year:     time.Now().Year(),
		})
		if err != nil {
			log.Printf("Error rendering %s: %v", p.path, err)
			http.Error(w, "Internal server error", http.StatusInternalServerError)

			return
		}

		s.metrics.RecordPageView(p.key)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = buf.WriteTo(w)
	}
}
