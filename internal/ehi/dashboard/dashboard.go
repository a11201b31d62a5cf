package dashboard

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecosystem-labs/ehi/internal/ehi/report"
	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

//go:embed templates/* static/*
var embeddedFS embed.FS

// Dashboard serves the web UI for browsing score records.
type Dashboard struct {
	index        *Index
	overviewTmpl *template.Template
	detailTmpl   *template.Template
	partialsTmpl *template.Template
	staticFS     fs.FS
	logger       *slog.Logger
}

// New creates a Dashboard, loads templates, and indexes the score history.
func New(scoresPath string, logger *slog.Logger) (*Dashboard, error) {
	idx := NewIndex(scoresPath)
	if err := idx.Load(); err != nil {
		logger.Warn("failed to load score history", "error", err)
	}

	funcMap := template.FuncMap{
		"timeAgo":  timeAgo,
		"dimLabel": func(dim string) string { return schema.DimensionLabels[dim] },
		"radar":    func(rec *schema.ScoreRecord) template.HTML { return template.HTML(report.RadarSVG(rec)) },
	}

	sharedFiles := []string{
		"templates/layout.html",
		"templates/partials/score_table.html",
	}

	overviewTmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFS,
		append(sharedFiles, "templates/overview.html")...)
	if err != nil {
		return nil, fmt.Errorf("parsing overview templates: %w", err)
	}

	detailTmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFS,
		append(sharedFiles, "templates/detail.html")...)
	if err != nil {
		return nil, fmt.Errorf("parsing detail templates: %w", err)
	}

	partialsTmpl, err := template.New("").Funcs(funcMap).ParseFS(embeddedFS,
		"templates/partials/score_table.html")
	if err != nil {
		return nil, fmt.Errorf("parsing partial templates: %w", err)
	}

	staticFS, err := fs.Sub(embeddedFS, "static")
	if err != nil {
		return nil, fmt.Errorf("creating static FS: %w", err)
	}

	return &Dashboard{
		index:        idx,
		overviewTmpl: overviewTmpl,
		detailTmpl:   detailTmpl,
		partialsTmpl: partialsTmpl,
		staticFS:     staticFS,
		logger:       logger,
	}, nil
}

// RegisterRoutes adds dashboard routes to the given mux.
func (d *Dashboard) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /ui", d.handleOverview)
	mux.HandleFunc("GET /ui/", d.handleOverview)
	mux.HandleFunc("GET /ui/score/{company}/{key}", d.handleDetail)
	mux.HandleFunc("GET /ui/partials/table", d.handlePartialTable)
	mux.Handle("GET /ui/static/", http.StripPrefix("/ui/static/", http.FileServer(http.FS(d.staticFS))))
	mux.HandleFunc("GET /api/scores", d.handleAPIList)
	mux.HandleFunc("GET /api/scores/{company}/{key}", d.handleAPIDetail)
}

// Refresh reloads the score history when the file has changed since the last
// load. Every handler calls it first, so records appended while the server is
// running show up without a restart.
func (d *Dashboard) Refresh() {
	if err := d.index.ReloadIfStale(); err != nil {
		d.logger.Error("dashboard refresh failed", "error", err)
	}
}

func timeAgo(t time.Time) string {
	d := time.Since(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		days := int(d.Hours() / 24)
		if days == 1 {
			return "1d ago"
		}
		return fmt.Sprintf("%dd ago", days)
	}
}

// Page data types

type overviewData struct {
	Title       string
	RecordCount int
	Entries     []IndexEntry
	Latest      []IndexEntry
	Filters     ListOptions
}

type detailData struct {
	Title       string
	RecordCount int
	Company     string
	Key         string
	Record      *schema.ScoreRecord
	Order       []string
}
