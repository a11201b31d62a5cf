package dashboard

import (
	"encoding/json"
	"net/http"

	"github.com/ecosystem-labs/ehi/internal/ehi/schema"
)

func (d *Dashboard) handleOverview(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path == "/ui/" {
		http.Redirect(w, r, "/ui", http.StatusMovedPermanently)
		return
	}

	d.Refresh()
	opts := parseListOptions(r)
	data := overviewData{
		Title:       "Ecosystem Health Overview",
		RecordCount: d.index.Count(),
		Entries:     d.index.List(opts),
		Latest:      d.index.LatestPerCompany(),
		Filters:     opts,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.overviewTmpl.ExecuteTemplate(w, "layout", data); err != nil {
		d.logger.Error("rendering overview", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (d *Dashboard) handleDetail(w http.ResponseWriter, r *http.Request) {
	company := r.PathValue("company")
	key := r.PathValue("key")

	d.Refresh()
	rec, err := d.index.Get(company, key)
	if err != nil {
		http.NotFound(w, r)
		return
	}

	data := detailData{
		Title:       company,
		RecordCount: d.index.Count(),
		Company:     company,
		Key:         key,
		Record:      rec,
		Order:       schema.DimensionOrder,
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.detailTmpl.ExecuteTemplate(w, "layout", data); err != nil {
		d.logger.Error("rendering detail", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (d *Dashboard) handlePartialTable(w http.ResponseWriter, r *http.Request) {
	d.Refresh()
	entries := d.index.List(parseListOptions(r))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := d.partialsTmpl.ExecuteTemplate(w, "score_table_content", entries); err != nil {
		d.logger.Error("rendering table partial", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func (d *Dashboard) handleAPIList(w http.ResponseWriter, r *http.Request) {
	d.Refresh()
	entries := d.index.List(parseListOptions(r))

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(entries)
}

func (d *Dashboard) handleAPIDetail(w http.ResponseWriter, r *http.Request) {
	d.Refresh()
	rec, err := d.index.Get(r.PathValue("company"), r.PathValue("key"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(rec)
}

func parseListOptions(r *http.Request) ListOptions {
	return ListOptions{
		Company:   r.URL.Query().Get("company"),
		Grade:     r.URL.Query().Get("grade"),
		SortField: r.URL.Query().Get("sort"),
		SortDesc:  r.URL.Query().Get("desc") == "true",
	}
}
