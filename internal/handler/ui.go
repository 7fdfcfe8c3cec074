package handler

import (
	"bytes"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"dms/internal/navigation"
	"dms/web"
)

// UIHandler serves the embedded browser page
type UIHandler struct {
	page          *template.Template
	notFound      *template.Template
	static        http.Handler
	portalBaseURL string
	logger        *slog.Logger
}

// pageData is the template input of index.html.tmpl
type pageData struct {
	Source   string // "proxy" or "mock"
	Tabs     []navigation.Tab
	NavItems []navigation.Item
	Footer   string
}

// notFoundData is the template input of notfound.html.tmpl
type notFoundData struct {
	Path   string
	Footer string
}

// NewUIHandler parses the embedded page templates
func NewUIHandler(portalBaseURL string, logger *slog.Logger) (*UIHandler, error) {
	page, err := template.ParseFS(web.Assets, "index.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse page template: %w", err)
	}
	notFound, err := template.ParseFS(web.Assets, "notfound.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("failed to parse not found template: %w", err)
	}

	staticFS, err := fs.Sub(web.Assets, "static")
	if err != nil {
		return nil, fmt.Errorf("failed to open static assets: %w", err)
	}

	return &UIHandler{
		page:          page,
		notFound:      notFound,
		static:        http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))),
		portalBaseURL: portalBaseURL,
		logger:        logger,
	}, nil
}

// Index renders the page. ?source=mock switches the page to the mock routes.
// GET /{$}
func (h *UIHandler) Index(w http.ResponseWriter, r *http.Request) {
	source := "proxy"
	if r.URL.Query().Get("source") == "mock" {
		source = "mock"
	}

	var buf bytes.Buffer
	if err := h.page.Execute(&buf, pageData{
		Source:   source,
		Tabs:     navigation.Tabs(navigation.TabDocuments),
		NavItems: navigation.Items(h.portalBaseURL),
		Footer:   navigation.Footer,
	}); err != nil {
		h.logger.Error("failed to render page", "error", err)
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_, _ = w.Write(buf.Bytes())
}

// Static serves the page assets
// GET /static/
func (h *UIHandler) Static(w http.ResponseWriter, r *http.Request) {
	h.static.ServeHTTP(w, r)
}

// NotFound renders the not-found page for browser paths no route claims.
// Unknown /api/ paths keep their JSON 404.
// /
func (h *UIHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	var buf bytes.Buffer
	if err := h.notFound.Execute(&buf, notFoundData{
		Path:   r.URL.Path,
		Footer: navigation.Footer,
	}); err != nil {
		h.logger.Error("failed to render not found page", "error", err)
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusNotFound)
	if r.Method != http.MethodHead {
		_, _ = w.Write(buf.Bytes())
	}
}
