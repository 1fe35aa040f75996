// Package webhandler serves the HTML requirement form.
package webhandler

import (
	"bytes"
	"context"
	"embed"
	"homefinder/internal/collector"
	"homefinder/internal/finder"
	"homefinder/pkg/controller"
	"homefinder/pkg/domain"
	"homefinder/pkg/logger"
	"homefinder/pkg/query"
	"html/template"
	"net/http"
	"strconv"

	"go.uber.org/zap"
)

// Title is the page heading.
const Title = "Is your perfect home under your budget? Let's find out!"

const (
	indexTemplate = "index.html.tmpl"
	maxFormBytes  = 64 << 10
)

//go:embed templates/*.tmpl
var templates embed.FS

var funcs = template.FuncMap{ //nolint: gochecknoglobals
	"inc":  func(i int) int { return i + 1 },
	"area": query.FormatArea,
}

// Deps are the services the handlers call.
type Deps struct {
	Finder    finder.Finder
	Collector *collector.Collector
}

type Handler struct {
	deps Deps
	tmpl *template.Template
}

func New(deps Deps) (*Handler, error) {
	tmpl, err := template.New("").Funcs(funcs).ParseFS(templates, "templates/*.tmpl")
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return &Handler{deps: deps, tmpl: tmpl}, nil
}

// Register mounts the form routes on mux.
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Index)
	mux.HandleFunc("POST /find", h.Find)
}

type page struct {
	Title         string
	Bounds        collector.Bounds
	PropertyTypes []domain.PropertyType
	Form          Form
	Footprint     *domain.DerivedFootprint
	Result        *domain.Recommendation
	Error         string
}

func (h *Handler) newPage(form Form) page {
	return page{
		Title:         Title,
		Bounds:        h.deps.Collector.Bounds(),
		PropertyTypes: domain.PropertyTypes,
		Form:          form,
	}
}

// Index renders an empty form. The bedrooms and bathrooms query parameters
// choose how many size inputs are shown.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	bedrooms, _ := strconv.Atoi(r.URL.Query().Get("bedrooms"))
	bathrooms, _ := strconv.Atoi(r.URL.Query().Get("bathrooms"))

	form := DefaultForm(h.deps.Collector.Bounds(), bedrooms, bathrooms)
	h.render(r.Context(), w, http.StatusOK, h.newPage(form))
}

// Find runs the pipeline for a submitted form and renders the recommendation,
// the no-results notice or the error next to the submitted values.
func (h *Handler) Find(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		p := h.newPage(DefaultForm(h.deps.Collector.Bounds(), 1, 1))
		p.Error = "could not read form"
		h.render(r.Context(), w, http.StatusBadRequest, p)

		return
	}

	form := ParseForm(r.PostForm)
	p := h.newPage(form)

	rec, err := h.find(r.Context(), form)
	if err != nil {
		status := controller.StatusFor(err)
		p.Error = err.Error()
		if status == http.StatusInternalServerError {
			logger.Error(r.Context(), "could not find properties", zap.Error(err))
			p.Error = "internal error"
		}
		h.render(r.Context(), w, status, p)

		return
	}

	p.Footprint = &rec.Footprint
	p.Result = rec
	h.render(r.Context(), w, http.StatusOK, p)
}

func (h *Handler) find(ctx context.Context, form Form) (*domain.Recommendation, error) {
	in, err := form.Input()
	if err != nil {
		return nil, err
	}
	sub, err := h.deps.Collector.Collect(in)
	if err != nil {
		return nil, err //nolint: wrapcheck
	}

	return h.deps.Finder.Find(ctx, sub) //nolint: wrapcheck
}

func (h *Handler) render(ctx context.Context, w http.ResponseWriter, status int, p page) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, indexTemplate, p); err != nil {
		logger.Error(ctx, "could not render page", zap.Error(err))
		http.Error(w, "internal error", http.StatusInternalServerError)

		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
