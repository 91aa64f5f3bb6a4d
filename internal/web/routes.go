package web

import (
	"html/template"
	"net/http"

	"github.com/rook-computer/glassicon/internal/render"
)

// Deps are the values the HTTP handlers read from.
type Deps struct {
	Icons  *IconSet
	Design render.Design
}

// NewDefaultMux builds the standard mux:
// - /api/v1/* for the JSON API
// - /icons/<name> for the PNG files
// - / for a small index page
func NewDefaultMux(deps Deps) *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/api/v1/", http.StripPrefix("/api/v1", apiV1Router(deps)))
	if deps.Icons != nil {
		mux.Handle("/icons/", http.StripPrefix("/icons", deps.Icons))
	}
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) { handleIndex(w, r, deps) })
	return mux
}

var indexTemplate = template.Must(template.New("index").Parse(`<!doctype html>
<html><head><meta charset="utf-8"><title>glassicon</title></head>
<body>
{{range .}}<figure><img src="/icons/{{.Name}}" width="{{.Size}}" height="{{.Size}}" alt="{{.Name}}"><figcaption>{{.Name}}</figcaption></figure>
{{end}}</body></html>
`))

func handleIndex(w http.ResponseWriter, r *http.Request, deps Deps) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	var icons []Icon
	if deps.Icons != nil {
		icons = deps.Icons.List()
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_ = indexTemplate.Execute(w, icons)
}
