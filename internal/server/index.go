package server

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/a-h/templ"

	"github.com/depeter/shutterfolio/internal/content"
)

func (s *Server) index(w http.ResponseWriter, r *http.Request) {
	templ.Handler(indexPage(s.catalog, s.dataset)).ServeHTTP(w, r)
}

// indexPage lists what the server is serving, grouped by category.
func indexPage(cat *content.Catalog, dataset string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		p := &printer{w: w}
		p.printf(`<!doctype html><html lang="en"><head><meta charset="utf-8">`)
		p.printf(`<title>Shutterfolio content · %s</title>`, templ.EscapeString(dataset))
		p.printf(`<style>body{font-family:sans-serif;max-width:56rem;margin:2rem auto;color:#222}`)
		p.printf(`li{margin:.25rem 0}small{color:#777}</style></head><body>`)
		p.printf(`<h1>%s</h1><p>%s</p>`, templ.EscapeString(cat.About.Headline), templ.EscapeString(cat.About.Bio))

		for _, category := range cat.Categories()[1:] {
			p.printf(`<h2>%s</h2><ul>`, templ.EscapeString(category))
			for _, proj := range cat.Filter(category) {
				p.printf(`<li><a href="%s">%s</a> <small>%s · %d</small></li>`,
					templ.EscapeString(string(templ.URL(proj.Image))),
					templ.EscapeString(proj.Title),
					templ.EscapeString(proj.Location),
					proj.Year)
			}
			p.printf(`</ul>`)
		}

		p.printf(`<h2>Services</h2><ul>`)
		for _, svc := range cat.Services {
			p.printf(`<li><strong>%s</strong> <small>%s</small></li>`,
				templ.EscapeString(svc.Title), templ.EscapeString(svc.Price))
		}
		p.printf(`</ul></body></html>`)
		return p.err
	})
}

// printer keeps the first write error so the page body stays readable.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) printf(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format, args...)
}
