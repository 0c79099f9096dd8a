// Package ui serves a small web playground for the expression parser.
package ui

import (
	"embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"github.com/dhamidi/pratt/expr"
	"github.com/dhamidi/pratt/expr/parser"
	"github.com/dhamidi/pratt/format"
	"github.com/tliron/commonlog"
)

//go:embed templates
var embeddedFS embed.FS

var log = commonlog.GetLogger("pratt.ui")

// maxExprBytes caps the size of a submitted expression.
const maxExprBytes = 64 << 10

type Server struct {
	templates *template.Template
	mux       *http.ServeMux
	opts      []parser.Option
}

// Request is the JSON body accepted by POST /parse.
type Request struct {
	Expr string `json:"expr"`
}

// Result is what the playground shows for one expression.
type Result struct {
	Input    string      `json:"input"`
	Render   string      `json:"render,omitempty"`
	Tree     *format.AST `json:"tree,omitempty"`
	TreeText string      `json:"-"`
	Error    string      `json:"error,omitempty"`
}

func NewServer(opts ...parser.Option) (*Server, error) {
	tmpl, err := template.ParseFS(embeddedFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	s := &Server{
		templates: tmpl,
		mux:       http.NewServeMux(),
		opts:      opts,
	}

	s.mux.HandleFunc("POST /parse", s.handleParse)
	s.mux.HandleFunc("GET /{$}", s.handleIndex)

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Errorf("render %s: %s", name, err)
	}
}

// Evaluate parses input and fills in a Result. Parse failures are part of
// the result, not an error.
func (s *Server) Evaluate(input string) Result {
	result := Result{Input: input}
	node, err := expr.Parse(input, s.opts...)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Render = node.String()
	result.Tree = format.NodeToAST(node)
	if text, err := format.NewTreeEncoder(nil).Marshal(node); err == nil {
		result.TreeText = string(text)
	}
	return result
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	input := r.URL.Query().Get("expr")
	if input == "" {
		s.render(w, "index.html", Result{})
		return
	}
	s.render(w, "index.html", s.Evaluate(input))
}

func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxExprBytes)

	var req Request
	wantJSON := strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") ||
		r.Header.Get("Accept") == "application/json"

	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid JSON: "+err.Error(), http.StatusBadRequest)
			return
		}
	} else {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "invalid form data: "+err.Error(), http.StatusBadRequest)
			return
		}
		req.Expr = r.FormValue("expr")
	}

	result := s.Evaluate(req.Expr)
	log.Debugf("parse %q: render=%q error=%q", req.Expr, result.Render, result.Error)

	if wantJSON {
		w.Header().Set("Content-Type", "application/json")
		if result.Error != "" {
			w.WriteHeader(http.StatusUnprocessableEntity)
		}
		json.NewEncoder(w).Encode(result)
		return
	}

	s.render(w, "index.html", result)
}
