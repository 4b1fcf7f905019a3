package server

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"nff-scraper/internal/store"
)

var errNoDocument = errors.New("no data yet, run fetch first")

// Server exposes the scraped document read-only. The file is re-read on
// every request so a concurrent fetch run is picked up without a restart.
type Server struct {
	path string
}

func New(path string) *Server {
	return &Server{path: path}
}

func (s *Server) Router() *mux.Router {
	r := mux.NewRouter()
	r.HandleFunc("/api/document", s.getDocument).Methods("GET")
	r.HandleFunc("/api/table", s.getTable).Methods("GET")
	r.HandleFunc("/api/matches", s.getMatches).Methods("GET")
	r.HandleFunc("/api/my-matches", s.getMyMatches).Methods("GET")
	r.HandleFunc("/", docsHandler).Methods("GET")
	return r
}

func (s *Server) load() (store.Document, error) {
	doc, err := store.Load(s.path)
	if err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, errNoDocument
	}
	return doc, nil
}

func (s *Server) snapshot(w http.ResponseWriter, r *http.Request) (store.Snapshot, bool) {
	doc, err := s.load()
	if err != nil {
		writeError(w, r, err)
		return store.Snapshot{}, false
	}
	snap, err := doc.Snapshot()
	if err != nil {
		writeError(w, r, err)
		return store.Snapshot{}, false
	}
	return snap, true
}

func (s *Server) getDocument(w http.ResponseWriter, r *http.Request) {
	doc, err := s.load()
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

func (s *Server) getTable(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.Table)
}

func (s *Server) getMatches(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	switch filter := r.URL.Query().Get("filter"); filter {
	case "":
		writeJSON(w, http.StatusOK, snap.Matches.All)
	case "upcoming":
		writeJSON(w, http.StatusOK, snap.Matches.Upcoming)
	case "played":
		writeJSON(w, http.StatusOK, snap.Matches.Played)
	default:
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "unknown filter " + filter + ", use upcoming or played"})
	}
}

func (s *Server) getMyMatches(w http.ResponseWriter, r *http.Request) {
	snap, ok := s.snapshot(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, snap.MyMatches)
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, errNoDocument) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	slog.ErrorContext(r.Context(), "failed reading document", "path", r.URL.Path, "err", err)
	writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.Encode(v)
}

// docsHandler serves a short HTML description of the endpoints.
func docsHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	io.WriteString(w, `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>NFF Scraper API</title>
  <style>
    :root { color-scheme: light dark; }
    body { font-family: system-ui, -apple-system, Segoe UI, Roboto, Helvetica, Arial, sans-serif; margin: 0; padding: 24px; line-height: 1.5; }
    code { background: rgba(127,127,127,.15); padding: .2em .4em; border-radius: 4px; }
    .ep { margin: 18px 0; padding: 16px; border-left: 4px solid #4f46e5; background: rgba(79,70,229,.08); border-radius: 6px; }
    h1 { margin: 0 0 8px; font-size: 1.6rem; }
    h2 { margin: 22px 0 8px; font-size: 1.2rem; }
  </style>
  <link rel="icon" href="data:," />
  <meta name="robots" content="noindex" />
</head>
<body>
  <header>
    <h1>NFF Scraper API</h1>
    <p>Read-only view of the last <code>fetch</code> run.</p>
  </header>

  <section class="ep">
    <h2>Whole document</h2>
    <p><strong>GET</strong> <code>/api/document</code></p>
  </section>

  <section class="ep">
    <h2>Standings</h2>
    <p><strong>GET</strong> <code>/api/table</code></p>
  </section>

  <section class="ep">
    <h2>Matches</h2>
    <p><strong>GET</strong> <code>/api/matches</code>, <code>/api/matches?filter=upcoming</code>, <code>/api/matches?filter=played</code></p>
  </section>

  <section class="ep">
    <h2>Club matches</h2>
    <p><strong>GET</strong> <code>/api/my-matches</code></p>
  </section>
</body>
</html>`)
}
