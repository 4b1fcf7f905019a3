package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"nff-scraper/internal/store"
)

const testStandings = `<table><thead><tr><th>#</th><th>Lag</th><th>S</th><th>V</th><th>U</th><th>T</th><th>+</th><th>-</th><th>+/-</th><th>Poeng</th></tr></thead>
<tbody><tr><td>1</td><td>Elvebyen FK</td><td>1</td><td>1</td><td>0</td><td>0</td><td>2</td><td>0</td><td>+2</td><td>3</td></tr></tbody></table>`

const testFixtures = `<table><thead><tr><th>Runde</th><th>Dato</th><th>Tid</th><th>Hjemmelag</th><th>Bortelag</th><th>Bane</th><th>Resultat</th></tr></thead>
<tbody><tr><td>1</td><td>01.08.2025</td><td>18:00</td><td>Elvebyen FK</td><td>Nordbyen IL</td><td>Kunstgress</td><td>2-0</td></tr></tbody></table>`

func TestFetchCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/tabell":
			w.Write([]byte(testStandings))
		case "/kamper":
			w.Write([]byte(testFixtures))
		default:
			http.NotFound(w, r)
		}
	}))
	defer srv.Close()

	dir := t.TempDir()
	out := filepath.Join(dir, "data", "out.json")
	t.Setenv("TABELL_URL", srv.URL+"/tabell")
	t.Setenv("KAMPER_URL", srv.URL+"/kamper")
	t.Setenv("CLUB_NAME", "Nordbyen")
	t.Setenv("NFF_OUTPUT", "")
	t.Setenv("DEBUG_SAVE_HTML", "")

	rootCmd.SetArgs([]string{"fetch", "--config", filepath.Join(dir, "nff.json5"), "--out", out, "-q"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	doc, err := store.Load(out)
	require.NoError(t, err)
	snap, err := doc.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Table, 1)
	require.Len(t, snap.Matches.Played, 1)
	require.Len(t, snap.MyMatches, 1)
}

func TestFetchCommandFailsOnBadPage(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	defer srv.Close()

	dir := t.TempDir()
	t.Setenv("TABELL_URL", srv.URL+"/tabell")
	t.Setenv("KAMPER_URL", srv.URL+"/kamper")

	rootCmd.SetArgs([]string{"fetch", "--config", filepath.Join(dir, "nff.json5"), "--out", filepath.Join(dir, "out.json"), "-q"})
	err := rootCmd.ExecuteContext(context.Background())
	require.Error(t, err)
	require.Contains(t, err.Error(), "status 404")
}
