package transporthttp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/catalog"
	"mvp90terminal/internal/digest"
	"mvp90terminal/internal/feed"
	"mvp90terminal/internal/founder"
	"mvp90terminal/internal/routing"
	"mvp90terminal/internal/shell"
)

var testNow = time.Date(2024, 1, 16, 10, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) http.Handler {
	t.Helper()
	tokens, err := auth.NewTokens("test-secret", time.Hour, nil)
	require.NoError(t, err)
	now := func() time.Time { return testNow }
	srv := NewServer(Deps{
		Store:         shell.NewStore(catalog.Samples(), shell.Options{Now: now}),
		Tokens:        tokens,
		Authenticator: auth.Authenticator{Verifier: auth.AnyCredentials{}},
		Reports:       digest.Generator{Now: now},
		Now:           now,
	})
	return srv.Routes()
}

func call(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func login(t *testing.T, h http.Handler, role string) string {
	t.Helper()
	rec := call(t, h, http.MethodPost, "/auth/login", "", map[string]string{
		"username": "ana", "password": "pw", "role": role,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	return decode[loginResponse](t, rec).Token
}

func errorOf(t *testing.T, rec *httptest.ResponseRecorder) string {
	return decode[map[string]string](t, rec)["error"]
}

func TestHealthAndModulesArePublic(t *testing.T) {
	h := newTestServer(t)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/healthz", "", nil).Code)

	rec := call(t, h, http.MethodGet, "/modules", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	type modulesBody struct {
		Modules []shell.Module `json:"modules"`
	}
	body := decode[modulesBody](t, rec)
	assert.Len(t, body.Modules, 7)
}

func TestLoginGrantsSelectedRole(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Analyst")

	rec := call(t, h, http.MethodGet, "/session", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	frame := decode[shell.Frame](t, rec)
	assert.True(t, frame.State.Authenticated)
	assert.Equal(t, "Analyst", string(frame.State.Role))
	assert.Equal(t, "startupFeed", frame.State.CurrentModule)
}

func TestLoginRejectsBlankCredentials(t *testing.T) {
	h := newTestServer(t)
	rec := call(t, h, http.MethodPost, "/auth/login", "", map[string]string{"username": "ana", "password": " "})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, auth.MissingCredentialsMessage, errorOf(t, rec))

	rec = call(t, h, http.MethodPost, "/auth/login", "", map[string]string{"username": "a", "password": "b", "role": "Root"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequestsWithoutSessionAreUnauthorized(t *testing.T) {
	h := newTestServer(t)
	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/signals", "", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/signals", "not-a-jwt", nil).Code)
}

func TestViewerCannotExportOrOverride(t *testing.T) {
	h := newTestServer(t)
	viewer := login(t, h, "Viewer")

	rec := call(t, h, http.MethodPost, "/digest/export?format=html", viewer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, digest.ExportRestricted, errorOf(t, rec))

	rec = call(t, h, http.MethodPut, "/routing/1/draft", viewer, map[string]string{"action": "Store", "comment": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	rec = call(t, h, http.MethodPost, "/routing/1/override", viewer, nil)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, routing.OverrideRestricted, errorOf(t, rec))

	rec = call(t, h, http.MethodPut, "/signals/1/notes", viewer, map[string]string{"notes": "x"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, feed.NotesRestricted, errorOf(t, rec))
	assert.Equal(t, http.StatusForbidden, call(t, h, http.MethodDelete, "/watchlist/signal-1", viewer, nil).Code)

	assert.Equal(t, http.StatusOK, call(t, h, http.MethodPost, "/signals/1/watch", viewer, nil).Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/digest", viewer, nil).Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/routing", viewer, nil).Code)
}

func TestAdminExportsDigest(t *testing.T) {
	h := newTestServer(t)
	rec := call(t, h, http.MethodPost, "/auth/demo", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	admin := decode[loginResponse](t, rec).Token

	rec = call(t, h, http.MethodPost, "/digest/export?format=html", admin, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	report := decode[digest.Report](t, rec)
	assert.Equal(t, "HTML report generated and downloaded!", report.Message)
	assert.Contains(t, report.Markdown, "# MVP90 LP Digest - Week of 1/16/2024")

	rec = call(t, h, http.MethodPost, "/digest/export?format=docx", admin, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalystOverridesRouting(t *testing.T) {
	h := newTestServer(t)
	analyst := login(t, h, "Analyst")

	rec := call(t, h, http.MethodPut, "/routing/1/draft", analyst, map[string]string{"action": "Store", "comment": ""})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, h, http.MethodPost, "/routing/1/override", analyst, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, routing.OverrideIncompleteMessage, errorOf(t, rec))

	rec = call(t, h, http.MethodPut, "/routing/1/draft", analyst, map[string]string{"comment": "Market saturated"})
	require.Equal(t, http.StatusOK, rec.Code)
	rec = call(t, h, http.MethodPost, "/routing/1/override", analyst, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	body := decode[overrideResponse](t, rec)
	assert.Equal(t, routing.OverrideApplied, body.Message)
	assert.Equal(t, "Store", string(body.Idea.CurrentAction))
	require.NotNil(t, body.Idea.AnalystOverride)
	assert.Equal(t, "ana", body.Idea.AnalystOverride.Analyst)
	assert.Equal(t, "Market saturated", body.Idea.AnalystOverride.Comment)
	assert.Equal(t, "2024-01-16", body.Idea.AnalystOverride.Date.String())

	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodPost, "/routing/99/override", analyst, nil).Code)
}

func TestDealsFilteredByGeography(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Viewer")

	rec := call(t, h, http.MethodGet, "/deals?geography=India", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	type dealsBody struct {
		Deals []struct {
			StartupName string `json:"startupName"`
		} `json:"deals"`
		TotalFunding float64 `json:"totalFunding"`
	}
	body := decode[dealsBody](t, rec)
	var names []string
	for _, d := range body.Deals {
		names = append(names, d.StartupName)
	}
	assert.ElementsMatch(t, []string{"FlexiPay", "AgriDrone"}, names)
	assert.InDelta(t, 14.8, body.TotalFunding, 1e-9)

	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodGet, "/deals?sortBy=hype", token, nil).Code)
	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodGet, "/deals/404", token, nil).Code)
}

func TestFounderSearchAndHistory(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Viewer")

	for _, q := range []string{"Priya Sharma", "Rajesh Kumar", "Priya Sharma"} {
		rec := call(t, h, http.MethodPost, "/founders/search", token, map[string]string{"query": q})
		require.Equal(t, http.StatusOK, rec.Code)
	}
	rec := call(t, h, http.MethodGet, "/founders/history", token, nil)
	body := decode[map[string][]string](t, rec)
	assert.Equal(t, []string{"Priya Sharma", "Rajesh Kumar"}, body["history"])

	rec = call(t, h, http.MethodPost, "/founders/search", token, map[string]string{"query": "zzz-no-match"})
	require.Equal(t, http.StatusOK, rec.Code)
	miss := decode[map[string]any](t, rec)
	assert.Nil(t, miss["result"])
	assert.Equal(t, founder.NoFounderMessage, miss["error"])
}

func TestUnknownModuleRendersPlaceholder(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Viewer")

	rec := call(t, h, http.MethodPut, "/session/module", token, map[string]string{"module": "portfolio"})
	require.Equal(t, http.StatusOK, rec.Code)
	frame := decode[shell.Frame](t, rec)
	assert.Equal(t, "Dashboard", frame.Header.Title)
	require.NotNil(t, frame.Placeholder)
}

func TestLogoutSignsOut(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Admin")

	rec := call(t, h, http.MethodPost, "/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	frame := decode[shell.Frame](t, rec)
	assert.False(t, frame.State.Authenticated)
	assert.Equal(t, "Viewer", string(frame.State.Role))

	assert.Equal(t, http.StatusUnauthorized, call(t, h, http.MethodGet, "/signals", token, nil).Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodGet, "/session", token, nil).Code)
}

func TestLoginWithSignedOutTokenResumesSession(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Analyst")
	require.Equal(t, http.StatusOK, call(t, h, http.MethodDelete, "/watchlist/signal-1", token, nil).Code)
	require.Equal(t, http.StatusOK, call(t, h, http.MethodPost, "/auth/logout", token, nil).Code)

	rec := call(t, h, http.MethodPost, "/auth/login", token, map[string]string{"username": "ana", "password": "pw", "role": "Admin"})
	require.Equal(t, http.StatusOK, rec.Code)
	resumed := decode[loginResponse](t, rec)
	assert.Equal(t, "Admin", string(resumed.Session.State.Role))

	rec = call(t, h, http.MethodDelete, "/watchlist/signal-1", resumed.Token, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code, "removal survives the sign-out")
}

func TestSessionsDoNotShareState(t *testing.T) {
	h := newTestServer(t)
	a := login(t, h, "Analyst")
	b := login(t, h, "Analyst")

	require.Equal(t, http.StatusOK, call(t, h, http.MethodDelete, "/watchlist/signal-1", a, nil).Code)
	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodDelete, "/watchlist/signal-1", a, nil).Code)
	assert.Equal(t, http.StatusOK, call(t, h, http.MethodDelete, "/watchlist/signal-1", b, nil).Code)
}

type watchlistItem struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

type watchlistBody struct {
	Items []watchlistItem `json:"items"`
}

func TestWatchlistRemoveKeepsPanelControls(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Analyst")

	rec := call(t, h, http.MethodDelete, "/watchlist/signal-1?tab=founders&sortBy=name", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decode[watchlistBody](t, rec)
	require.Len(t, body.Items, 2)
	for _, item := range body.Items {
		assert.Equal(t, "founder", item.Type)
	}
	assert.Equal(t, "founder-2", body.Items[0].ID, "Dr. Sarah Chen sorts before Priya Sharma")

	rec = call(t, h, http.MethodDelete, "/watchlist/founder-1?tab=memos", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = call(t, h, http.MethodDelete, "/watchlist/founder-1?updatesOnly=maybe", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = call(t, h, http.MethodDelete, "/watchlist/founder-1", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, "a rejected query leaves the item in place")
}

func TestSignalProfileAndWatch(t *testing.T) {
	h := newTestServer(t)
	token := login(t, h, "Analyst")

	rec := call(t, h, http.MethodPost, "/signals/1/watch", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decode[map[string]any](t, rec)["watched"])

	rec = call(t, h, http.MethodGet, "/signals/1/profile?tab=scoring", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decode[map[string]any](t, rec)
	assert.Equal(t, true, profile["watched"])
	assert.Equal(t, "scoring", profile["tab"])

	assert.Equal(t, http.StatusNotFound, call(t, h, http.MethodGet, "/signals/77/profile", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodGet, "/signals/abc/profile", token, nil).Code)
	assert.Equal(t, http.StatusBadRequest, call(t, h, http.MethodGet, "/signals?sortBy=hype", token, nil).Code)
}

func TestCORSPreflight(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/signals", nil)
	WithCORS(http.NotFoundHandler()).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
