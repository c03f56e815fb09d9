// Package transporthttp exposes the terminal panels as a JSON API.
package transporthttp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/deals"
	"mvp90terminal/internal/digest"
	"mvp90terminal/internal/feed"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/platform/requestctx"
	"mvp90terminal/internal/routing"
	"mvp90terminal/internal/shell"
	"mvp90terminal/internal/trends"
	"mvp90terminal/internal/watchlist"
)

// ActionRestricted is the 403 message for Viewer mutations without a
// panel-specific message.
const ActionRestricted = "This action is only available for Admin and Analyst roles."

var (
	errBadRequest = errors.New("bad request")
	errNoToken    = errors.New("missing bearer token")
	errSignedOut  = errors.New("session is signed out")
)

// Deps are the collaborators a Server routes to.
type Deps struct {
	Store         *shell.Store
	Tokens        *auth.Tokens
	Authenticator auth.Authenticator
	Reports       digest.Generator
	Now           func() time.Time
	Logger        *zap.Logger
}

type Server struct {
	store   *shell.Store
	tokens  *auth.Tokens
	authn   auth.Authenticator
	reports digest.Generator
	now     func() time.Time
	logger  *zap.Logger
}

func NewServer(d Deps) *Server {
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = zap.NewNop()
	}
	return &Server{
		store:   d.Store,
		tokens:  d.Tokens,
		authn:   d.Authenticator,
		reports: d.Reports,
		now:     d.Now,
		logger:  d.Logger,
	}
}

// Handler is Routes behind the logging and CORS middleware.
func (s *Server) Handler() http.Handler {
	return WithLogging(s.logger, WithCORS(s.Routes()))
}

func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /healthz", s.health)
	mux.HandleFunc("GET /modules", s.handleModules)

	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/demo", s.handleDemo)
	mux.Handle("POST /auth/logout", s.anySession(s.handleLogout))
	mux.Handle("GET /session", s.anySession(s.handleSession))
	mux.Handle("PUT /session/module", s.signedIn(s.handleSelectModule))

	mux.Handle("GET /signals", s.signedIn(s.handleSignals))
	mux.Handle("GET /signals/{id}/profile", s.signedIn(s.handleProfile))
	mux.Handle("POST /signals/{id}/watch", s.signedIn(s.handleWatch))
	mux.Handle("PUT /signals/{id}/notes", s.signedIn(mutating(s, feed.NotesRestricted, s.handleNotes)))

	mux.Handle("POST /founders/search", s.signedIn(s.handleFounderSearch))
	mux.Handle("GET /founders/history", s.signedIn(s.handleFounderHistory))

	mux.Handle("GET /deals", s.signedIn(s.handleDeals))
	mux.Handle("GET /deals/{id}", s.signedIn(s.handleDeal))

	mux.Handle("GET /watchlist", s.signedIn(s.handleWatchlist))
	mux.Handle("DELETE /watchlist/{id}", s.signedIn(mutating(s, ActionRestricted, s.handleWatchlistRemove)))

	mux.Handle("GET /trends", s.signedIn(s.handleTrends))

	mux.Handle("GET /digest", s.signedIn(s.handleDigest))
	mux.Handle("POST /digest/export", s.signedIn(mutating(s, digest.ExportRestricted, s.handleDigestExport)))

	mux.Handle("GET /routing", s.signedIn(s.handleRouting))
	mux.Handle("PUT /routing/{id}/draft", s.signedIn(mutating(s, routing.OverrideRestricted, s.handleDraft)))
	mux.Handle("POST /routing/{id}/override", s.signedIn(mutating(s, routing.OverrideRestricted, s.handleOverride)))

	mux.HandleFunc("GET /swagger/openapi.yaml", serveSwaggerYAML)
	mux.HandleFunc("GET /swagger", serveSwaggerUI)
	mux.HandleFunc("GET /swagger/", serveSwaggerUI)
	return mux
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleModules(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"modules": shell.Modules})
}

// sessionHandler serves a request already bound to its workspace.
type sessionHandler func(w http.ResponseWriter, r *http.Request, ws *shell.Workspace)

func (s *Server) signedIn(h sessionHandler) http.Handler { return s.withSession(h, true) }

func (s *Server) anySession(h sessionHandler) http.Handler { return s.withSession(h, false) }

// withSession resolves the bearer token to a workspace and puts the
// session identity on the request context.
func (s *Server) withSession(h sessionHandler, requireSignIn bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw, ok := bearerToken(r)
		if !ok {
			s.fail(w, errNoToken)
			return
		}
		claims, err := s.tokens.Verify(raw)
		if err != nil {
			s.fail(w, err)
			return
		}
		ws, err := s.store.Get(claims.SessionID())
		if err != nil {
			s.fail(w, err)
			return
		}

		var (
			sess     requestctx.Session
			signedIn bool
		)
		_ = ws.Do(func(ws *shell.Workspace) error {
			st := ws.State()
			signedIn = st.Authenticated
			sess = requestctx.Session{ID: ws.ID(), Username: ws.Username(), Role: st.Role}
			return nil
		})
		if requireSignIn && !signedIn {
			s.fail(w, errSignedOut)
			return
		}
		h(w, r.WithContext(requestctx.WithSession(r.Context(), sess)), ws)
	})
}

// mutating rejects Viewer requests with message.
func mutating(s *Server, message string, h sessionHandler) sessionHandler {
	return func(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
		if !requestctx.RoleFromContext(r.Context()).CanMutate() {
			s.writeError(w, http.StatusForbidden, message)
			return
		}
		h(w, r, ws)
	}
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, auth.ErrMissingCredentials),
		errors.Is(err, intel.ErrUnknownRole),
		errors.Is(err, intel.ErrUnknownAction),
		errors.Is(err, feed.ErrUnknownSort),
		errors.Is(err, feed.ErrUnknownTab),
		errors.Is(err, deals.ErrBadQuery),
		errors.Is(err, watchlist.ErrBadQuery),
		errors.Is(err, trends.ErrBadQuery),
		errors.Is(err, digest.ErrUnknownFormat),
		errors.Is(err, digest.ErrUnknownWeek),
		errors.Is(err, routing.ErrOverrideIncomplete),
		errors.Is(err, routing.ErrUnknownBucket):
		return http.StatusBadRequest
	case errors.Is(err, feed.ErrSignalNotFound),
		errors.Is(err, deals.ErrDealNotFound),
		errors.Is(err, watchlist.ErrItemNotFound),
		errors.Is(err, routing.ErrIdeaNotFound):
		return http.StatusNotFound
	case errors.Is(err, errNoToken),
		errors.Is(err, errSignedOut),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, shell.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(w http.ResponseWriter, err error) {
	status := statusFor(err)
	message := userMessage(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", zap.Error(err))
		message = "internal error"
	}
	s.writeError(w, status, message)
}

// userMessage is the form copy for errors the user fixes by editing input.
func userMessage(err error) string {
	switch {
	case errors.Is(err, auth.ErrMissingCredentials):
		return auth.MissingCredentialsMessage
	case errors.Is(err, routing.ErrOverrideIncomplete):
		return routing.OverrideIncompleteMessage
	default:
		return err.Error()
	}
}

func (s *Server) writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// decodeBody decodes a JSON body strictly. An empty body leaves v untouched.
func decodeBody(r *http.Request, v any) error {
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: invalid payload: %v", errBadRequest, err)
	}
	return nil
}

func pathID(r *http.Request) (int, error) {
	raw := r.PathValue("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: id %q is not a number", errBadRequest, raw)
	}
	return id, nil
}

func queryFloat(r *http.Request, key string) (float64, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q is not a number", errBadRequest, key, raw)
	}
	return v, nil
}

func queryBool(r *http.Request, key string) (*bool, error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s %q is not a boolean", errBadRequest, key, raw)
	}
	return &v, nil
}
