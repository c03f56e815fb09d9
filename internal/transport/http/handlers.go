package transporthttp

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"mvp90terminal/internal/auth"
	"mvp90terminal/internal/deals"
	"mvp90terminal/internal/digest"
	"mvp90terminal/internal/feed"
	"mvp90terminal/internal/founder"
	"mvp90terminal/internal/intel"
	"mvp90terminal/internal/platform/requestctx"
	"mvp90terminal/internal/routing"
	"mvp90terminal/internal/shell"
	"mvp90terminal/internal/trends"
	"mvp90terminal/internal/watchlist"
)

type loginResponse struct {
	Token   string      `json:"token"`
	Session shell.Frame `json:"session"`
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Username string `json:"username"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.fail(w, err)
		return
	}
	id, err := s.authn.Login(r.Context(), payload.Username, payload.Password, payload.Role)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.openSession(w, r, id)
}

func (s *Server) handleDemo(w http.ResponseWriter, r *http.Request) {
	s.openSession(w, r, auth.DemoLogin())
}

// openSession signs in the session named by a still-valid bearer token, or
// opens a fresh one.
func (s *Server) openSession(w http.ResponseWriter, r *http.Request, id auth.Identity) {
	var ws *shell.Workspace
	if raw, ok := bearerToken(r); ok {
		if claims, err := s.tokens.Verify(raw); err == nil {
			ws, _ = s.store.Resume(claims.SessionID(), id)
		}
	}
	fresh := ws == nil
	if fresh {
		ws = s.store.Open(id)
	}
	token, err := s.tokens.Issue(ws.ID(), id)
	if err != nil {
		if fresh {
			s.store.Delete(ws.ID())
		}
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token, Session: frameOf(ws)})
}

func frameOf(ws *shell.Workspace) shell.Frame {
	var f shell.Frame
	_ = ws.Do(func(ws *shell.Workspace) error {
		f = ws.State().Frame()
		return nil
	})
	return f
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	_ = ws.Do(func(ws *shell.Workspace) error {
		ws.Logout()
		return nil
	})
	s.logger.Info("session signed out", zap.String("session", ws.ID()))
	writeJSON(w, http.StatusOK, frameOf(ws))
}

func (s *Server) handleSession(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	writeJSON(w, http.StatusOK, frameOf(ws))
}

func (s *Server) handleSelectModule(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	var payload struct {
		Module string `json:"module"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.fail(w, err)
		return
	}
	_ = ws.Do(func(ws *shell.Workspace) error {
		ws.SelectModule(payload.Module)
		return nil
	})
	writeJSON(w, http.StatusOK, frameOf(ws))
}

type signalsResponse struct {
	feed.Result
	Industries []string          `json:"industries"`
	Regions    []string          `json:"regions"`
	Sources    []string          `json:"sources"`
	ActionTags []intel.ActionTag `json:"actionTags"`
}

func (s *Server) handleSignals(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	q := r.URL.Query()
	sortKey, err := feed.ParseSortKey(q.Get("sortBy"))
	if err != nil {
		s.fail(w, err)
		return
	}
	filters := feed.Filters{
		Industry: q.Get("industry"),
		Region:   q.Get("region"),
		Source:   q.Get("source"),
	}
	if raw := q.Get("actionTag"); raw != "" {
		if filters.ActionTag, err = intel.ParseActionTag(raw); err != nil {
			s.fail(w, err)
			return
		}
	}
	if filters.MinNoveltyScore, err = queryFloat(r, "minNoveltyScore"); err != nil {
		s.fail(w, err)
		return
	}

	var res feed.Result
	_ = ws.Do(func(ws *shell.Workspace) error {
		res = ws.Feed.View(filters, sortKey)
		return nil
	})
	writeJSON(w, http.StatusOK, signalsResponse{
		Result:     res,
		Industries: feed.Industries,
		Regions:    feed.Regions,
		Sources:    feed.Sources,
		ActionTags: intel.ActionTags,
	})
}

func (s *Server) handleProfile(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	tab, err := feed.ParseTab(r.URL.Query().Get("tab"))
	if err != nil {
		s.fail(w, err)
		return
	}
	var p feed.Profile
	err = ws.Do(func(ws *shell.Workspace) error {
		var openErr error
		p, openErr = ws.Feed.Open(id, tab)
		return openErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var watched bool
	err = ws.Do(func(ws *shell.Workspace) error {
		var toggleErr error
		watched, toggleErr = ws.Feed.ToggleWatch(id)
		return toggleErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "watched": watched})
}

func (s *Server) handleNotes(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var payload struct {
		Notes string `json:"notes"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.fail(w, err)
		return
	}
	err = ws.Do(func(ws *shell.Workspace) error { return ws.Feed.SetNotes(id, payload.Notes) })
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"id": id, "notes": payload.Notes})
}

func (s *Server) handleFounderSearch(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	var payload struct {
		Query string `json:"query"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.fail(w, err)
		return
	}
	st, err := founderLookup(r.Context(), ws, payload.Query)
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// founderLookup runs the directory search outside the session lock. A miss
// is panel state, not a request failure.
func founderLookup(ctx context.Context, ws *shell.Workspace, query string) (founder.State, error) {
	var dir founder.Directory
	_ = ws.Do(func(ws *shell.Workspace) error {
		dir = ws.Founders.Directory()
		return nil
	})
	l, err := founder.Resolve(ctx, dir, query)
	if err != nil {
		return founder.State{}, err
	}

	var st founder.State
	err = ws.Do(func(ws *shell.Workspace) error {
		var recErr error
		st, recErr = ws.Founders.Record(l)
		return recErr
	})
	if err != nil && !errors.Is(err, founder.ErrNoFounder) {
		return founder.State{}, err
	}
	return st, nil
}

func (s *Server) handleFounderHistory(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	var history []string
	_ = ws.Do(func(ws *shell.Workspace) error {
		history = ws.Founders.State().History
		return nil
	})
	writeJSON(w, http.StatusOK, map[string]any{"history": history})
}

func (s *Server) handleDeals(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	v := r.URL.Query()
	q := deals.Query{
		Geography:    v.Get("geography"),
		Industry:     v.Get("industry"),
		Stage:        v.Get("stage"),
		LeadInvestor: v.Get("leadInvestor"),
		DateRange:    deals.DateRange(v.Get("dateRange")),
		SortBy:       deals.SortKey(v.Get("sortBy")),
		Order:        deals.Order(v.Get("order")),
	}
	var res deals.Result
	err := ws.Do(func(ws *shell.Workspace) error {
		var listErr error
		res, listErr = ws.Deals.List(q)
		return listErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleDeal(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var d deals.Detail
	err = ws.Do(func(ws *shell.Workspace) error {
		var dealErr error
		d, dealErr = ws.Deals.Deal(id)
		return dealErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// watchlistQuery reads the panel controls shared by the list and remove routes.
func watchlistQuery(r *http.Request) (watchlist.Query, error) {
	updatesOnly, err := queryBool(r, "updatesOnly")
	if err != nil {
		return watchlist.Query{}, err
	}
	q := watchlist.Query{
		Tab:    watchlist.Tab(r.URL.Query().Get("tab")),
		SortBy: watchlist.SortKey(r.URL.Query().Get("sortBy")),
	}
	if updatesOnly != nil {
		q.UpdatesOnly = *updatesOnly
	}
	return q, q.Validate()
}

func (s *Server) handleWatchlist(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	q, err := watchlistQuery(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	s.writeWatchlist(w, ws, q)
}

func (s *Server) handleWatchlistRemove(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	q, err := watchlistQuery(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	id := r.PathValue("id")
	if err := ws.Do(func(ws *shell.Workspace) error { return ws.Watchlist.Remove(id) }); err != nil {
		s.fail(w, err)
		return
	}
	s.writeWatchlist(w, ws, q)
}

func (s *Server) writeWatchlist(w http.ResponseWriter, ws *shell.Workspace, q watchlist.Query) {
	var res watchlist.Result
	err := ws.Do(func(ws *shell.Workspace) error {
		var viewErr error
		res, viewErr = ws.Watchlist.View(q)
		return viewErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (s *Server) handleTrends(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	q := trends.Query{
		TimeRange: trends.TimeRange(r.URL.Query().Get("timeRange")),
		Category:  r.URL.Query().Get("category"),
	}
	var res trends.Result
	err := ws.Do(func(ws *shell.Workspace) error {
		var viewErr error
		res, viewErr = ws.Trends.View(q)
		return viewErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// handleDigest renders the preview. Query parameters update the report
// options before rendering; they are form state, so Viewers may set them.
func (s *Server) handleDigest(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	charts, err := queryBool(r, "includeCharts")
	if err != nil {
		s.fail(w, err)
		return
	}
	details, err := queryBool(r, "includeDetails")
	if err != nil {
		s.fail(w, err)
		return
	}
	week := digest.Week(r.URL.Query().Get("week"))

	var p digest.Preview
	err = ws.Do(func(ws *shell.Workspace) error {
		opts := ws.Digest.Options()
		if week != "" {
			opts.Week = week
		}
		if charts != nil {
			opts.IncludeCharts = *charts
		}
		if details != nil {
			opts.IncludeDetails = *details
		}
		if err := ws.Digest.SetOptions(opts); err != nil {
			return err
		}
		p = ws.Digest.Preview(s.now())
		return nil
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handleDigestExport generates the report outside the session lock, then
// records it as the panel's last export.
func (s *Server) handleDigestExport(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	format, err := digest.ParseFormat(r.URL.Query().Get("format"))
	if err != nil {
		s.fail(w, err)
		return
	}

	var (
		data intel.DigestData
		opts digest.Options
	)
	_ = ws.Do(func(ws *shell.Workspace) error {
		data = ws.Digest.Data()
		opts = ws.Digest.Options()
		return nil
	})

	report, err := s.reports.Generate(r.Context(), data, opts, format)
	if err != nil {
		s.fail(w, err)
		return
	}
	_ = ws.Do(func(ws *shell.Workspace) error {
		ws.Digest.Record(report)
		return nil
	})
	s.logger.Info("digest exported",
		zap.String("session", ws.ID()),
		zap.String("format", string(format)),
	)
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleRouting(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	bucket := r.URL.Query().Get("bucket")
	var board routing.Board
	err := ws.Do(func(ws *shell.Workspace) error {
		var viewErr error
		board, viewErr = ws.Routing.View(bucket)
		return viewErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, board)
}

func (s *Server) handleDraft(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	var payload struct {
		Action  string `json:"action"`
		Comment string `json:"comment"`
	}
	if err := decodeBody(r, &payload); err != nil {
		s.fail(w, err)
		return
	}
	var d routing.Draft
	err = ws.Do(func(ws *shell.Workspace) error {
		var draftErr error
		d, draftErr = ws.Routing.StageDraft(id, intel.ActionTag(payload.Action), payload.Comment)
		return draftErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

type overrideResponse struct {
	Idea    intel.RoutedIdea `json:"idea"`
	Message string           `json:"message"`
}

func (s *Server) handleOverride(w http.ResponseWriter, r *http.Request, ws *shell.Workspace) {
	id, err := pathID(r)
	if err != nil {
		s.fail(w, err)
		return
	}
	sess, _ := requestctx.SessionFromContext(r.Context())
	var idea intel.RoutedIdea
	err = ws.Do(func(ws *shell.Workspace) error {
		var overrideErr error
		idea, overrideErr = ws.Routing.Override(id, sess.Username)
		return overrideErr
	})
	if err != nil {
		s.fail(w, err)
		return
	}
	s.logger.Info("routing override",
		zap.String("session", ws.ID()),
		zap.Int("idea", id),
		zap.String("action", string(idea.CurrentAction)),
	)
	writeJSON(w, http.StatusOK, overrideResponse{Idea: idea, Message: routing.OverrideApplied})
}
