package server

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/echotab/echotab/pkg/buildinfo"
	"github.com/echotab/echotab/pkg/dashboard"
	"github.com/echotab/echotab/pkg/errors"
	"github.com/echotab/echotab/pkg/grid"
	"github.com/echotab/echotab/pkg/observability"
	"github.com/echotab/echotab/pkg/store"
	"github.com/echotab/echotab/pkg/widget"
)

// =============================================================================
// Request and response bodies
// =============================================================================

type layoutResponse struct {
	Grid        grid.Config          `json:"grid"`
	Layout      grid.Layout          `json:"layout"`
	Shortcuts   []dashboard.Shortcut `json:"shortcuts"`
	Widgets     []dashboard.Widget   `json:"widgets"`
	Interaction *interactionResponse `json:"interaction,omitempty"`
}

type createdResponse struct {
	ID     string      `json:"id"`
	Layout grid.Layout `json:"layout"`
}

type shortcutRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
	Icon  string `json:"icon,omitempty"`
}

type widgetRequest struct {
	Type   string         `json:"type"`
	Config map[string]any `json:"config,omitempty"`
	W      int            `json:"w,omitempty"`
	H      int            `json:"h,omitempty"`
}

type widgetUpdateRequest struct {
	Config map[string]any `json:"config"`
}

type interactionRequest struct {
	ItemID string `json:"item_id"`
	Kind   string `json:"kind"`
}

type interactionResponse struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	ItemID string `json:"item_id"`
}

type proposalRequest struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type previewResponse struct {
	Layout  grid.Layout `json:"layout"`
	Outcome string      `json:"outcome"`
}

// =============================================================================
// Handlers
// =============================================================================

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Version})
}

func (s *Server) handleWidgets(w http.ResponseWriter, r *http.Request) {
	var manifests []widget.Manifest
	if tag := r.URL.Query().Get("tag"); tag != "" {
		manifests = s.registry.SearchByTag(tag)
	} else {
		manifests = s.registry.All()
	}
	writeJSON(w, http.StatusOK, manifests)
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess := s.sessionFor(profile); sess != nil {
		writeJSON(w, http.StatusOK, layoutOf(sess.state, sess))
		return
	}
	st, err := s.load(r.Context(), profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, layoutOf(st, nil))
}

func (s *Server) handleAddShortcut(w http.ResponseWriter, r *http.Request) {
	var req shortcutRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, http.StatusCreated, dashboard.AddShortcut{Title: req.Title, URL: req.URL, Icon: req.Icon})
}

func (s *Server) handleRemoveShortcut(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, http.StatusOK, dashboard.RemoveShortcut{ID: chi.URLParam(r, "id")})
}

func (s *Server) handleAddWidget(w http.ResponseWriter, r *http.Request) {
	var req widgetRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, http.StatusCreated, dashboard.AddWidget{Type: req.Type, Config: req.Config, W: req.W, H: req.H})
}

func (s *Server) handleUpdateWidget(w http.ResponseWriter, r *http.Request) {
	var req widgetUpdateRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	s.mutate(w, r, http.StatusOK, dashboard.UpdateWidget{ID: chi.URLParam(r, "id"), Config: req.Config})
}

func (s *Server) handleRemoveWidget(w http.ResponseWriter, r *http.Request) {
	s.mutate(w, r, http.StatusOK, dashboard.RemoveWidget{ID: chi.URLParam(r, "id")})
}

// mutate applies a to the saved profile and persists the result. Created
// items are reported by id.
func (s *Server) mutate(w http.ResponseWriter, r *http.Request, status int, a dashboard.Action) {
	profile := profileFrom(r)

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess := s.sessionFor(profile); sess != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInteractionActive,
			"profile %s has an open %s of %s", profile, sess.state.Interaction.Kind, sess.state.Interaction.ItemID))
		return
	}

	st, err := s.load(r.Context(), profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	next, err := s.reducer.Apply(st, a)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	if err := s.store.Save(r.Context(), profile, &next); err != nil {
		s.writeError(w, r, err)
		return
	}

	if status == http.StatusCreated {
		writeJSON(w, status, createdResponse{ID: next.Layout[len(next.Layout)-1].ID, Layout: next.Layout})
		return
	}
	writeJSON(w, status, layoutOf(next, nil))
}

func (s *Server) handleBeginInteraction(w http.ResponseWriter, r *http.Request) {
	profile := profileFrom(r)
	var req interactionRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}
	kind, err := dashboard.ParseInteractionKind(req.Kind)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if sess := s.sessionFor(profile); sess != nil {
		s.writeError(w, r, errors.New(errors.ErrCodeInteractionActive, "interaction %s is already open", sess.id))
		return
	}
	st, err := s.load(r.Context(), profile)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	st = s.reducer.Reduce(st, dashboard.SetEditMode{On: true})

	var begin dashboard.Action = dashboard.BeginDrag{ID: req.ItemID}
	if kind == dashboard.Resize {
		begin = dashboard.BeginResize{ID: req.ItemID}
	}
	st, err = s.reducer.Apply(st, begin)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	sess := &session{id: s.newID(), profile: profile, state: st, started: s.now()}
	s.sessions[sess.id] = sess
	observability.Interaction().OnInteractionStart(r.Context(), profile, kind.String(), req.ItemID)

	writeJSON(w, http.StatusCreated, sess.describe())
}

func (s *Server) handlePreview(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if err := decode(r, &req); err != nil {
		s.writeError(w, r, err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var a dashboard.Action = dashboard.DragTo{X: req.X, Y: req.Y}
	if sess.state.Interaction.Kind == dashboard.Resize {
		a = dashboard.ResizeTo{W: req.W, H: req.H}
	}
	next, err := s.reducer.Apply(sess.state, a)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	sess.state = next

	writeJSON(w, http.StatusOK, previewResponse{
		Layout:  next.DisplayLayout(),
		Outcome: next.Interaction.Outcome.String(),
	})
}

func (s *Server) handleCommit(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	in := sess.state.Interaction
	var end dashboard.Action = dashboard.EndDrag{}
	if in.Kind == dashboard.Resize {
		end = dashboard.EndResize{}
	}
	next := s.reducer.Reduce(sess.state, end)
	if err := s.store.Save(r.Context(), sess.profile, &next); err != nil {
		s.writeError(w, r, err)
		return
	}
	delete(s.sessions, sess.id)

	outcome := grid.OutcomeNoop
	if in.Proposal != nil {
		outcome = in.Outcome
	}
	observability.Interaction().OnInteractionCommit(r.Context(), sess.profile, in.Kind.String(), in.ItemID,
		outcome.String(), s.now().Sub(sess.started))

	writeJSON(w, http.StatusOK, layoutOf(next, nil))
}

func (s *Server) handleCancel(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, err := s.session(r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	delete(s.sessions, sess.id)

	in := sess.state.Interaction
	observability.Interaction().OnInteractionCancel(r.Context(), sess.profile, in.Kind.String(), in.ItemID,
		s.now().Sub(sess.started))

	w.WriteHeader(http.StatusNoContent)
}

// =============================================================================
// Helpers
// =============================================================================

// load returns the saved profile, or an empty one on the server grid.
// Layout problems in stored data are logged, not rejected.
func (s *Server) load(ctx context.Context, profile string) (dashboard.State, error) {
	st, err := store.LoadOrNew(ctx, s.store, profile, s.grid)
	if err != nil {
		return st, err
	}
	if err := grid.Validate(st.Layout, st.Grid.Cols); err != nil {
		s.logger.Warn("stored layout is inconsistent", "profile", profile, "err", errors.UserMessage(err))
	}
	return st, nil
}

// session finds the interaction named in the URL. Callers hold s.mu.
func (s *Server) session(r *http.Request) (*session, error) {
	iid := chi.URLParam(r, "iid")
	sess, ok := s.sessions[iid]
	if !ok || sess.profile != profileFrom(r) {
		return nil, errors.New(errors.ErrCodeInteractionNotFound, "no interaction %q", iid)
	}
	return sess, nil
}

// sessionFor returns the open interaction of profile. Callers hold s.mu.
func (s *Server) sessionFor(profile string) *session {
	for _, sess := range s.sessions {
		if sess.profile == profile {
			return sess
		}
	}
	return nil
}

func (sess *session) describe() *interactionResponse {
	in := sess.state.Interaction
	return &interactionResponse{ID: sess.id, Kind: in.Kind.String(), ItemID: in.ItemID}
}

func layoutOf(st dashboard.State, sess *session) layoutResponse {
	resp := layoutResponse{
		Grid:      st.Grid,
		Layout:    st.DisplayLayout(),
		Shortcuts: st.Shortcuts,
		Widgets:   st.Widgets,
	}
	if resp.Layout == nil {
		resp.Layout = grid.Layout{}
	}
	if sess != nil {
		resp.Interaction = sess.describe()
	}
	return resp
}
