package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dscvit/dscv/pkg/logger"
	"github.com/dscvit/dscv/pkg/session"
	"github.com/dscvit/dscv/pkg/users"
)

const maxBodyBytes = 64 << 10

// userView is the public shape of a user; the password never leaves the server.
type userView struct {
	ID          string  `json:"id"`
	Username    *string `json:"username"`
	Activated   *bool   `json:"activated"`
	HasPassword bool    `json:"has_password"`
	Anonymous   bool    `json:"anonymous"`
}

func viewOf(u users.User) userView {
	return userView{
		ID:          u.ID,
		Username:    u.Username,
		Activated:   u.Activated,
		HasPassword: u.Password != nil,
		Anonymous:   u.IsAnonymous(),
	}
}

// updateUserRequest replaces every profile field; omitted fields become null.
type updateUserRequest struct {
	Username  *string `json:"username"`
	Password  *string `json:"password"`
	Activated *bool   `json:"activated"`
}

// UsersHandler serves the current session's user record.
type UsersHandler struct {
	store  users.Storage
	logger *slog.Logger
}

// NewUsersHandler creates a UsersHandler. A nil logger discards.
func NewUsersHandler(store users.Storage, log *slog.Logger) *UsersHandler {
	if log == nil {
		log = logger.Discard()
	}
	return &UsersHandler{store: store, logger: log.With(logger.Component("api"))}
}

// Routes registers the /users endpoints on r.
func (h *UsersHandler) Routes(r chi.Router) {
	r.Post("/me", h.Create)
	r.Get("/me", h.Get)
	r.Put("/me", h.Update)
}

// Create makes sure the session has a user row: 201 when it was inserted,
// 200 when it already existed.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := session.MustIDFromContext(ctx)

	created, err := users.EnsureAnonymousIn(ctx, h.store, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	u, err := h.store.Find(ctx, id)
	if err != nil {
		h.fail(w, r, err)
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
		h.logger.InfoContext(ctx, "anonymous user created", logger.UserID(id))
	}
	writeJSON(w, status, viewOf(u))
}

// Get returns the session's user, 404 before Create.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.store.Find(r.Context(), session.MustIDFromContext(r.Context()))
	if err != nil {
		h.fail(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, viewOf(u))
}

// Update replaces the session user's profile fields, 404 before Create.
func (h *UsersHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	id := session.MustIDFromContext(ctx)

	var req updateUserRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, errTypeBadRequest, "invalid JSON body")
		return
	}

	u, err := h.store.Update(ctx, users.User{
		ID:        id,
		Username:  req.Username,
		Password:  req.Password,
		Activated: req.Activated,
	})
	if err != nil {
		h.fail(w, r, err)
		return
	}

	h.logger.InfoContext(ctx, "user updated", logger.UserID(id))
	writeJSON(w, http.StatusOK, viewOf(u))
}

func (h *UsersHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, users.ErrNotFound) {
		writeError(w, http.StatusNotFound, errTypeNotFound, "user not found, create it first")
		return
	}

	h.logger.ErrorContext(r.Context(), "user store failed", logger.Error(err))
	writeError(w, http.StatusInternalServerError, errTypeInternal, "internal error")
}
