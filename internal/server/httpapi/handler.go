// Package httpapi exposes the gateway's HTTP surface: login, the token-gated
// data routes and the liveness probe.
package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/storserv/storserv/internal/common"
	"github.com/storserv/storserv/internal/logging"
	"github.com/storserv/storserv/internal/server/auth"
	"github.com/storserv/storserv/internal/server/keys"
	"github.com/storserv/storserv/internal/server/users"
)

type Handler struct {
	users  *users.Service
	keys   *keys.Service
	tokens *auth.Service
	logger logging.Logger
}

func NewHandler(us *users.Service, ks *keys.Service, ts *auth.Service, logger logging.Logger) *Handler {
	return &Handler{
		users:  us,
		keys:   ks,
		tokens: ts,
		logger: logger.With("module", "httpapi"),
	}
}

func (h *Handler) ping(w http.ResponseWriter, r *http.Request) {
	_, _ = w.Write([]byte("pong"))
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "unable to parse request body", codeBadRequest)
		return
	}
	if !r.PostForm.Has("username") || !r.PostForm.Has("password") {
		respondError(w, http.StatusBadRequest, "you must specify a username and a password", codeBadRequest)
		return
	}

	username := r.PostForm.Get("username")
	password := r.PostForm.Get("password")

	token, err := h.users.Login(r.Context(), username, password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			respondError(w, http.StatusUnauthorized, "invalid username or password", codeUnauthorized)
			return
		}
		h.logger.Error(r.Context(), "login failed", "username", username, "error", err)
		respondError(w, http.StatusInternalServerError, "internal error", codeUnknown)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"jwt": token})
}

// get serves both value reads and listings: a key ending in "/" (or the bare
// data root) is a listing request for the level below it.
func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	ns := namespaceFromContext(r.Context())
	key := chi.URLParam(r, "*")

	if key == "" || strings.HasSuffix(key, "/") {
		list, err := h.keys.List(r.Context(), ns, key)
		if err != nil {
			h.logger.Error(r.Context(), "list failed", "error", err)
			respondError(w, http.StatusBadGateway, fmt.Sprintf("could not list keys: %v", err), codeUnknown)
			return
		}
		respondJSON(w, http.StatusOK, map[string]any{"keys": list})
		return
	}

	value, err := h.keys.Read(r.Context(), ns, key)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondKeyError(w, http.StatusNotFound, fmt.Sprintf("key %s not found", key), codeKeyNotExist, key)
			return
		}
		h.logger.Error(r.Context(), "read failed", "error", err)
		respondError(w, http.StatusBadGateway, fmt.Sprintf("could not read key: %v", err), codeUnknown)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

// put upserts a key: no existence precondition, last write wins.
func (h *Handler) put(w http.ResponseWriter, r *http.Request) {
	ns := namespaceFromContext(r.Context())
	key := chi.URLParam(r, "*")
	value := formValue(r)

	if err := h.keys.Update(r.Context(), ns, key, value); err != nil {
		h.logger.Error(r.Context(), "update failed", "error", err)
		respondKeyError(w, http.StatusBadGateway, fmt.Sprintf("could not update key: %v", err), codeUnknown, key)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

// post creates a key and fails when it already exists.
func (h *Handler) post(w http.ResponseWriter, r *http.Request) {
	ns := namespaceFromContext(r.Context())
	key := chi.URLParam(r, "*")
	value := formValue(r)

	if err := h.keys.Create(r.Context(), ns, key, value); err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			respondError(w, http.StatusConflict, fmt.Sprintf("key %s already exists", key), codeKeyExists)
			return
		}
		h.logger.Error(r.Context(), "create failed", "error", err)
		respondKeyError(w, http.StatusBadGateway, fmt.Sprintf("could not create key: %v", err), codeUnknown, key)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"key": key, "value": value})
}

func (h *Handler) delete(w http.ResponseWriter, r *http.Request) {
	ns := namespaceFromContext(r.Context())
	key := chi.URLParam(r, "*")

	if err := h.keys.Delete(r.Context(), ns, key); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			respondKeyError(w, http.StatusNotFound, "key not found", codeKeyNotExist, key)
			return
		}
		h.logger.Error(r.Context(), "delete failed", "error", err)
		respondKeyError(w, http.StatusBadGateway, fmt.Sprintf("unable to remove key: %v", err), codeUnknown, key)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{"message": "deleted key", "key": key})
}

// formValue extracts the "value" form field, defaulting to the empty string.
func formValue(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}
	return r.PostForm.Get("value")
}
