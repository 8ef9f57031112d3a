package httpapi

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jonwraymond/authops/engine"
)

// welcomeMessage greets unauthenticated callers at the root.
const welcomeMessage = "Welcome to the authops blog API"

// handler binds the engine's flows to HTTP endpoints.
type handler struct {
	engine *engine.Engine
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type identityResponse struct {
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type createPostRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// updatePostRequest uses pointers so absent fields are left
// unchanged.
type updatePostRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

type deleteResponse struct {
	ID      string `json:"id"`
	Deleted bool   `json:"deleted"`
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": welcomeMessage})
}

func (h *handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.engine.Register(r.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, identityResponse{
		Username:  id.Username,
		Role:      id.Role.String(),
		CreatedAt: id.CreatedAt,
	})
}

func (h *handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	grant, err := h.engine.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, grant)
}

func (h *handler) me(w http.ResponseWriter, r *http.Request) {
	tok, ok := bearerToken(r)
	if !ok {
		respondMissingToken(w)
		return
	}

	id, err := h.engine.WhoAmI(r.Context(), tok)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, identityResponse{
		Username:  id.Username,
		Role:      id.Role.String(),
		CreatedAt: id.CreatedAt,
	})
}

func (h *handler) listPosts(w http.ResponseWriter, r *http.Request) {
	tok, ok := bearerToken(r)
	if !ok {
		respondMissingToken(w)
		return
	}

	posts, err := h.engine.ListPosts(r.Context(), tok)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, posts)
}

func (h *handler) createPost(w http.ResponseWriter, r *http.Request) {
	tok, ok := bearerToken(r)
	if !ok {
		respondMissingToken(w)
		return
	}

	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.engine.CreatePost(r.Context(), tok, req.Title, req.Content)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, p)
}

func (h *handler) updatePost(w http.ResponseWriter, r *http.Request) {
	tok, ok := bearerToken(r)
	if !ok {
		respondMissingToken(w)
		return
	}

	var req updatePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	p, err := h.engine.UpdatePost(r.Context(), tok, chi.URLParam(r, "id"), req.Title, req.Content)
	if err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, p)
}

func (h *handler) deletePost(w http.ResponseWriter, r *http.Request) {
	tok, ok := bearerToken(r)
	if !ok {
		respondMissingToken(w)
		return
	}

	id := chi.URLParam(r, "id")
	if err := h.engine.DeletePost(r.Context(), tok, id); err != nil {
		respondDomainError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, deleteResponse{ID: id, Deleted: true})
}

// bearerToken extracts the token from the Authorization header.
// Returns false when the header is missing or not a bearer scheme.
func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	tok, found := strings.CutPrefix(header, "Bearer ")
	if !found || tok == "" {
		return "", false
	}
	return tok, true
}

func respondMissingToken(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	respondError(w, http.StatusUnauthorized, "missing bearer token")
}
