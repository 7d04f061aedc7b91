package handlers

import (
	"errors"
	"net/http"

	"storyhub/internal/auth"
	"storyhub/internal/models"
	"storyhub/internal/store"
)

// Auth serves registration and login. Both respond with a bearer token and
// the user it belongs to.
type Auth struct {
	users  *store.UserStore
	tokens *auth.Tokens
}

func NewAuth(users *store.UserStore, tokens *auth.Tokens) *Auth {
	return &Auth{users: users, tokens: tokens}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Register handles POST /auth/register.
func (h *Auth) Register(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCredentials(req.Username, req.Password); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.users.Create(req.Username, req.Password)
	if errors.Is(err, store.ErrDuplicateUsername) {
		respondMessage(w, http.StatusBadRequest, "User already exists.")
		return
	}
	if err != nil {
		respondInternal(w, "create user failed", err)
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		respondInternal(w, "issue token failed", err)
		return
	}
	respondJSON(w, http.StatusCreated, authResponse{Token: token, User: user})
}

// Login handles POST /auth/login. Unknown usernames and wrong passwords get
// the same answer.
func (h *Auth) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if msg := validateCredentials(req.Username, req.Password); msg != "" {
		respondMessage(w, http.StatusBadRequest, msg)
		return
	}

	user, err := h.users.FindByUsername(req.Username)
	if err != nil {
		respondInternal(w, "find user failed", err)
		return
	}
	if user == nil || !h.users.CheckPassword(user, req.Password) {
		respondMessage(w, http.StatusBadRequest, "Invalid credentials.")
		return
	}

	token, err := h.tokens.Issue(user.ID, user.Username)
	if err != nil {
		respondInternal(w, "issue token failed", err)
		return
	}
	respondJSON(w, http.StatusOK, authResponse{Token: token, User: user})
}
