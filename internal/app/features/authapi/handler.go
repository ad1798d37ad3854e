package authapi

import (
	"context"
	"net/http"

	"github.com/dalemusser/scrimhub/internal/app/store/users"
	"github.com/dalemusser/scrimhub/internal/app/system/auth"
	"github.com/dalemusser/scrimhub/internal/app/system/httpjson"
	"github.com/dalemusser/scrimhub/internal/app/system/inputval"
	"github.com/dalemusser/scrimhub/internal/app/system/timeouts"
	"github.com/dalemusser/scrimhub/internal/domain/models"
	"github.com/dalemusser/scrimhub/internal/domain/valorant"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 12

// Handler serves registration and login.
type Handler struct {
	users  *userstore.Store
	tokens *auth.TokenManager
	log    *zap.Logger
}

// NewHandler creates the auth handler.
func NewHandler(users *userstore.Store, tokens *auth.TokenManager, logger *zap.Logger) *Handler {
	return &Handler{users: users, tokens: tokens, log: logger}
}

// userSummary is the user payload returned alongside a fresh token.
type userSummary struct {
	UserID   string  `json:"user_id"`
	Username string  `json:"username"`
	Email    string  `json:"email"`
	Tier     string  `json:"tier"`
	Rank     string  `json:"rank"`
	TeamID   *string `json:"team_id"`
}

type tokenResponse struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	User        userSummary `json:"user"`
}

func summarize(u *models.User) userSummary {
	return userSummary{
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
		Tier:     u.Tier,
		Rank:     u.Rank,
		TeamID:   u.TeamID,
	}
}

type registerRequest struct {
	Username         string `json:"username"`
	Email            string `json:"email"`
	Password         string `json:"password"`
	ValorantUsername string `json:"valorant_username"`
	ValorantTag      string `json:"valorant_tag"`
}

// ServeRegister handles POST /api/auth/register.
//
// New users start at the public tier with the default rank and no team.
// Duplicate email and duplicate username are reported as distinct 400s,
// email checked first.
func (h *Handler) ServeRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	if !inputval.IsValidEmail(req.Email) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid email address")
		return
	}
	if !inputval.IsValidUsername(req.Username) {
		httpjson.Error(w, http.StatusBadRequest, "Invalid username")
		return
	}
	if !inputval.IsValidPassword(req.Password) {
		httpjson.Error(w, http.StatusBadRequest, "Password too short")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		h.log.Error("register: password hash failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.users.Create(ctx, models.User{
		UserID:           uuid.NewString(),
		Username:         req.Username,
		Email:            req.Email,
		PasswordHash:     string(hash),
		ValorantUsername: req.ValorantUsername,
		ValorantTag:      req.ValorantTag,
		Tier:             "public",
		Rank:             valorant.DefaultRank(),
		TeamID:           nil,
		IsAdmin:          false,
	})
	switch err {
	case nil:
	case userstore.ErrDuplicateEmail:
		httpjson.Error(w, http.StatusBadRequest, "Email already registered")
		return
	case userstore.ErrDuplicateUsername:
		httpjson.Error(w, http.StatusBadRequest, "Username already taken")
		return
	default:
		h.log.Error("register: create user failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	token, err := h.tokens.Issue(user.UserID)
	if err != nil {
		h.log.Error("register: token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Registration failed")
		return
	}

	h.log.Info("user registered",
		zap.String("user_id", user.UserID),
		zap.String("username", user.Username))

	httpjson.Respond(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        summarize(&user),
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ServeLogin handles POST /api/auth/login.
//
// A missing account and a wrong password produce the same 401 so the
// response does not reveal which check failed.
func (h *Handler) ServeLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if !httpjson.Decode(w, r, &req) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	user, err := h.users.GetByEmail(ctx, req.Email)
	if err != nil {
		if err != userstore.ErrNotFound {
			h.log.Error("login: lookup failed", zap.Error(err))
		}
		// Burn a comparison anyway so both failure paths cost the same.
		_ = bcrypt.CompareHashAndPassword([]byte("$2a$12$invalidinvalidinvalidinvalidinvalidinvalidinvalidinval"), []byte(req.Password))
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httpjson.Error(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := h.tokens.Issue(user.UserID)
	if err != nil {
		h.log.Error("login: token issue failed", zap.Error(err))
		httpjson.Error(w, http.StatusInternalServerError, "Login failed")
		return
	}

	httpjson.Respond(w, http.StatusOK, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        summarize(user),
	})
}
