package users

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tamagotchi-api/internal/middleware"
)

// TokenIssuer firma un token para un usuario ya autenticado.
// Definido acá para que el módulo no dependa del adapter concreto.
type TokenIssuer interface {
	Issue(userID string) (string, error)
}

func RegisterRoutes(r chi.Router, svc *Service, tokens TokenIssuer) {
	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", registerHandler(svc, tokens))
		ar.Post("/login", loginHandler(svc, tokens))
		ar.Get("/me", meHandler(svc))
	})
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

type meResponse struct {
	Username  string    `json:"username"`
	CreatedAt time.Time `json:"created_at"`
}

func registerHandler(svc *Service, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Register(r.Context(), req.Username, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		tok, err := tokens.Issue(u.Username)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusCreated, tokenResponse{
			Message: "User registered successfully",
			Token:   tok,
		})
	}
}

func loginHandler(svc *Service, tokens TokenIssuer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		u, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		tok, err := tokens.Issue(u.Username)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, tokenResponse{
			Message: "Login successful",
			Token:   tok,
		})
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		u, err := svc.GetByUsername(r.Context(), claims.UserID)
		if err != nil {
			writeAuthError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, meResponse{
			Username:  u.Username,
			CreatedAt: u.CreatedAt,
		})
	}
}

func writeAuthError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "username and password are required")
	case errors.Is(err, ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username already exists")
	case errors.Is(err, ErrUserNotFound):
		writeError(w, http.StatusNotFound, "User not found")
	case errors.Is(err, ErrInvalidPassword):
		writeError(w, http.StatusUnauthorized, "Invalid password")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// writeJSON/writeError se duplican adrede entre módulos (ver handler de pets).
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
