package pets

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"tamagotchi-api/internal/middleware"
)

const (
	defaultFeedAmount = 10
	defaultPlayTime   = 10
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Lecturas públicas
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		// Mutaciones: requieren identidad
		pr.Post("/", createPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
		pr.Post("/{petID}/feed", feedPetHandler(svc))
		pr.Post("/{petID}/play", playPetHandler(svc))
		pr.Post("/{petID}/age", agePetHandler(svc))
	})

	// Mascotas del usuario autenticado
	r.Get("/user/pets", listOwnPetsHandler(svc))
}

type createPetRequest struct {
	Name    string `json:"name"`
	Species string `json:"pet_type"`

	// Opcionales; ausentes => defaults (age 0, happiness 100, hunger 0)
	Age       *int `json:"age"`
	Happiness *int `json:"happiness"`
	Hunger    *int `json:"hunger"`
}

type updatePetRequest struct {
	// Punteros para update parcial: nil = no tocar.
	Name      *string `json:"name"`
	Species   *string `json:"pet_type"`
	Age       *int    `json:"age"`
	Happiness *int    `json:"happiness"`
	Hunger    *int    `json:"hunger"`
}

type feedPetRequest struct {
	Amount *int `json:"amount"` // default 10
}

type playPetRequest struct {
	Time *int `json:"time"` // default 10
}

type petResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Species         string    `json:"pet_type"`
	Age             int       `json:"age"`
	Happiness       int       `json:"happiness"`
	Hunger          int       `json:"hunger"`
	CreatedAt       time.Time `json:"created_at"`
	LastInteraction time.Time `json:"last_interaction"`
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req createPetRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), claims.UserID, CreateInput{
			Name:      req.Name,
			Species:   req.Species,
			Age:       req.Age,
			Happiness: req.Happiness,
			Hunger:    req.Hunger,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, toPetResponse(p))
	}
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.ListAll(r.Context())
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}
		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			writeServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req updatePetRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), claims.UserID, UpdateInput{
			Name:      req.Name,
			Species:   req.Species,
			Age:       req.Age,
			Happiness: req.Happiness,
			Hunger:    req.Hunger,
		})
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		p, err := svc.Delete(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]string{
			"message": fmt.Sprintf("Pet %s deleted successfully", p.Name),
		})
	}
}

func feedPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req feedPetRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		amount := defaultFeedAmount
		if req.Amount != nil {
			amount = *req.Amount
		}

		p, err := svc.Feed(r.Context(), chi.URLParam(r, "petID"), claims.UserID, amount)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func playPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		var req playPetRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}

		duration := defaultPlayTime
		if req.Time != nil {
			duration = *req.Time
		}

		p, err := svc.Play(r.Context(), chi.URLParam(r, "petID"), claims.UserID, duration)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func agePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		p, err := svc.IncrementAge(r.Context(), chi.URLParam(r, "petID"), claims.UserID)
		if err != nil {
			writeServiceError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, toPetResponse(p))
	}
}

func listOwnPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.GetClaims(r.Context())
		if !ok || strings.TrimSpace(claims.UserID) == "" {
			writeError(w, http.StatusUnauthorized, "authentication required")
			return
		}

		items, err := svc.ListByOwner(r.Context(), claims.UserID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		writeJSON(w, http.StatusOK, toPetResponses(items))
	}
}

func toPetResponse(p Pet) petResponse {
	return petResponse{
		ID:              p.ID,
		Name:            p.Name,
		Species:         p.Species,
		Age:             p.Age,
		Happiness:       p.Happiness,
		Hunger:          p.Hunger,
		CreatedAt:       p.CreatedAt,
		LastInteraction: p.LastInteraction,
	}
}

func toPetResponses(items []Pet) []petResponse {
	out := make([]petResponse, 0, len(items))
	for _, p := range items {
		out = append(out, toPetResponse(p))
	}
	return out
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrInvalidInput):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, ErrNotFound):
		writeError(w, http.StatusNotFound, "Pet not found")
	case errors.Is(err, ErrForbidden):
		writeError(w, http.StatusForbidden, "Unauthorized access")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// decodeBody tolera body vacío (endpoints con campos todos opcionales).
func decodeBody(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == io.EOF {
		return nil
	}
	return err
}

// writeJSON/writeError se duplican adrede en los handlers de cada módulo
// para no crear helpers compartidos demasiado pronto.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
