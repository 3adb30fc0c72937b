package interactions

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"tamagotchi-api/internal/domain/pets"
)

func RegisterRoutes(r chi.Router, svc *Service, petsSvc *pets.Service) {
	// Historial de una mascota (lectura pública, como el perfil)
	r.Get("/pets/{petID}/interactions", listByPetHandler(svc, petsSvc))

	// Últimas interacciones de todas las mascotas
	r.Get("/interactions/recent", listRecentHandler(svc, petsSvc))
}

type interactionResponse struct {
	ID           string    `json:"id"`
	PetID        string    `json:"pet_id"`
	Kind         Kind      `json:"interaction_type"`
	PointsChange int       `json:"points_change"`
	ActorUserID  string    `json:"actor_user_id,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

type recentInteractionResponse struct {
	interactionResponse
	PetName string `json:"pet_name"`
}

func listByPetHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		petID := chi.URLParam(r, "petID")

		// 404 si la mascota no existe, antes que devolver historial vacío
		if _, err := petsSvc.GetByID(r.Context(), petID); err != nil {
			writeError(w, http.StatusNotFound, "Pet not found")
			return
		}

		items, err := svc.ListByPet(r.Context(), petID)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]interactionResponse, 0, len(items))
		for _, it := range items {
			out = append(out, toInteractionResponse(it))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func listRecentHandler(svc *Service, petsSvc *pets.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				writeError(w, http.StatusBadRequest, "limit must be a non-negative integer")
				return
			}
			limit = n
		}

		items, err := svc.ListRecent(r.Context(), limit)
		if err != nil {
			writeError(w, http.StatusInternalServerError, "internal error")
			return
		}

		out := make([]recentInteractionResponse, 0, len(items))
		for _, it := range items {
			resp := recentInteractionResponse{interactionResponse: toInteractionResponse(it)}
			// tolera historial de mascotas ya borradas: pet_name queda vacío
			if p, err := petsSvc.GetByID(r.Context(), it.PetID); err == nil {
				resp.PetName = p.Name
			}
			out = append(out, resp)
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func toInteractionResponse(it Interaction) interactionResponse {
	return interactionResponse{
		ID:           it.ID,
		PetID:        it.PetID,
		Kind:         it.Kind,
		PointsChange: it.PointsChange,
		ActorUserID:  it.ActorUserID,
		CreatedAt:    it.RecordedAt,
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
