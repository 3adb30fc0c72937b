package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"tamagotchi-api/internal/domain/interactions"
)

type interactionRepo struct {
	mu   sync.RWMutex
	byID map[string]interactions.Interaction
}

func NewInteractionRepo() interactions.Repository {
	return &interactionRepo{
		byID: make(map[string]interactions.Interaction),
	}
}

func (r *interactionRepo) Create(ctx context.Context, it interactions.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(it.ID) == "" {
		return errors.New("interaction id required")
	}
	if _, exists := r.byID[it.ID]; exists {
		return errors.New("interaction already exists")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *interactionRepo) ListByPet(ctx context.Context, petID string) ([]interactions.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]interactions.Interaction, 0)
	for _, it := range r.byID {
		if it.PetID == petID {
			out = append(out, it)
		}
	}

	sortByRecordedDesc(out)
	return out, nil
}

func (r *interactionRepo) ListRecent(ctx context.Context, limit int) ([]interactions.Interaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]interactions.Interaction, 0, len(r.byID))
	for _, it := range r.byID {
		out = append(out, it)
	}

	sortByRecordedDesc(out)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Más reciente primero; desempate por ID para salida estable.
func sortByRecordedDesc(out []interactions.Interaction) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].RecordedAt.Equal(out[j].RecordedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].RecordedAt.After(out[j].RecordedAt)
	})
}
