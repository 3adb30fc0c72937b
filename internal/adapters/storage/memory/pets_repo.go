package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"tamagotchi-api/internal/domain/pets"
)

// petRepo guarda las mascotas en memoria: mapa por id más un índice de
// ownership (userID -> set de petIDs). Lock grueso sobre todo el repo;
// alcanza para la carga esperada y nunca se sostiene sobre I/O.
type petRepo struct {
	mu      sync.RWMutex
	byID    map[string]pets.Pet
	byOwner map[string]map[string]struct{}
}

func NewPetRepo() pets.Repository {
	return &petRepo{
		byID:    make(map[string]pets.Pet),
		byOwner: make(map[string]map[string]struct{}),
	}
}

func (r *petRepo) Create(ctx context.Context, p pets.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(p.ID) == "" {
		return errors.New("pet id required")
	}
	if _, exists := r.byID[p.ID]; exists {
		return errors.New("pet already exists")
	}

	r.byID[p.ID] = p
	if p.OwnerUserID != "" {
		set, ok := r.byOwner[p.OwnerUserID]
		if !ok {
			set = make(map[string]struct{})
			r.byOwner[p.OwnerUserID] = set
		}
		set[p.ID] = struct{}{}
	}
	return nil
}

func (r *petRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}
	return p, nil
}

func (r *petRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	delete(r.byID, id)
	if p.OwnerUserID != "" {
		if set, ok := r.byOwner[p.OwnerUserID]; ok {
			delete(set, id)
			if len(set) == 0 {
				delete(r.byOwner, p.OwnerUserID)
			}
		}
	}
	return p, nil
}

func (r *petRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]pets.Pet, 0, len(r.byID))
	for _, p := range r.byID {
		out = append(out, p)
	}

	sortByCreated(out)
	return out, nil
}

func (r *petRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	// Owner desconocido => slice vacío, no error.
	out := make([]pets.Pet, 0)
	for id := range r.byOwner[ownerUserID] {
		if p, ok := r.byID[id]; ok {
			out = append(out, p)
		}
	}

	sortByCreated(out)
	return out, nil
}

// Mutate ejecuta fn con el write lock tomado: el read-modify-write sobre un
// mismo id queda serializado respecto a cualquier otra operación.
func (r *petRepo) Mutate(ctx context.Context, id string, fn func(*pets.Pet) error) (pets.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.byID[id]
	if !ok {
		return pets.Pet{}, pets.ErrNotFound
	}

	if err := fn(&p); err != nil {
		return pets.Pet{}, err
	}

	r.byID[id] = p
	return p, nil
}

// Orden estable por created_at asc (consistencia dentro de una llamada).
func sortByCreated(out []pets.Pet) {
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
}
