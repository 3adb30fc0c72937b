package pets

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("pet not found")
	ErrForbidden    = errors.New("forbidden")
)

const (
	defaultHappiness = 100
	defaultHunger    = 0
)

// InteractionRecorder registra interacciones (feed/play/age) sin acoplar
// este módulo al de interactions. Se define acá para evitar ciclos de
// imports entre módulos (pets <-> interactions).
type InteractionRecorder interface {
	Record(ctx context.Context, petID, actorUserID, kind string, points int)
}

type Service struct {
	repo Repository
	rec  InteractionRecorder // puede ser nil
	now  func() time.Time
}

func NewService(repo Repository, rec InteractionRecorder) *Service {
	return &Service{
		repo: repo,
		rec:  rec,
		now:  time.Now,
	}
}

type CreateInput struct {
	Name    string
	Species string

	// Overrides opcionales: nil = default (age 0, happiness 100, hunger 0).
	Age       *int
	Happiness *int
	Hunger    *int
}

// Create construye la mascota y, si ownerUserID no es vacío, queda registrada
// bajo ese dueño. happiness/hunger se clampean a [0,100]; age negativo se
// lleva a 0 en creación (después no tiene tope).
func (s *Service) Create(ctx context.Context, ownerUserID string, in CreateInput) (Pet, error) {
	if strings.TrimSpace(in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if strings.TrimSpace(in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	age := 0
	if in.Age != nil && *in.Age > 0 {
		age = *in.Age
	}
	happiness := defaultHappiness
	if in.Happiness != nil {
		happiness = clampStat(*in.Happiness)
	}
	hunger := defaultHunger
	if in.Hunger != nil {
		hunger = clampStat(*in.Hunger)
	}

	now := s.now()
	p := Pet{
		ID:              uuid.NewString(),
		OwnerUserID:     strings.TrimSpace(ownerUserID),
		Name:            strings.TrimSpace(in.Name),
		Species:         strings.TrimSpace(in.Species),
		Age:             age,
		Happiness:       happiness,
		Hunger:          hunger,
		CreatedAt:       now,
		LastInteraction: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		return Pet{}, err
	}
	return p, nil
}

func (s *Service) GetByID(ctx context.Context, id string) (Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Pet{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

func (s *Service) ListAll(ctx context.Context) ([]Pet, error) {
	return s.repo.ListAll(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error) {
	return s.repo.ListByOwner(ctx, ownerUserID)
}

type UpdateInput struct {
	// Punteros para update parcial: nil = no tocar.
	Name      *string
	Species   *string
	Age       *int
	Happiness *int
	Hunger    *int
}

func (s *Service) Update(ctx context.Context, petID, callerUserID string, in UpdateInput) (Pet, error) {
	if in.Name != nil && strings.TrimSpace(*in.Name) == "" {
		return Pet{}, ErrInvalidInput
	}
	if in.Species != nil && strings.TrimSpace(*in.Species) == "" {
		return Pet{}, ErrInvalidInput
	}

	return s.mutate(ctx, petID, callerUserID, func(p *Pet) {
		if in.Name != nil {
			p.Name = strings.TrimSpace(*in.Name)
		}
		if in.Species != nil {
			p.Species = strings.TrimSpace(*in.Species)
		}
		if in.Age != nil {
			p.Age = *in.Age
			if p.Age < 0 {
				p.Age = 0
			}
		}
		if in.Happiness != nil {
			p.Happiness = clampStat(*in.Happiness)
		}
		if in.Hunger != nil {
			p.Hunger = clampStat(*in.Hunger)
		}
	})
}

// Delete aplica la misma política de autorización y remueve la mascota
// del store y del índice de ownership. Devuelve la mascota borrada.
func (s *Service) Delete(ctx context.Context, petID, callerUserID string) (Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Pet{}, ErrNotFound
	}

	// El dueño es inmutable post-creación, así que chequear antes de borrar
	// no abre carrera de autorización; el doble delete lo resuelve el repo
	// devolviendo ErrNotFound en la segunda llamada.
	p, err := s.repo.GetByID(ctx, petID)
	if err != nil {
		return Pet{}, err
	}
	if !authorized(p, callerUserID) {
		return Pet{}, ErrForbidden
	}

	return s.repo.Delete(ctx, petID)
}

func (s *Service) Feed(ctx context.Context, petID, callerUserID string, amount int) (Pet, error) {
	now := s.now()
	p, err := s.mutate(ctx, petID, callerUserID, func(p *Pet) {
		p.Feed(amount, now)
	})
	if err != nil {
		return Pet{}, err
	}
	s.record(ctx, p.ID, callerUserID, "feed", amount)
	return p, nil
}

func (s *Service) Play(ctx context.Context, petID, callerUserID string, duration int) (Pet, error) {
	now := s.now()
	p, err := s.mutate(ctx, petID, callerUserID, func(p *Pet) {
		p.Play(duration, now)
	})
	if err != nil {
		return Pet{}, err
	}
	s.record(ctx, p.ID, callerUserID, "play", duration)
	return p, nil
}

func (s *Service) IncrementAge(ctx context.Context, petID, callerUserID string) (Pet, error) {
	p, err := s.mutate(ctx, petID, callerUserID, func(p *Pet) {
		p.IncrementAge()
	})
	if err != nil {
		return Pet{}, err
	}
	s.record(ctx, p.ID, callerUserID, "age", 1)
	return p, nil
}

// mutate corre apply bajo el lock del repo, con la política de autorización
// adentro del critical section:
//   - mascota inexistente => ErrNotFound
//   - caller con user, mascota con dueño distinto => ErrForbidden
//   - mascota sin dueño => cualquier caller puede mutarla (default permisivo,
//     preservado a propósito del comportamiento original)
func (s *Service) mutate(ctx context.Context, petID, callerUserID string, apply func(*Pet)) (Pet, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return Pet{}, ErrNotFound
	}

	return s.repo.Mutate(ctx, petID, func(p *Pet) error {
		if !authorized(*p, callerUserID) {
			return ErrForbidden
		}
		apply(p)
		return nil
	})
}

func authorized(p Pet, callerUserID string) bool {
	if callerUserID == "" || p.OwnerUserID == "" {
		return true
	}
	return p.IsOwnedBy(callerUserID)
}

func (s *Service) record(ctx context.Context, petID, actorUserID, kind string, points int) {
	if s.rec == nil {
		return
	}
	s.rec.Record(ctx, petID, actorUserID, kind, points)
}
