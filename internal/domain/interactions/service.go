package interactions

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
)

const defaultRecentLimit = 10

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) Create(ctx context.Context, petID, actorUserID string, kind Kind, points int) (Interaction, error) {
	if strings.TrimSpace(petID) == "" {
		return Interaction{}, ErrInvalidInput
	}
	if !IsValidKind(kind) {
		return Interaction{}, ErrInvalidInput
	}

	it := Interaction{
		ID:           uuid.NewString(),
		PetID:        petID,
		ActorUserID:  strings.TrimSpace(actorUserID),
		Kind:         kind,
		PointsChange: points,
		RecordedAt:   s.now(),
	}

	if err := s.repo.Create(ctx, it); err != nil {
		return Interaction{}, err
	}
	return it, nil
}

// Record implementa pets.InteractionRecorder. El historial es best-effort:
// una falla al registrar no hace fallar el feed/play que ya se aplicó.
func (s *Service) Record(ctx context.Context, petID, actorUserID, kind string, points int) {
	_, _ = s.Create(ctx, petID, actorUserID, Kind(kind), points)
}

func (s *Service) ListByPet(ctx context.Context, petID string) ([]Interaction, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByPet(ctx, petID)
}

func (s *Service) ListRecent(ctx context.Context, limit int) ([]Interaction, error) {
	if limit <= 0 {
		limit = defaultRecentLimit
	}
	return s.repo.ListRecent(ctx, limit)
}
