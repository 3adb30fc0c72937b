package interactions

import (
	"context"
	"errors"
	"testing"
	"time"
)

type testRepo struct {
	byID map[string]Interaction
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Interaction{}}
}

func (r *testRepo) Create(ctx context.Context, it Interaction) error {
	if it.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[it.ID] = it
	return nil
}

func (r *testRepo) ListByPet(ctx context.Context, petID string) ([]Interaction, error) {
	out := make([]Interaction, 0)
	for _, it := range r.byID {
		if it.PetID == petID {
			out = append(out, it)
		}
	}
	return out, nil
}

func (r *testRepo) ListRecent(ctx context.Context, limit int) ([]Interaction, error) {
	out := make([]Interaction, 0)
	for _, it := range r.byID {
		out = append(out, it)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func TestService_Create_SetsFields(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	now := time.Date(2026, 3, 1, 16, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	it, err := svc.Create(context.Background(), "pet-1", "alice", KindFeed, 25)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if it.ID == "" {
		t.Fatalf("expected generated id")
	}
	if it.PetID != "pet-1" || it.ActorUserID != "alice" || it.Kind != KindFeed || it.PointsChange != 25 {
		t.Fatalf("unexpected interaction %#v", it)
	}
	if !it.RecordedAt.Equal(now) {
		t.Fatalf("expected RecordedAt = now")
	}
}

func TestService_Create_RejectsUnknownKind(t *testing.T) {
	svc := NewService(newTestRepo())

	if _, err := svc.Create(context.Background(), "pet-1", "alice", Kind("bathe"), 1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for unknown kind, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "", "alice", KindFeed, 1); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for empty pet id, got %v", err)
	}
}

func TestService_Record_BestEffort(t *testing.T) {
	// Record no propaga errores: un kind inválido simplemente no se guarda.
	repo := newTestRepo()
	svc := NewService(repo)

	svc.Record(context.Background(), "pet-1", "alice", "feed", 10)
	svc.Record(context.Background(), "pet-1", "alice", "bathe", 10)

	items, err := svc.ListByPet(context.Background(), "pet-1")
	if err != nil {
		t.Fatalf("ListByPet error: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 stored interaction, got %d", len(items))
	}
}

func TestService_ListRecent_DefaultLimit(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo)

	for i := 0; i < 15; i++ {
		if _, err := svc.Create(context.Background(), "pet-1", "", KindPlay, i); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	items, err := svc.ListRecent(context.Background(), 0)
	if err != nil {
		t.Fatalf("ListRecent error: %v", err)
	}
	if len(items) != 10 {
		t.Fatalf("expected default limit 10, got %d", len(items))
	}
}
