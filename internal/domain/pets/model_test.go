package pets

import (
	"testing"
	"time"
)

func TestPet_Feed_ReducesHungerAndClampsAtZero(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := Pet{Hunger: 50}
	p.Feed(20, now)
	if p.Hunger != 30 {
		t.Fatalf("expected hunger 30, got %d", p.Hunger)
	}
	if !p.LastInteraction.Equal(now) {
		t.Fatalf("expected LastInteraction updated")
	}

	// clamp: nunca baja de 0
	p.Feed(100, now)
	if p.Hunger != 0 {
		t.Fatalf("expected hunger clamped at 0, got %d", p.Hunger)
	}
}

func TestPet_Feed_Property_MaxZero(t *testing.T) {
	now := time.Now()
	for prev := 0; prev <= 100; prev += 25 {
		for amount := 0; amount <= 150; amount += 30 {
			p := Pet{Hunger: prev}
			p.Feed(amount, now)

			want := prev - amount
			if want < 0 {
				want = 0
			}
			if p.Hunger != want {
				t.Fatalf("feed(%d) from %d: expected %d, got %d", amount, prev, want, p.Hunger)
			}
		}
	}
}

func TestPet_Play_RaisesHappinessAndHalfHunger(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	p := Pet{Happiness: 40, Hunger: 10}
	p.Play(30, now)

	if p.Happiness != 70 {
		t.Fatalf("expected happiness 70, got %d", p.Happiness)
	}
	// división entera: 30/2 = 15
	if p.Hunger != 25 {
		t.Fatalf("expected hunger 25, got %d", p.Hunger)
	}
	if !p.LastInteraction.Equal(now) {
		t.Fatalf("expected LastInteraction updated")
	}
}

func TestPet_Play_ClampsBothStatsAt100(t *testing.T) {
	now := time.Now()

	p := Pet{Happiness: 95, Hunger: 99}
	p.Play(80, now)

	if p.Happiness != 100 {
		t.Fatalf("expected happiness clamped at 100, got %d", p.Happiness)
	}
	if p.Hunger != 100 {
		t.Fatalf("expected hunger clamped at 100, got %d", p.Hunger)
	}
}

func TestPet_Play_IntegerFloorDivision(t *testing.T) {
	now := time.Now()

	p := Pet{Happiness: 0, Hunger: 0}
	p.Play(7, now)

	if p.Hunger != 3 {
		t.Fatalf("expected hunger 3 (7/2 floor), got %d", p.Hunger)
	}
}

func TestPet_IncrementAge(t *testing.T) {
	p := Pet{Age: 2}
	p.IncrementAge()
	if p.Age != 3 {
		t.Fatalf("expected age 3, got %d", p.Age)
	}
}

func TestPet_IsOwnedBy(t *testing.T) {
	owned := Pet{OwnerUserID: "alice"}
	if !owned.IsOwnedBy("alice") {
		t.Fatalf("expected owned by alice")
	}
	if owned.IsOwnedBy("bob") {
		t.Fatalf("expected not owned by bob")
	}

	// mascota sin dueño no pertenece a nadie
	unowned := Pet{}
	if unowned.IsOwnedBy("") || unowned.IsOwnedBy("alice") {
		t.Fatalf("unowned pet should not report ownership")
	}
}
