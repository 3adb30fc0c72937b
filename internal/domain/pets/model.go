package pets

import "time"

const (
	// Happiness y Hunger viven siempre en [0, 100].
	statMin = 0
	statMax = 100
)

// Pet representa una mascota virtual con estado acotado.
// OwnerUserID vacío = mascota sin dueño registrado.
type Pet struct {
	ID          string
	OwnerUserID string

	Name    string
	Species string // expuesto como pet_type en JSON

	Age       int // sin tope superior; asimetría intencional del modelo
	Happiness int
	Hunger    int

	CreatedAt       time.Time
	LastInteraction time.Time
}

// Feed reduce el hambre. El resultado queda clampeado a [0,100] sea cual
// sea el amount.
func (p *Pet) Feed(amount int, now time.Time) {
	p.Hunger = clampStat(p.Hunger - amount)
	p.LastInteraction = now
}

// Play sube felicidad y cobra la mitad del tiempo en hambre (división entera).
func (p *Pet) Play(duration int, now time.Time) {
	p.Happiness = clampStat(p.Happiness + duration)
	p.Hunger = clampStat(p.Hunger + duration/2)
	p.LastInteraction = now
}

// IncrementAge envejece la mascota en uno.
func (p *Pet) IncrementAge() {
	p.Age++
}

// IsOwnedBy reporta si la mascota tiene dueño y es ese usuario.
func (p *Pet) IsOwnedBy(userID string) bool {
	return p.OwnerUserID != "" && p.OwnerUserID == userID
}

func clampStat(v int) int {
	if v < statMin {
		return statMin
	}
	if v > statMax {
		return statMax
	}
	return v
}
