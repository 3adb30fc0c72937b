package interactions

import "time"

// Kind es el tipo de interacción registrada contra una mascota.
type Kind string

const (
	KindFeed Kind = "feed"
	KindPlay Kind = "play"
	KindAge  Kind = "age"
)

var validKinds = map[Kind]struct{}{
	KindFeed: {},
	KindPlay: {},
	KindAge:  {},
}

func IsValidKind(k Kind) bool {
	_, ok := validKinds[k]
	return ok
}

// Interaction es una entrada del historial de una mascota.
// PointsChange guarda la magnitud de la acción (amount/time).
type Interaction struct {
	ID    string
	PetID string

	// ActorUserID puede ser vacío (acción anónima sobre mascota sin dueño).
	ActorUserID string

	Kind         Kind
	PointsChange int

	RecordedAt time.Time
}
