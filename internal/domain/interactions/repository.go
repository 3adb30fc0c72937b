package interactions

import "context"

type Repository interface {
	Create(ctx context.Context, it Interaction) error

	// ListByPet devuelve el historial de una mascota, más reciente primero.
	ListByPet(ctx context.Context, petID string) ([]Interaction, error)

	// ListRecent devuelve las últimas interacciones de todas las mascotas.
	ListRecent(ctx context.Context, limit int) ([]Interaction, error)
}
