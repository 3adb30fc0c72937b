package pets

import "context"

type Repository interface {
	// Create nunca pisa un id existente.
	Create(ctx context.Context, p Pet) error
	GetByID(ctx context.Context, id string) (Pet, error)

	// Delete remueve y devuelve la mascota borrada (para el mensaje de confirmación).
	Delete(ctx context.Context, id string) (Pet, error)

	// ListAll devuelve un snapshot consistente; orden estable dentro de una llamada.
	ListAll(ctx context.Context) ([]Pet, error)

	// ListByOwner devuelve slice vacío (no error) para un owner desconocido.
	ListByOwner(ctx context.Context, ownerUserID string) ([]Pet, error)

	// Mutate ejecuta fn sobre la mascota bajo exclusión respecto a otras
	// operaciones sobre el mismo id, y persiste el resultado si fn no falla.
	// fn no debe bloquear: se ejecuta con el lock tomado.
	Mutate(ctx context.Context, id string, fn func(*Pet) error) (Pet, error)
}
