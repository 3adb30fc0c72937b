package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"tamagotchi-api/internal/domain/pets"
)

const petColumns = `
	id, owner_user_id,
	name, species,
	age, happiness, hunger,
	created_at, last_interaction
`

type PetsRepo struct {
	db *sql.DB
}

func NewPetsRepo(db *sql.DB) *PetsRepo {
	return &PetsRepo{db: db}
}

func (r *PetsRepo) Create(ctx context.Context, p pets.Pet) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pets (`+petColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)
	`,
		p.ID,
		p.OwnerUserID,
		p.Name,
		p.Species,
		p.Age,
		p.Happiness,
		p.Hunger,
		p.CreatedAt,
		p.LastInteraction,
	)
	return err
}

func (r *PetsRepo) GetByID(ctx context.Context, id string) (pets.Pet, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return pets.Pet{}, pets.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
	`, id)

	return scanPet(row)
}

func (r *PetsRepo) Delete(ctx context.Context, id string) (pets.Pet, error) {
	row := r.db.QueryRowContext(ctx, `
		DELETE FROM pets
		WHERE id = $1
		RETURNING `+petColumns+`
	`, id)

	return scanPet(row)
}

func (r *PetsRepo) ListAll(ctx context.Context) ([]pets.Pet, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		ORDER BY created_at ASC, id ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

func (r *PetsRepo) ListByOwner(ctx context.Context, ownerUserID string) ([]pets.Pet, error) {
	ownerUserID = strings.TrimSpace(ownerUserID)
	if ownerUserID == "" {
		return []pets.Pet{}, nil
	}

	rows, err := r.db.QueryContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE owner_user_id = $1
		ORDER BY created_at ASC, id ASC
	`, ownerUserID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectPets(rows)
}

// Mutate serializa el read-modify-write con SELECT ... FOR UPDATE
// dentro de una transacción.
func (r *PetsRepo) Mutate(ctx context.Context, id string, fn func(*pets.Pet) error) (pets.Pet, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return pets.Pet{}, err
	}
	defer func() { _ = tx.Rollback() }()

	row := tx.QueryRowContext(ctx, `
		SELECT `+petColumns+`
		FROM pets
		WHERE id = $1
		FOR UPDATE
	`, id)

	p, err := scanPet(row)
	if err != nil {
		return pets.Pet{}, err
	}

	if err := fn(&p); err != nil {
		return pets.Pet{}, err
	}

	if _, err := tx.ExecContext(ctx, `
		UPDATE pets
		SET
			name = $2,
			species = $3,
			age = $4,
			happiness = $5,
			hunger = $6,
			last_interaction = $7
		WHERE id = $1
	`,
		p.ID,
		p.Name,
		p.Species,
		p.Age,
		p.Happiness,
		p.Hunger,
		p.LastInteraction,
	); err != nil {
		return pets.Pet{}, err
	}

	if err := tx.Commit(); err != nil {
		return pets.Pet{}, err
	}
	return p, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPet(row rowScanner) (pets.Pet, error) {
	var p pets.Pet
	if err := row.Scan(
		&p.ID,
		&p.OwnerUserID,
		&p.Name,
		&p.Species,
		&p.Age,
		&p.Happiness,
		&p.Hunger,
		&p.CreatedAt,
		&p.LastInteraction,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return pets.Pet{}, pets.ErrNotFound
		}
		return pets.Pet{}, err
	}
	return p, nil
}

func collectPets(rows *sql.Rows) ([]pets.Pet, error) {
	out := make([]pets.Pet, 0)
	for rows.Next() {
		p, err := scanPet(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
