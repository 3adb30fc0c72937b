package postgres

import (
	"context"
	"database/sql"

	"tamagotchi-api/internal/domain/interactions"
)

const interactionColumns = `
	id, pet_id, actor_user_id,
	kind, points_change, recorded_at
`

type InteractionsRepo struct {
	db *sql.DB
}

func NewInteractionsRepo(db *sql.DB) *InteractionsRepo {
	return &InteractionsRepo{db: db}
}

func (r *InteractionsRepo) Create(ctx context.Context, it interactions.Interaction) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_interactions (`+interactionColumns+`)
		VALUES ($1,$2,$3,$4,$5,$6)
	`,
		it.ID,
		it.PetID,
		it.ActorUserID,
		string(it.Kind),
		it.PointsChange,
		it.RecordedAt,
	)
	return err
}

func (r *InteractionsRepo) ListByPet(ctx context.Context, petID string) ([]interactions.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+interactionColumns+`
		FROM pet_interactions
		WHERE pet_id = $1
		ORDER BY recorded_at DESC, id ASC
	`, petID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInteractions(rows)
}

func (r *InteractionsRepo) ListRecent(ctx context.Context, limit int) ([]interactions.Interaction, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+interactionColumns+`
		FROM pet_interactions
		ORDER BY recorded_at DESC, id ASC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectInteractions(rows)
}

func collectInteractions(rows *sql.Rows) ([]interactions.Interaction, error) {
	out := make([]interactions.Interaction, 0)
	for rows.Next() {
		var it interactions.Interaction
		var kind string
		if err := rows.Scan(
			&it.ID,
			&it.PetID,
			&it.ActorUserID,
			&kind,
			&it.PointsChange,
			&it.RecordedAt,
		); err != nil {
			return nil, err
		}
		it.Kind = interactions.Kind(kind)
		out = append(out, it)
	}
	return out, rows.Err()
}
