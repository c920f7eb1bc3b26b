package postgres

import (
	"context"
	"database/sql"
	"errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type gameRepository struct {
	db *sql.DB
}

func NewGameRepository(db *sql.DB) repository.GameRepository {
	return &gameRepository{db: db}
}

func (r *gameRepository) Create(ctx context.Context, g *domain.Game) error {
	query := `INSERT INTO games (name, image, stock_total, price_per_day) VALUES ($1, $2, $3, $4) RETURNING id`
	return r.db.QueryRowContext(ctx, query, g.Name, nullString(g.Image), g.StockTotal, g.PricePerDay).Scan(&g.ID)
}

func (r *gameRepository) GetByID(ctx context.Context, id int64) (*domain.Game, error) {
	query := `SELECT id, name, image, stock_total, price_per_day FROM games WHERE id = $1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, id))
}

func (r *gameRepository) GetByName(ctx context.Context, name string) (*domain.Game, error) {
	query := `SELECT id, name, image, stock_total, price_per_day FROM games WHERE name = $1`
	return r.scanGame(r.db.QueryRowContext(ctx, query, name))
}

func (r *gameRepository) List(ctx context.Context) ([]domain.Game, error) {
	query := `SELECT id, name, image, stock_total, price_per_day FROM games ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var games []domain.Game
	for rows.Next() {
		var g domain.Game
		var image sql.NullString
		if err := rows.Scan(&g.ID, &g.Name, &image, &g.StockTotal, &g.PricePerDay); err != nil {
			return nil, err
		}
		g.Image = image.String
		games = append(games, g)
	}
	return games, rows.Err()
}

func (r *gameRepository) scanGame(row *sql.Row) (*domain.Game, error) {
	g := &domain.Game{}
	var image sql.NullString
	err := row.Scan(&g.ID, &g.Name, &image, &g.StockTotal, &g.PricePerDay)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrGameNotFound
	}
	if err != nil {
		return nil, err
	}
	g.Image = image.String
	return g, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
