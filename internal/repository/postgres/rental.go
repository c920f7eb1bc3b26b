package postgres

import (
	"context"
	"database/sql"
	"errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

// Create runs lock-game-row, count-open-rentals and insert in one transaction.
// The row lock serializes concurrent opens for the same game, so the count
// cannot go stale between the check and the insert.
func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental, stockTotal int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	var gameID int64
	err = tx.QueryRowContext(ctx, `SELECT id FROM games WHERE id = $1 FOR UPDATE`, rt.GameID).Scan(&gameID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrGameNotFound
	}
	if err != nil {
		return err
	}

	var open int32
	err = tx.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE game_id = $1 AND return_date IS NULL`, rt.GameID).Scan(&open)
	if err != nil {
		return err
	}
	if open >= stockTotal {
		return domain.ErrGameOutOfStock
	}

	query := `INSERT INTO rentals (customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id`
	err = tx.QueryRowContext(ctx, query, rt.CustomerID, rt.GameID, rt.RentDate, rt.DaysRented, rt.ReturnDate, rt.OriginalPrice, rt.DelayFee).Scan(&rt.ID)
	if err != nil {
		return err
	}
	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int64) (*domain.Rental, error) {
	rt := &domain.Rental{}
	var returnDate sql.NullString
	query := `SELECT id, customer_id, game_id, rent_date, days_rented, return_date, original_price, delay_fee FROM rentals WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate, &rt.DaysRented, &returnDate, &rt.OriginalPrice, &rt.DelayFee)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRentalNotFound
	}
	if err != nil {
		return nil, err
	}
	if returnDate.Valid {
		rt.ReturnDate = &returnDate.String
	}
	return rt, nil
}

func (r *rentalRepository) Update(ctx context.Context, rt *domain.Rental) error {
	query := `UPDATE rentals SET return_date = $1, delay_fee = $2 WHERE id = $3`
	_, err := r.db.ExecContext(ctx, query, rt.ReturnDate, rt.DelayFee, rt.ID)
	return err
}

func (r *rentalRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM rentals WHERE id = $1`, id)
	return err
}

// List returns all rentals joined with their customer and game.
func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	query := `SELECT r.id, r.customer_id, r.game_id, r.rent_date, r.days_rented, r.return_date, r.original_price, r.delay_fee,
	                 c.id, c.name, c.phone, c.cpf,
	                 g.id, g.name, g.image, g.stock_total, g.price_per_day
	          FROM rentals r
	          JOIN customers c ON c.id = r.customer_id
	          JOIN games g ON g.id = r.game_id
	          ORDER BY r.id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		var returnDate sql.NullString
		var c domain.Customer
		var g domain.Game
		var image sql.NullString
		err := rows.Scan(&rt.ID, &rt.CustomerID, &rt.GameID, &rt.RentDate, &rt.DaysRented, &returnDate, &rt.OriginalPrice, &rt.DelayFee,
			&c.ID, &c.Name, &c.Phone, &c.CPF,
			&g.ID, &g.Name, &image, &g.StockTotal, &g.PricePerDay)
		if err != nil {
			return nil, err
		}
		if returnDate.Valid {
			rt.ReturnDate = &returnDate.String
		}
		g.Image = image.String
		rt.Customer = &c
		rt.Game = &g
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) CountOpenByGame(ctx context.Context, gameID int64) (int32, error) {
	var count int32
	query := `SELECT count(*) FROM rentals WHERE game_id = $1 AND return_date IS NULL`
	err := r.db.QueryRowContext(ctx, query, gameID).Scan(&count)
	return count, err
}
