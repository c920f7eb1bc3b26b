package repository

import (
	"context"

	"boardcamp-backend/internal/domain"
)

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	GetByCPF(ctx context.Context, cpf string) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
}

type GameRepository interface {
	Create(ctx context.Context, game *domain.Game) error
	GetByID(ctx context.Context, id int64) (*domain.Game, error)
	GetByName(ctx context.Context, name string) (*domain.Game, error)
	List(ctx context.Context) ([]domain.Game, error)
}

type RentalRepository interface {
	// Create inserts the rental, serialized against concurrent inserts for the
	// same game. It fails with domain.ErrGameOutOfStock when the game already
	// has stockTotal open rentals.
	Create(ctx context.Context, rental *domain.Rental, stockTotal int32) error
	GetByID(ctx context.Context, id int64) (*domain.Rental, error)
	Update(ctx context.Context, rental *domain.Rental) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Rental, error)
	CountOpenByGame(ctx context.Context, gameID int64) (int32, error)
}
