package service

import (
	"context"

	"boardcamp-backend/internal/domain"
)

type CustomerService interface {
	CreateCustomer(ctx context.Context, name, phone, cpf string) (*domain.Customer, error)
	GetCustomer(ctx context.Context, id int64) (*domain.Customer, error)
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
}

type GameService interface {
	CreateGame(ctx context.Context, name, image string, stockTotal, pricePerDay int32) (*domain.Game, error)
	GetGame(ctx context.Context, id int64) (*domain.Game, error)
	ListGames(ctx context.Context) ([]domain.Game, error)
}

// RentalService owns the rental lifecycle: a rental is opened against
// available stock, closed exactly once, and only deletable after it closed.
type RentalService interface {
	OpenRental(ctx context.Context, customerID, gameID int64, daysRented int32) (*domain.Rental, error)
	CloseRental(ctx context.Context, rentalID int64) (*domain.Rental, error)
	DeleteRental(ctx context.Context, rentalID int64) error
	ListRentals(ctx context.Context) ([]domain.Rental, error)
}

type EmailService interface {
	SendOverdueRentalsReport(ctx context.Context, to string, rentals []domain.Rental) error
}
