package service

import (
	"context"
	"fmt"
	"time"

	"boardcamp-backend/internal/dependencies/clock"
	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	gameRepo     repository.GameRepository
	clock        clock.Clock
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	gameRepo repository.GameRepository,
	clk clock.Clock,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		gameRepo:     gameRepo,
		clock:        clk,
	}
}

func (s *rentalService) OpenRental(ctx context.Context, customerID, gameID int64, daysRented int32) (*domain.Rental, error) {
	// Duration is checked before any lookup: a bad duration is invalid input
	// even when the referenced customer or game does not exist.
	if daysRented <= 0 {
		return nil, domain.Invalid("days_rented must be greater than zero",
			domain.FieldViolation{Field: "days_rented", Reason: "must be a positive integer"})
	}

	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}
	game, err := s.gameRepo.GetByID(ctx, gameID)
	if err != nil {
		return nil, err
	}

	open, err := s.rentalRepo.CountOpenByGame(ctx, game.ID)
	if err != nil {
		return nil, err
	}
	if open >= game.StockTotal {
		return nil, domain.ErrGameOutOfStock
	}

	rental := &domain.Rental{
		CustomerID:    customer.ID,
		GameID:        game.ID,
		RentDate:      s.clock.Now().Format(domain.DateLayout),
		DaysRented:    daysRented,
		OriginalPrice: int64(daysRented) * int64(game.PricePerDay),
		DelayFee:      0,
	}

	// The count above is a fast path only; the repository re-checks
	// availability under a row lock before inserting.
	if err := s.rentalRepo.Create(ctx, rental, game.StockTotal); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) CloseRental(ctx context.Context, rentalID int64) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return nil, err
	}
	if rental.ReturnDate != nil {
		return nil, domain.ErrRentalFinished
	}

	// The fee follows the game's price per day at return time, not the price
	// the rental was opened at.
	game, err := s.gameRepo.GetByID(ctx, rental.GameID)
	if err != nil {
		return nil, err
	}

	rentDate, err := time.Parse(domain.DateLayout, rental.RentDate)
	if err != nil {
		return nil, fmt.Errorf("parsing rent date %q: %w", rental.RentDate, err)
	}

	now := s.clock.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	returned := today.Format(domain.DateLayout)
	rental.ReturnDate = &returned

	dueDate := rentDate.AddDate(0, 0, int(rental.DaysRented))
	delayDays := int64(today.Sub(dueDate).Hours() / 24)
	if delayDays < 0 {
		delayDays = 0
	}
	rental.DelayFee = delayDays * int64(game.PricePerDay)

	if err := s.rentalRepo.Update(ctx, rental); err != nil {
		return nil, err
	}
	return rental, nil
}

func (s *rentalService) DeleteRental(ctx context.Context, rentalID int64) error {
	rental, err := s.rentalRepo.GetByID(ctx, rentalID)
	if err != nil {
		return err
	}
	if rental.Open() {
		return domain.ErrRentalActive
	}
	return s.rentalRepo.Delete(ctx, rental.ID)
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	return s.rentalRepo.List(ctx)
}
