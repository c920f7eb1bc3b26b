package service

import (
	"context"
	"errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type gameService struct {
	gameRepo repository.GameRepository
}

func NewGameService(gameRepo repository.GameRepository) GameService {
	return &gameService{gameRepo: gameRepo}
}

func (s *gameService) CreateGame(ctx context.Context, name, image string, stockTotal, pricePerDay int32) (*domain.Game, error) {
	if violations := domain.ValidateNewGame(name, stockTotal, pricePerDay); len(violations) > 0 {
		return nil, domain.Invalid("invalid game data", violations...)
	}

	if _, err := s.gameRepo.GetByName(ctx, name); err == nil {
		return nil, domain.ErrGameNameTaken
	} else if !errors.Is(err, domain.ErrGameNotFound) {
		return nil, err
	}

	game := &domain.Game{Name: name, Image: image, StockTotal: stockTotal, PricePerDay: pricePerDay}
	if err := s.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}
	return game, nil
}

func (s *gameService) GetGame(ctx context.Context, id int64) (*domain.Game, error) {
	return s.gameRepo.GetByID(ctx, id)
}

func (s *gameService) ListGames(ctx context.Context) ([]domain.Game, error) {
	return s.gameRepo.List(ctx)
}
