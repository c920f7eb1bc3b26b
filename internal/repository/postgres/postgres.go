package postgres

import (
	"database/sql"

	"boardcamp-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CustomerRepository
	repository.GameRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CustomerRepository: NewCustomerRepository(db),
		GameRepository:     NewGameRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}
