package postgres_test

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository/postgres"
)

func TestRentalRepository_Create(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewRentalRepository(db)
		ctx := context.Background()

		rental := &domain.Rental{
			CustomerID:    1,
			GameID:        2,
			RentDate:      "2026-08-30",
			DaysRented:    5,
			OriginalPrice: 5000,
			DelayFee:      0,
		}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM games WHERE id = \\$1 FOR UPDATE").
			WithArgs(rental.GameID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM rentals").
			WithArgs(rental.GameID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO rentals").
			WithArgs(rental.CustomerID, rental.GameID, rental.RentDate, rental.DaysRented, nil, rental.OriginalPrice, rental.DelayFee).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(7))
		mock.ExpectCommit()

		err = repo.Create(ctx, rental, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), rental.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Out of stock rolls back without inserting", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewRentalRepository(db)
		ctx := context.Background()

		rental := &domain.Rental{CustomerID: 1, GameID: 2, RentDate: "2026-08-30", DaysRented: 5, OriginalPrice: 5000}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM games WHERE id = \\$1 FOR UPDATE").
			WithArgs(rental.GameID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(2))
		mock.ExpectQuery("SELECT count\\(\\*\\) FROM rentals").
			WithArgs(rental.GameID).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err = repo.Create(ctx, rental, 1)
		assert.ErrorIs(t, err, domain.ErrGameOutOfStock)
		assert.Equal(t, int64(0), rental.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Game row gone", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()

		repo := postgres.NewRentalRepository(db)
		ctx := context.Background()

		rental := &domain.Rental{CustomerID: 1, GameID: 99, RentDate: "2026-08-30", DaysRented: 5}

		mock.ExpectBegin()
		mock.ExpectQuery("SELECT id FROM games WHERE id = \\$1 FOR UPDATE").
			WithArgs(rental.GameID).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		mock.ExpectRollback()

		err = repo.Create(ctx, rental, 1)
		assert.ErrorIs(t, err, domain.ErrGameNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRentalRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	cols := []string{"id", "customer_id", "game_id", "rent_date", "days_rented", "return_date", "original_price", "delay_fee"}

	t.Run("Open rental", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 1, 2, "2026-08-25", 5, nil, 5000, 0))

		rental, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), rental.ID)
		assert.Nil(t, rental.ReturnDate)
		assert.True(t, rental.Open())
	})

	t.Run("Closed rental", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int64(7)).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(7, 1, 2, "2026-08-25", 5, "2026-09-01", 5000, 2000))

		rental, err := repo.GetByID(ctx, 7)
		assert.NoError(t, err)
		assert.NotNil(t, rental.ReturnDate)
		assert.Equal(t, "2026-09-01", *rental.ReturnDate)
		assert.Equal(t, int64(2000), rental.DelayFee)
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM rentals WHERE id = \\$1").
			WithArgs(int64(99)).
			WillReturnRows(sqlmock.NewRows(cols))

		rental, err := repo.GetByID(ctx, 99)
		assert.Nil(t, rental)
		assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	})
}

func TestRentalRepository_CountOpenByGame(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM rentals WHERE game_id = \\$1 AND return_date IS NULL").
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.CountOpenByGame(ctx, 2)
	assert.NoError(t, err)
	assert.Equal(t, int32(3), count)
}

func TestRentalRepository_List(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	cols := []string{
		"id", "customer_id", "game_id", "rent_date", "days_rented", "return_date", "original_price", "delay_fee",
		"c_id", "c_name", "c_phone", "c_cpf",
		"g_id", "g_name", "g_image", "g_stock_total", "g_price_per_day",
	}
	mock.ExpectQuery("SELECT (.+) FROM rentals r").
		WillReturnRows(sqlmock.NewRows(cols).
			AddRow(7, 1, 2, "2026-08-25", 5, nil, 5000, 0,
				1, "Joana", "21998899222", "01234567890",
				2, "Banco Imobiliario", nil, 1, 1000))

	rentals, err := repo.List(ctx)
	assert.NoError(t, err)
	assert.Len(t, rentals, 1)
	assert.NotNil(t, rentals[0].Customer)
	assert.Equal(t, "Joana", rentals[0].Customer.Name)
	assert.NotNil(t, rentals[0].Game)
	assert.Equal(t, "Banco Imobiliario", rentals[0].Game.Name)
	assert.Equal(t, "", rentals[0].Game.Image)
}

func TestRentalRepository_UpdateAndDelete(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := postgres.NewRentalRepository(db)
	ctx := context.Background()

	returned := "2026-09-01"
	rental := &domain.Rental{ID: 7, ReturnDate: &returned, DelayFee: 2000}

	mock.ExpectExec("UPDATE rentals SET return_date").
		WithArgs(rental.ReturnDate, rental.DelayFee, rental.ID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Update(ctx, rental))

	mock.ExpectExec("DELETE FROM rentals WHERE id = \\$1").
		WithArgs(int64(7)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 7))
	assert.NoError(t, mock.ExpectationsWereMet())
}
