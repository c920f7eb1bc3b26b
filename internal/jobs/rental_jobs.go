package jobs

import (
	"context"
	"time"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/logger"
)

// ReportOverdueRentals finds open rentals past their due date, logs them, and
// mails the shop a summary when a report address is configured. Rentals are
// never mutated here: overdue-ness stays derived from the dates, and the fee
// is only fixed when the rental is returned.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		rentals, err := jr.rentalRepo.List(ctx)
		if err != nil {
			logger.Error("Failed to list rentals for overdue report", "error", err)
			return
		}

		now := jr.clock.Now()
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

		var overdue []domain.Rental
		for _, rt := range rentals {
			if !rt.Open() {
				continue
			}
			rentDate, err := time.Parse(domain.DateLayout, rt.RentDate)
			if err != nil {
				logger.Error("Bad rent date on rental", "rental_id", rt.ID, "rent_date", rt.RentDate, "error", err)
				continue
			}
			dueDate := rentDate.AddDate(0, 0, int(rt.DaysRented))
			if today.After(dueDate) {
				overdue = append(overdue, rt)
				logger.Debug("Rental is overdue",
					"rental_id", rt.ID,
					"customer_id", rt.CustomerID,
					"game_id", rt.GameID,
					"due_date", dueDate.Format(domain.DateLayout))
			}
		}

		logger.Info("Overdue rentals scan finished", "count", len(overdue))
		if len(overdue) == 0 {
			return
		}

		to := jr.config.Notices.ReportEmail
		if to == "" {
			return
		}
		if err := jr.emailSvc.SendOverdueRentalsReport(ctx, to, overdue); err != nil {
			logger.Error("Failed to send overdue rentals report", "error", err)
		}
	})
}
