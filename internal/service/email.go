package service

import (
	"context"
	"fmt"
	"strings"

	"gopkg.in/gomail.v2"

	"boardcamp-backend/internal/domain"
)

type emailService struct {
	host     string
	port     int
	username string
	password string
	from     string
}

func NewEmailService(host string, port int, username, password, from string) EmailService {
	return &emailService{
		host:     host,
		port:     port,
		username: username,
		password: password,
		from:     from,
	}
}

func (s *emailService) SendOverdueRentalsReport(ctx context.Context, to string, rentals []domain.Rental) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("Boardcamp: %d overdue rental(s)", len(rentals)))

	var b strings.Builder
	b.WriteString("The following rentals are past their due date:\n\n")
	for _, rt := range rentals {
		game := fmt.Sprintf("game %d", rt.GameID)
		if rt.Game != nil {
			game = rt.Game.Name
		}
		customer := fmt.Sprintf("customer %d", rt.CustomerID)
		if rt.Customer != nil {
			customer = fmt.Sprintf("%s (phone %s)", rt.Customer.Name, rt.Customer.Phone)
		}
		fmt.Fprintf(&b, "- rental %d: %s rented by %s on %s for %d day(s)\n",
			rt.ID, game, customer, rt.RentDate, rt.DaysRented)
	}
	b.WriteString("\nBest regards,\nThe Boardcamp Team")
	m.SetBody("text/plain", b.String())

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email via gomail: %w", err)
	}
	return nil
}
