package service

import (
	"context"
	"errors"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, name, phone, cpf string) (*domain.Customer, error) {
	if violations := domain.ValidateNewCustomer(name, phone, cpf); len(violations) > 0 {
		return nil, domain.Invalid("invalid customer data", violations...)
	}

	if _, err := s.customerRepo.GetByCPF(ctx, cpf); err == nil {
		return nil, domain.ErrCPFTaken
	} else if !errors.Is(err, domain.ErrCustomerNotFound) {
		return nil, err
	}

	customer := &domain.Customer{Name: name, Phone: phone, CPF: cpf}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.List(ctx)
}
