package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"boardcamp-backend/internal/api/http/middleware"
	"boardcamp-backend/internal/logger"
	"boardcamp-backend/internal/service"
)

// NewRouter wires the REST surface: customers, games, and the rental
// lifecycle endpoints.
func NewRouter(customerSvc service.CustomerService, gameSvc service.GameService, rentalSvc service.RentalService) *mux.Router {
	r := mux.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Logging(logger.Get()))
	r.Use(middleware.Recovery(logger.Get()))

	customers := NewCustomerHandler(customerSvc)
	r.HandleFunc("/customers", customers.List).Methods(http.MethodGet)
	r.HandleFunc("/customers", customers.Create).Methods(http.MethodPost)
	r.HandleFunc("/customers/{id}", customers.Get).Methods(http.MethodGet)

	games := NewGameHandler(gameSvc)
	r.HandleFunc("/games", games.List).Methods(http.MethodGet)
	r.HandleFunc("/games", games.Create).Methods(http.MethodPost)
	r.HandleFunc("/games/{id}", games.Get).Methods(http.MethodGet)

	rentals := NewRentalHandler(rentalSvc)
	r.HandleFunc("/rentals", rentals.List).Methods(http.MethodGet)
	r.HandleFunc("/rentals", rentals.Create).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id}/return", rentals.Return).Methods(http.MethodPost)
	r.HandleFunc("/rentals/{id}", rentals.Delete).Methods(http.MethodDelete)

	return r
}
