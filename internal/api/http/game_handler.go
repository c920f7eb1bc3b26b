package http

import (
	"net/http"

	"boardcamp-backend/internal/domain"
	"boardcamp-backend/internal/service"
)

type GameHandler struct {
	gameSvc service.GameService
}

func NewGameHandler(gameSvc service.GameService) *GameHandler {
	return &GameHandler{gameSvc: gameSvc}
}

type createGameRequest struct {
	Name        string `json:"name"`
	Image       string `json:"image"`
	StockTotal  int32  `json:"stock_total"`
	PricePerDay int32  `json:"price_per_day"`
}

func (h *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, domain.Invalid("invalid request body"))
		return
	}

	game, err := h.gameSvc.CreateGame(r.Context(), req.Name, req.Image, req.StockTotal, req.PricePerDay)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, game)
}

func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	game, err := h.gameSvc.GetGame(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, game)
}

func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	games, err := h.gameSvc.ListGames(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	if games == nil {
		games = []domain.Game{}
	}
	writeJSON(w, http.StatusOK, games)
}
