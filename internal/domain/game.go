package domain

type Game struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Image       string `json:"image,omitempty"`
	StockTotal  int32  `json:"stock_total"`
	PricePerDay int32  `json:"price_per_day"` // smallest currency unit
}
