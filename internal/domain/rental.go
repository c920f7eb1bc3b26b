package domain

// DateLayout is the calendar-date format used across the API and the database.
const DateLayout = "2006-01-02"

type Rental struct {
	ID         int64   `json:"id"`
	CustomerID int64   `json:"customer_id"`
	GameID     int64   `json:"game_id"`
	RentDate   string  `json:"rent_date"`
	DaysRented int32   `json:"days_rented"`
	ReturnDate *string `json:"return_date"`
	// Price fields are fixed once written: original_price at creation,
	// delay_fee when the rental is returned.
	OriginalPrice int64 `json:"original_price"`
	DelayFee      int64 `json:"delay_fee"`

	Customer *Customer `json:"customer,omitempty"` // populated on list views
	Game     *Game     `json:"game,omitempty"`
}

// Open reports whether the rental has not been returned yet. Open rentals
// count against the game's stock.
func (r *Rental) Open() bool {
	return r.ReturnDate == nil
}
