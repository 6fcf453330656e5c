package models

// Wire formats for reservation date and time fields.
const (
	BookingDateFormat = "2006-01-02"
	BookingTimeFormat = "15:04:05"
)

type Reservation struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	TableID     int    `json:"table_id"`
	BookingDate string `json:"booking_date"`
	BookingTime string `json:"booking_time"`
	Status      string `json:"status"`
	NoOfPeople  int    `json:"no_of_people"`
	OrderID     *int   `json:"order_id,omitempty"`
}
