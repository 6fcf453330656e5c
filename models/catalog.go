package models

type Cuisine struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Outlet is a single vendor inside the food court.
type Outlet struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Contact     string `json:"contact"`
	ImgURL      string `json:"img_url"`
	Description string `json:"description"`
	CuisineID   int    `json:"cuisine_id"`
	OwnerID     int    `json:"owner_id"`
}

type MenuItem struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	OutletID    int     `json:"outlet_id"`
}

// Table is a shared table customers can reserve. Availability is the
// backend's literal "Yes"/"No" string.
type Table struct {
	ID          int    `json:"id"`
	OutletID    int    `json:"outlet_id"`
	TableNumber string `json:"table_number"`
	Capacity    int    `json:"capacity"`
	Status      string `json:"status"`
	IsAvailable string `json:"is_available"`
}

// Available reports whether the table can currently be reserved.
func (t Table) Available() bool {
	return t.IsAvailable == "Yes"
}
