package domain

// Piece is a spare part record.
type Piece struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellPrice     float64 `json:"sellPrice"`
	Quantity      float64 `json:"quantity"`
	Image         string  `json:"image"`
}
