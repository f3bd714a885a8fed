package pieces

type piecePayload struct {
	Name          string  `json:"name"`
	Description   string  `json:"description"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellPrice     float64 `json:"sellPrice"`
	Quantity      float64 `json:"quantity"`
	Image         string  `json:"image"`
}
