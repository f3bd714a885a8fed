package domain

// Motorcycle is an inventory record as served by the backend. NumChassis is
// the natural key and never changes after creation; ID is assigned by the
// backend and never invented client-side.
type Motorcycle struct {
	ID            int64   `json:"id"`
	NumChassis    string  `json:"numChassis"`
	Model         string  `json:"model"`
	Brand         string  `json:"brand"`
	CylinderSize  float64 `json:"cylinderSize"`
	IsNew         bool    `json:"isNew"`
	MileageKm     float64 `json:"mileageKm"`
	PurchasePrice float64 `json:"purchasePrice"`
	SellPrice     float64 `json:"sellPrice"`
	Quantity      float64 `json:"quantity"`
	Image         string  `json:"image"`
}
