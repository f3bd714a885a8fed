package motorcycles

// motorcyclePayload is the JSON body for field-only updates, i.e. when no new
// image file was chosen. Image carries whatever representation the backend
// returned at edit time so the binary is not re-uploaded.
type motorcyclePayload struct {
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
