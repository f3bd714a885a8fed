package domain

const (
	ClientTypeIndividual = "Individual"
	ClientTypeBusiness   = "Business"
)

// Client is a customer record. IdentityNumber holds a CNE or passport number.
type Client struct {
	ID             int64  `json:"id"`
	ClientType     string `json:"clientType"`
	PhoneNumber    string `json:"phoneNumber"`
	IdentityNumber string `json:"identityNumber"`
}
