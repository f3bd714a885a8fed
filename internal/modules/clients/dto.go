package clients

type clientPayload struct {
	ClientType     string `json:"clientType"`
	PhoneNumber    string `json:"phoneNumber"`
	IdentityNumber string `json:"identityNumber"`
}
