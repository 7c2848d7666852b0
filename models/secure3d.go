package models

import "fmt"

// Secure3DRequestData asks the gateway to start 3-D Secure enrollment for a
// card token. Amount is in minor units.
type Secure3DRequestData struct {
	Amount      int64  `json:"amount" validate:"gt=0"`
	Currency    string `json:"currency" validate:"required,len=3,uppercase"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1024"`
}

// ToMap converts the data into the secure3DRequestData payload object.
func (d Secure3DRequestData) ToMap() *Map {
	m := NewMap()
	m.put("amount", d.Amount)
	m.put("currency", d.Currency)
	if d.Description != "" {
		m.put("description", d.Description)
	}
	return m
}

// Secure3DData is the challenge returned under card.secure3DData of a card
// token that requires 3-D Secure authentication.
type Secure3DData struct {
	ID           string
	Enrolled     bool
	AcsURL       string
	PaReq        string
	MerchantData string
	TermURL      string
}

// Secure3DDataFromToken extracts the 3-D Secure challenge from a card token
// response.
func Secure3DDataFromToken(token *Map) (Secure3DData, error) {
	data, ok := token.GetMap("card.secure3DData")
	if !ok {
		return Secure3DData{}, fmt.Errorf("%w: the provided card token must contain 3DS data", ErrInvalidArgument)
	}

	s := Secure3DData{}
	s.ID, _ = data.GetString("id")
	s.Enrolled, _ = data.GetBool("isEnrolled")
	s.AcsURL, _ = data.GetString("acsUrl")
	s.PaReq, _ = data.GetString("paReq")
	s.MerchantData, _ = data.GetString("md")
	s.TermURL, _ = data.GetString("termUrl")

	if s.AcsURL == "" || s.PaReq == "" || s.MerchantData == "" || s.TermURL == "" {
		return Secure3DData{}, fmt.Errorf("%w: 3DS data requires acsUrl, paReq, md and termUrl", ErrInvalidArgument)
	}

	return s, nil
}

// Secure3DResult is the outcome reported by the 3-D Secure redirect.
type Secure3DResult struct {
	Authenticated bool
	// Error is set when the issuer reported a failure instead of a decision.
	Error string
}
