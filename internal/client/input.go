package client

import "flag"

// Input is what the tool tokenizes, collected from command-line flags.
type Input struct {
	Number   string
	ExpMonth string
	ExpYear  string
	CVC      string

	// GooglePayFile names a file with Google Pay PaymentData JSON. When set
	// the card fields are ignored.
	GooglePayFile string

	// Amount, Currency and Description request 3-D Secure when Amount is
	// positive.
	Amount      int64
	Currency    string
	Description string
}

// RegisterFlags adds the input flags to fs. Call it before
// config.GetClientConfig so one Parse covers both sets.
func RegisterFlags(fs *flag.FlagSet) *Input {
	in := &Input{}

	fs.StringVar(&in.Number, "number", "", "Card number")
	fs.StringVar(&in.ExpMonth, "exp-month", "", "Card expiry month (1-12)")
	fs.StringVar(&in.ExpYear, "exp-year", "", "Card expiry year (YY or YYYY)")
	fs.StringVar(&in.CVC, "cvc", "", "Card security code")
	fs.StringVar(&in.GooglePayFile, "google-pay-file", "", "File with Google Pay PaymentData JSON")
	fs.Int64Var(&in.Amount, "amount", 0, "3DS amount in minor units; 0 skips 3DS")
	fs.StringVar(&in.Currency, "currency", "USD", "3DS currency")
	fs.StringVar(&in.Description, "description", "", "3DS description")

	return in
}
