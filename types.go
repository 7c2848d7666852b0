package simplify

import (
	"github.com/MKhiriev/go-simplify/internal/adapter"
	"github.com/MKhiriev/go-simplify/internal/service"
	"github.com/MKhiriev/go-simplify/internal/validators"
	"github.com/MKhiriev/go-simplify/internal/workers"
	"github.com/MKhiriev/go-simplify/models"
)

type (
	// Map is an insertion-ordered JSON object addressed by key paths such as
	// "card.secure3DData.acsUrl" or "items[0].name".
	Map  = models.Map
	// List is the JSON array stored inside a Map.
	List = models.List

	Card      = models.Card
	CardBrand = models.CardBrand

	Request = models.Request
	Method  = models.Method
	Header  = models.Header

	Secure3DRequestData = models.Secure3DRequestData
	Secure3DData        = models.Secure3DData
	Secure3DResult      = models.Secure3DResult
	Secure3DCallback    = service.Secure3DCallback

	// Callback receives the outcome of an asynchronous call exactly once.
	Callback      = workers.Callback
	CallbackFuncs = workers.CallbackFuncs
	Future        = workers.Future
	// Dispatcher chooses where callbacks run. See [WithDispatcher].
	Dispatcher    = workers.Dispatcher

	// Transport sends one request and classifies the answer. See
	// [WithTransport].
	Transport = adapter.Transport
)

const MethodPost = models.MethodPost

const (
	BrandUnknown         = models.BrandUnknown
	BrandVisa            = models.BrandVisa
	BrandMastercard      = models.BrandMastercard
	BrandAmericanExpress = models.BrandAmericanExpress
	BrandDiscover        = models.BrandDiscover
	BrandDiners          = models.BrandDiners
	BrandJCB             = models.BrandJCB
)

func NewMap() *Map { return models.NewMap() }

func NewList(items ...any) *List { return models.NewList(items...) }

// ParseMap decodes a JSON object, keeping key order.
func ParseMap(data []byte) (*Map, error) { return models.ParseMap(data) }

// Normalize converts a plain Go map into a Map with sorted keys.
func Normalize(src map[string]any) *Map { return models.Normalize(src) }

// Equal compares two maps by key order and value.
func Equal(a, b *Map) bool { return models.Equal(a, b) }

func NewRequest(method Method, url string, payload *Map, headers ...Header) *Request {
	return models.NewRequest(method, url, payload, headers...)
}

func NewCard(number, expMonth, expYear, cvc string) Card {
	return models.NewCard(number, expMonth, expYear, cvc)
}

// Inline runs callbacks on the goroutine that made the call. It is the
// default [Dispatcher].
func Inline(fn func()) { workers.Inline(fn) }

// Card helpers for live form feedback. They never fail; bad input yields
// false or [BrandUnknown].

func DetectBrand(number string) CardBrand { return validators.DetectBrand(number) }

func ValidateNumber(number string, brand CardBrand) bool {
	return validators.ValidateNumber(number, brand)
}

func ValidateExpiry(month, year string) bool { return validators.ValidateExpiry(month, year) }

func ValidateCvc(cvc string, brand CardBrand) bool { return validators.ValidateCvc(cvc, brand) }

func FormatNumber(number string, brand CardBrand) string {
	return validators.FormatNumber(number, brand)
}

func StripNonDigits(s string) string { return models.StripNonDigits(s) }
