package service

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-simplify/models"
)

const (
	// Secure3DRedirectScheme is the URL scheme the 3DS term page redirects to
	// once authentication has finished.
	Secure3DRedirectScheme = "simplifysdk"
	// Secure3DResultParam is the query parameter carrying the result JSON.
	Secure3DResultParam = "result"

	// Secure3DUnknownErrorMessage is reported when the result carries neither
	// a decision nor an error.
	Secure3DUnknownErrorMessage = "Unknown error occurred during authentication"
	// Secure3DUnreadableMessage is reported when the result cannot be parsed.
	Secure3DUnreadableMessage = "Unable to read 3DS result"

	formFieldPaReq   = "PaReq"
	formFieldMD      = "MD"
	formFieldTermURL = "TermUrl"

	pathAuthenticated = "secure3d.authenticated"
	pathError         = "secure3d.error"
	pathErrorMessage  = "secure3d.error.message"
)

// AuthenticationForm returns the form fields posted to the issuer's ACS.
func AuthenticationForm(data models.Secure3DData) url.Values {
	form := url.Values{}
	form.Set(formFieldPaReq, data.PaReq)
	form.Set(formFieldMD, data.MerchantData)
	form.Set(formFieldTermURL, data.TermURL)
	return form
}

// NewAuthenticationRequest builds the form POST that starts 3-D Secure
// authentication at data.AcsURL. The host renders the response to the
// cardholder and watches for the redirect handled by
// [ParseSecure3DRedirect].
func NewAuthenticationRequest(ctx context.Context, data models.Secure3DData) (*http.Request, error) {
	if data.AcsURL == "" || data.PaReq == "" || data.MerchantData == "" || data.TermURL == "" {
		return nil, fmt.Errorf("%w: acsUrl, paReq, md and termUrl are required", ErrInvalidSecure3DData)
	}

	acs, err := url.Parse(data.AcsURL)
	if err != nil || acs.Host == "" {
		return nil, fmt.Errorf("%w: acsUrl %q", ErrInvalidSecure3DData, data.AcsURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, acs.String(), strings.NewReader(AuthenticationForm(data).Encode()))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecure3DData, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req, nil
}

// ParseSecure3DRedirect recognizes the completion redirect. ok is false for
// any other URL, which the host should simply follow. The result parameter
// name is matched case-insensitively and may be empty.
func ParseSecure3DRedirect(rawURL string) (result string, ok bool) {
	u, err := url.Parse(rawURL)
	if err != nil || !strings.EqualFold(u.Scheme, Secure3DRedirectScheme) {
		return "", false
	}

	for name, values := range u.Query() {
		if strings.EqualFold(name, Secure3DResultParam) && len(values) > 0 {
			return values[0], true
		}
	}
	return "", true
}

// ParseSecure3DResult decodes the result JSON of a completed authentication.
//
// A result with secure3d.authenticated yields the decision. A result with
// secure3d.error yields its message, or [Secure3DUnknownErrorMessage] when
// the message is empty. Anything else yields the unknown error message too.
// Blank or malformed JSON and wrongly typed fields return
// [ErrUnreadable3DSResult].
func ParseSecure3DResult(result string) (models.Secure3DResult, error) {
	if strings.TrimSpace(result) == "" {
		return models.Secure3DResult{}, fmt.Errorf("%w: empty result", ErrUnreadable3DSResult)
	}

	m, err := models.ParseMap([]byte(result))
	if err != nil {
		return models.Secure3DResult{}, fmt.Errorf("%w: %w", ErrUnreadable3DSResult, err)
	}

	if ok, _ := m.ContainsKey(pathAuthenticated); ok {
		authenticated, isBool := m.GetBool(pathAuthenticated)
		if !isBool {
			return models.Secure3DResult{}, fmt.Errorf("%w: %s is not a boolean", ErrUnreadable3DSResult, pathAuthenticated)
		}
		return models.Secure3DResult{Authenticated: authenticated}, nil
	}

	if ok, _ := m.ContainsKey(pathError); ok {
		message, isString := m.GetString(pathErrorMessage)
		if !isString {
			return models.Secure3DResult{}, fmt.Errorf("%w: %s is not a string", ErrUnreadable3DSResult, pathErrorMessage)
		}
		if message == "" {
			message = Secure3DUnknownErrorMessage
		}
		return models.Secure3DResult{Error: message}, nil
	}

	return models.Secure3DResult{Error: Secure3DUnknownErrorMessage}, nil
}

// HandleSecure3DResult reports an authentication outcome to cb. completed is
// false when the cardholder left before the redirect arrived.
func HandleSecure3DResult(completed bool, result string, cb Secure3DCallback) {
	if !completed {
		cb.OnSecure3DCancel()
		return
	}

	res, err := ParseSecure3DResult(result)
	switch {
	case err != nil:
		cb.OnSecure3DError(Secure3DUnreadableMessage)
	case res.Error != "":
		cb.OnSecure3DError(res.Error)
	default:
		cb.OnSecure3DComplete(res.Authenticated)
	}
}

// HandleSecure3DRedirect combines [ParseSecure3DRedirect] and
// [HandleSecure3DResult]. It returns false, without calling cb, when rawURL
// is not the completion redirect.
func HandleSecure3DRedirect(rawURL string, cb Secure3DCallback) bool {
	result, ok := ParseSecure3DRedirect(rawURL)
	if !ok {
		return false
	}
	HandleSecure3DResult(true, result, cb)
	return true
}
