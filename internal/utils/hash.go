package utils

import (
	"bytes"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"hash"
	"sync"

	canonicaljson "github.com/gibson042/canonicaljson-go"
)

// fingerprintLength is the number of hex characters kept from the digest.
const fingerprintLength = 16

// ErrMultipleDocuments is returned when a body holds more than one JSON value.
var ErrMultipleDocuments = errors.New("multiple JSON documents in body")

// fingerprintKey is generated once per process. Fingerprints correlate log
// lines within a run but cannot be recomputed from a guessed card number.
var fingerprintKey = newFingerprintKey()

// hasherPool is a package-level pool of HMAC-SHA256 instances keyed with
// fingerprintKey.
var hasherPool = sync.Pool{
	New: func() any {
		return hmac.New(sha256.New, fingerprintKey)
	},
}

func newFingerprintKey() []byte {
	key := make([]byte, sha256.Size)
	if _, err := rand.Read(key); err != nil {
		panic("utils: generate fingerprint key: " + err.Error())
	}
	return key
}

// CanonicalizeJSON normalizes arbitrary JSON into canonical form: object keys
// sorted, insignificant whitespace removed and numbers in their shortest form.
// A blank body canonicalizes to "null".
func CanonicalizeJSON(raw []byte) ([]byte, error) {
	if len(bytes.TrimSpace(raw)) == 0 {
		return []byte("null"), nil
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var payload any
	if err := dec.Decode(&payload); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, ErrMultipleDocuments
	}

	return canonicaljson.Marshal(payload)
}

// Fingerprint returns a short identifier of a JSON body, stable for the life
// of the process. Two bodies that differ only in key order or whitespace
// share a fingerprint. The digest is an HMAC under a per-process random key,
// so a logged fingerprint cannot be matched against candidate card numbers.
//
// Example usage:
//
//	fp, err := utils.Fingerprint([]byte(`{"b":1,"a":2}`))
func Fingerprint(raw []byte) (string, error) {
	canonical, err := CanonicalizeJSON(raw)
	if err != nil {
		return "", err
	}

	h := hasherPool.Get().(hash.Hash)
	h.Reset()
	h.Write(canonical)
	sum := h.Sum(nil)
	h.Reset()
	hasherPool.Put(h)

	return hex.EncodeToString(sum)[:fingerprintLength], nil
}
