// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package simplify is a client SDK for the Simplify payment gateway.
//
// It validates card data locally, exchanges it for a single-use card token
// over a pinned HTTPS connection and prepares the 3-D Secure hand-off. Raw
// card data never reaches the merchant's own servers; only the token does.
//
// A Client is created from a public API key:
//
//	client, err := simplify.New("sbpb_...")
//	if err != nil {
//	    return err
//	}
//
//	card := simplify.NewMap().
//	    MustSet("number", "5555555555554444").
//	    MustSet("expMonth", "12").
//	    MustSet("expYear", "99").
//	    MustSet("cvc", "123")
//
//	err = client.CreateCardToken(ctx, card, nil, simplify.CallbackFuncs{
//	    Success: func(token *simplify.Map) { ... },
//	    Error:   func(err error) { ... },
//	})
//
// Each gateway call runs on its own goroutine and reports through its
// callback exactly once. Only argument errors are returned synchronously;
// everything that happens after the call has started is delivered to the
// callback or the [Future].
package simplify
