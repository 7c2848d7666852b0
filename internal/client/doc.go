// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the command-line tokenization runtime.
//
// It turns card flags or a Google Pay payment data file into a single card
// token request, waits for the answer and prints the token as JSON.
package client
