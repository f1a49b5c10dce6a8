// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a control API bearer token.
//
// It embeds [jwt.Token] for low-level token operations and
// [jwt.RegisteredClaims] for standard claim access. SignedString holds the
// compact serialized form ready to be sent in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// Operator is the "sub" claim: the name of the operator the token was
	// issued to. It is only used for log correlation.
	Operator string `json:"-"`
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
