// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// light wallet control API, the dispatch layer and the console.
//
// All Msg* constants are human-readable message strings written into
// dispatch outcomes, HTTP response bodies or log entries. Keeping them in one
// place ensures consistent wording throughout the client.
package app

const (
	// MsgOK acknowledges a successful lifecycle call or a command accepted
	// for background execution.
	MsgOK = "OK"

	// MsgErrorPrefix starts every error outcome returned to callers.
	MsgErrorPrefix = "Error: "

	// MsgNotInitialized is reported when a command arrives while no wallet
	// session is active.
	MsgNotInitialized = "light client is not initialized"

	// MsgAlreadyInitialized is reported when a session is initialized while
	// another one is still installed.
	MsgAlreadyInitialized = "light client is already initialized"

	// MsgTooManyInFlight is reported when the bounded background pool is
	// saturated.
	MsgTooManyInFlight = "too many long-running commands in flight"

	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected failure occurs
	// that the caller cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is expired
	// or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgUnknownSessionMode is returned when POST /api/session names a mode
	// other than auto, new or existing.
	MsgUnknownSessionMode = "unknown session mode"

	// MsgEmptyCommand is returned when a command request has no name.
	MsgEmptyCommand = "command name is empty"
)
