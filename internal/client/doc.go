// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the wallet client runtime.
//
// It opens or creates the wallet session, starts the first sync and then
// runs the interactive console (or the headless status loop) next to the
// optional control API until the user quits or a stop signal arrives.
package client
