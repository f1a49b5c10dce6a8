// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the process's single wallet session.
//
// A [Handle] is a reference-counted owner of an [engine.Engine]. The
// [Registry] keeps at most one handle; callers that need the engine take a
// clone with [Registry.Get] and release it when done, so the engine stays
// alive for as long as any holder (registry, running command, detached
// background command) needs it and is closed exactly once afterwards.
package session
