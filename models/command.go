// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// CommandRequest is a named wallet command with its raw argument string. It
// is built by the caller, classified once and consumed by a single dispatch.
type CommandRequest struct {
	name string
	args string
}

// NewCommandRequest constructs an immutable [CommandRequest].
func NewCommandRequest(name, args string) CommandRequest {
	return CommandRequest{name: name, args: args}
}

// Name returns the command name.
func (c CommandRequest) Name() string {
	return c.name
}

// Args returns the raw argument string.
func (c CommandRequest) Args() string {
	return c.args
}

// ArgList converts the argument string into the engine argument list: an
// empty string becomes zero arguments, anything else is passed through as
// exactly one argument without splitting.
func (c CommandRequest) ArgList() []string {
	if c.args == "" {
		return nil
	}
	return []string{c.args}
}
