package adapter

import "errors"

var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrUnavailable         = errors.New("chain-data server unavailable")

	// ErrTransport wraps failures below HTTP: dial, TLS, timeouts.
	ErrTransport = errors.New("chain-data server transport error")
	// ErrDecodingResponse is returned when a 2xx body cannot be decoded.
	ErrDecodingResponse = errors.New("error decoding chain-data response")
	// ErrInvalidRange is returned for a block range with start > end.
	ErrInvalidRange = errors.New("invalid block range")
)

// IsTransient reports whether err is worth retrying: transport failures and
// server-side 5xx answers.
func IsTransient(err error) bool {
	return errors.Is(err, ErrTransport) ||
		errors.Is(err, ErrUnavailable) ||
		errors.Is(err, ErrBadGateway) ||
		errors.Is(err, ErrInternalServerError)
}
