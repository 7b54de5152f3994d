package types

import "github.com/m-mizutani/goerr/v2"

// Error sentinels for transformation failures. Dispatchers wrap these with
// the offending discriminator values so callers can classify via errors.Is.
var (
	// ErrUnknownEventType indicates a discriminator with no registered transformer
	ErrUnknownEventType = goerr.New("unknown event type")

	// ErrMalformedPayload indicates a required nested structure is missing
	ErrMalformedPayload = goerr.New("malformed payload")
)
