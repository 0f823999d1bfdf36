package entries

import (
	"fmt"
	"strings"
)

// ClientInputError is returned for a request that is missing required fields or
// cannot be decoded. It is always detected before any call to Google Sheets.
type ClientInputError struct {
	Missing []string
	Reason  string
}

func (e *ClientInputError) Error() string {
	if len(e.Missing) > 0 {
		return fmt.Sprintf("missing required fields (%s)", strings.Join(e.Missing, ", "))
	}

	return e.Reason
}

// ConfigurationError lists the environment variables required by the service that
// are not set.
type ConfigurationError struct {
	Missing []string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("missing environment variables (%s)", strings.Join(e.Missing, ", "))
}

// UpstreamError wraps a non-success response from the Google Sheets API or the
// Google OAuth2 token endpoint.
type UpstreamError struct {
	Status  int
	Message string
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("Google Sheets API error (%d): %s", e.Status, e.Message)
}
