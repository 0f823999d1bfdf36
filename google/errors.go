package google

import (
	"encoding/json"
	"errors"
	"strings"

	"golang.org/x/oauth2"
	"google.golang.org/api/googleapi"

	"github.com/daily-yolk/yolk-app-sheets/entries"
)

// upstream converts Google API and OAuth2 token endpoint failures to an
// UpstreamError carrying the remote status code and message. Anything else
// (network errors, etc) is returned unchanged.
func upstream(err error) error {
	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		message := gerr.Message
		if message == "" {
			message = strings.TrimSpace(gerr.Body)
		}

		return &entries.UpstreamError{
			Status:  gerr.Code,
			Message: message,
		}
	}

	var rerr *oauth2.RetrieveError
	if errors.As(err, &rerr) && rerr.Response != nil {
		message := rerr.ErrorDescription
		if message == "" {
			reply := struct {
				Error       string `json:"error"`
				Description string `json:"error_description"`
			}{}

			if json.Unmarshal(rerr.Body, &reply) == nil && reply.Description != "" {
				message = reply.Description
			} else if reply.Error != "" {
				message = reply.Error
			} else {
				message = strings.TrimSpace(string(rerr.Body))
			}
		}

		return &entries.UpstreamError{
			Status:  rerr.Response.StatusCode,
			Message: message,
		}
	}

	return err
}
