package entries

import (
	"strings"
)

// Entry is a single diary entry as submitted by the web client.
type Entry struct {
	DateEaten   string `json:"dateEaten" binding:"required"`
	Preparation string `json:"preparation" binding:"required"`
	Quantity    string `json:"quantity" binding:"required"`
}

// Validate returns a ClientInputError listing any blank fields.
func (e Entry) Validate() error {
	missing := []string{}

	if strings.TrimSpace(e.DateEaten) == "" {
		missing = append(missing, "dateEaten")
	}

	if strings.TrimSpace(e.Preparation) == "" {
		missing = append(missing, "preparation")
	}

	if strings.TrimSpace(e.Quantity) == "" {
		missing = append(missing, "quantity")
	}

	if len(missing) > 0 {
		return &ClientInputError{Missing: missing}
	}

	return nil
}
