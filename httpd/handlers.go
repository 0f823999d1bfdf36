package httpd

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"github.com/daily-yolk/yolk-app-sheets/entries"
	"github.com/daily-yolk/yolk-app-sheets/log"
	"github.com/daily-yolk/yolk-app-sheets/service"
)

type handlers struct {
	diary   Diary
	version string
}

type envCheck struct {
	Message string `json:"message"`
	service.EnvReport
}

func (h *handlers) submit(c *gin.Context) {
	var entry entries.Entry

	if err := c.ShouldBindJSON(&entry); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := []string{}
			for _, v := range verrs {
				missing = append(missing, v.Field())
			}

			fail(c, &entries.ClientInputError{Missing: missing}, "Failed to submit entry")
		} else {
			fail(c, &entries.ClientInputError{Reason: "Invalid request body"}, "Failed to submit entry")
		}

		return
	}

	if err := h.diary.Submit(c.Request.Context(), entry); err != nil {
		fail(c, err, "Failed to submit entry")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Entry submitted successfully",
	})
}

func (h *handlers) recent(c *gin.Context) {
	week, err := h.diary.Recent(c.Request.Context())
	if err != nil {
		fail(c, err, "Failed to fetch recent entries")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"weekData": week,
	})
}

func (h *handlers) hello(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message":   "Hello from API!",
		"timestamp": time.Now().UTC().Format("2006-01-02T15:04:05.000Z"),
		"version":   h.version,
	})
}

func (h *handlers) testEnv(c *gin.Context) {
	c.JSON(http.StatusOK, envCheck{
		Message:   "Environment Variables Check",
		EnvReport: h.diary.CheckEnv(),
	})
}

// fail maps an error to the HTTP response for its class. Upstream errors include
// the Google Sheets status and message, anything unexpected gets only the generic
// 'message'.
func fail(c *gin.Context, err error, message string) {
	var cie *entries.ClientInputError
	var cfe *entries.ConfigurationError
	var uerr *entries.UpstreamError

	id := c.GetString("request_id")

	switch {
	case errors.As(err, &cie):
		log.Warnf("%v  %v", id, err)

		if len(cie.Missing) > 0 {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   "Missing required fields",
				"missing": cie.Missing,
			})
		} else {
			c.JSON(http.StatusBadRequest, gin.H{
				"success": false,
				"error":   cie.Reason,
			})
		}

	case errors.As(err, &cfe):
		log.Errorf("%v  %v", id, err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   "Server configuration error: Missing environment variables",
			"missing": cfe.Missing,
		})

	case errors.As(err, &uerr):
		log.Errorf("%v  %v", id, err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   message,
			"message": uerr.Error(),
		})

	default:
		log.Errorf("%v  %v", id, err)

		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"error":   message,
		})
	}
}
