package httpd

import (
	"context"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/daily-yolk/yolk-app-sheets/entries"
	"github.com/daily-yolk/yolk-app-sheets/service"
)

// Diary is the set of operations exposed over HTTP.
type Diary interface {
	Submit(ctx context.Context, entry entries.Entry) error
	Recent(ctx context.Context) ([]entries.DayPresence, error)
	CheckEnv() service.EnvReport
}

var once sync.Once

// NewRouter returns the gin engine for the API. Every endpoint is also served
// under /api for clients that still use the serverless paths.
func NewRouter(diary Diary, version string) *gin.Engine {
	once.Do(useJSONFieldNames)

	h := handlers{
		diary:   diary,
		version: version,
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery(), RequestID(), Logger())
	r.NoMethod(methodNotAllowed)
	r.NoRoute(notFound)

	for _, prefix := range []string{"/", "/api"} {
		g := r.Group(prefix)

		post := CORS("POST, OPTIONS")
		get := CORS("GET, OPTIONS")

		g.POST("/submit-entry", post, h.submit)
		g.OPTIONS("/submit-entry", post)

		g.GET("/recent-entries", get, h.recent)
		g.OPTIONS("/recent-entries", get)

		g.GET("/hello", get, h.hello)
		g.OPTIONS("/hello", get)

		g.GET("/test-env", get, h.testEnv)
		g.OPTIONS("/test-env", get)
	}

	return r
}

func methodNotAllowed(c *gin.Context) {
	c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
}

func notFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
}

// useJSONFieldNames reports validation failures using the JSON field names
// rather than the Go struct field names.
func useJSONFieldNames() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}

			return name
		})
	}
}
