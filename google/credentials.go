package google

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/sheets/v4"

	"github.com/daily-yolk/yolk-app-sheets/config"
	"github.com/daily-yolk/yolk-app-sheets/entries"
)

const (
	SHEETS          = sheets.SpreadsheetsScope
	SHEETS_READONLY = sheets.SpreadsheetsReadonlyScope
)

const (
	authURI         = "https://accounts.google.com/o/oauth2/auth"
	authProviderURL = "https://www.googleapis.com/oauth2/v1/certs"
)

// Credentials issues bearer tokens for the service account, either from the
// environment configuration or from a downloaded service account key file.
type Credentials struct {
	config *config.Config
	key    []byte
}

type serviceAccount struct {
	Type                string `json:"type"`
	ProjectID           string `json:"project_id"`
	PrivateKeyID        string `json:"private_key_id"`
	PrivateKey          string `json:"private_key"`
	ClientEmail         string `json:"client_email"`
	ClientID            string `json:"client_id"`
	AuthURI             string `json:"auth_uri"`
	TokenURI            string `json:"token_uri"`
	AuthProviderCertURL string `json:"auth_provider_x509_cert_url"`
	ClientCertURL       string `json:"client_x509_cert_url,omitempty"`
}

func NewCredentials(cfg *config.Config) *Credentials {
	return &Credentials{
		config: cfg,
	}
}

func NewCredentialsFromFile(file string) (*Credentials, error) {
	b, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}

	return &Credentials{
		key: b,
	}, nil
}

// Token exchanges the service account credentials for a bearer token with the
// requested scope.
func (c *Credentials) Token(ctx context.Context, scope string) (*oauth2.Token, error) {
	b, err := c.serviceAccount()
	if err != nil {
		return nil, err
	}

	jwt, err := google.JWTConfigFromJSON(b, scope)
	if err != nil {
		return nil, fmt.Errorf("invalid service account credentials (%w)", err)
	}

	token, err := jwt.TokenSource(ctx).Token()
	if err != nil {
		return nil, upstream(err)
	}

	return token, nil
}

func (c *Credentials) serviceAccount() ([]byte, error) {
	if c.key != nil {
		return c.key, nil
	}

	if c.config == nil {
		return nil, &entries.ConfigurationError{Missing: credentials}
	}

	// ... the sheet ID is not a credential
	missing := []string{}
	for _, k := range c.config.Missing() {
		if slices.Contains(credentials, k) {
			missing = append(missing, k)
		}
	}

	if len(missing) > 0 {
		return nil, &entries.ConfigurationError{Missing: missing}
	}

	g := c.config.Google
	account := serviceAccount{
		Type:                "service_account",
		ProjectID:           g.ProjectID,
		PrivateKeyID:        g.PrivateKeyID,
		PrivateKey:          g.PrivateKey,
		ClientEmail:         g.ClientEmail,
		ClientID:            g.ClientID,
		AuthURI:             authURI,
		TokenURI:            g.TokenURI,
		AuthProviderCertURL: authProviderURL,
		ClientCertURL:       g.ClientCertURL,
	}

	return json.Marshal(account)
}

var credentials = []string{
	config.GOOGLE_PROJECT_ID,
	config.GOOGLE_PRIVATE_KEY_ID,
	config.GOOGLE_PRIVATE_KEY,
	config.GOOGLE_CLIENT_EMAIL,
	config.GOOGLE_CLIENT_ID,
}
