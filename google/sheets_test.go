package google

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"google.golang.org/api/sheets/v4"

	"github.com/daily-yolk/yolk-app-sheets/entries"
)

var token = &oauth2.Token{
	AccessToken: "ya29.egg",
	TokenType:   "Bearer",
}

func sheetsServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &Client{
		endpoint: srv.URL + "/",
		client:   srv.Client(),
	}
}

func TestAppend(t *testing.T) {
	var received sheets.ValueRange
	var query map[string]string

	client := sheetsServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer ya29.egg", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/abc123/values/Sheet1"), r.URL.Path)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":append"), r.URL.Path)

		query = map[string]string{
			"valueInputOption": r.URL.Query().Get("valueInputOption"),
			"insertDataOption": r.URL.Query().Get("insertDataOption"),
		}

		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"spreadsheetId":"abc123","updates":{"updatedRows":1}}`))
	})

	row := entries.Row{"03/10/2024 14:05:09", "03/10/2024", "boiled", "2", ""}

	err := client.Append(context.Background(), token, "abc123", "Sheet1", row)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"valueInputOption": "RAW", "insertDataOption": "INSERT_ROWS"}, query)
	assert.Equal(t, [][]interface{}{{"03/10/2024 14:05:09", "03/10/2024", "boiled", "2", ""}}, received.Values)
}

func TestAppendRows(t *testing.T) {
	var received sheets.ValueRange

	client := sheetsServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"spreadsheetId":"abc123","updates":{"updatedRows":2}}`))
	})

	rows := []entries.Row{
		{"03/10/2024 14:05:09", "03/09/2024", "poached", "2", ""},
		{"03/10/2024 14:05:09", "03/10/2024", "boiled", "1", ""},
	}

	require.NoError(t, client.Append(context.Background(), token, "abc123", "'Egg Log'", rows...))

	assert.Len(t, received.Values, 2)
	assert.Equal(t, []interface{}{"03/10/2024 14:05:09", "03/10/2024", "boiled", "1", ""}, received.Values[1])
}

func TestAppendWithPermissionDenied(t *testing.T) {
	client := sheetsServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"The caller does not have permission","status":"PERMISSION_DENIED"}}`))
	})

	err := client.Append(context.Background(), token, "abc123", "Sheet1", entries.Row{"a", "b", "c", "d", ""})

	var uerr *entries.UpstreamError
	require.True(t, errors.As(err, &uerr), "expected UpstreamError, got %v", err)
	assert.Equal(t, http.StatusForbidden, uerr.Status)
	assert.Equal(t, "The caller does not have permission", uerr.Message)
	assert.Equal(t, "Google Sheets API error (403): The caller does not have permission", uerr.Error())
}

func TestRead(t *testing.T) {
	expected := [][]string{
		{"Date Eaten", ""},
		{"03/08/2024", "boiled"},
		{"", ""},
		{"2", ""},
	}

	client := sheetsServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "Bearer ya29.egg", r.Header.Get("Authorization"))
		assert.True(t, strings.HasPrefix(r.URL.Path, "/v4/spreadsheets/abc123/values/"), r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"range":"Sheet1!B1:C4","majorDimension":"ROWS","values":[["Date Eaten"],["03/08/2024","boiled"],[],[2]]}`))
	})

	grid, err := client.Read(context.Background(), token, "abc123", "Sheet1!B:C")
	require.NoError(t, err)

	assert.Equal(t, expected, grid)
}

func TestReadEmptyRange(t *testing.T) {
	client := sheetsServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"range":"Sheet1!B1:B1000","majorDimension":"ROWS"}`))
	})

	grid, err := client.Read(context.Background(), token, "abc123", "Sheet1!B:B")
	require.NoError(t, err)

	assert.Empty(t, grid)
}

func TestReadWithNotFound(t *testing.T) {
	client := sheetsServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":{"code":404,"message":"Requested entity was not found.","status":"NOT_FOUND"}}`))
	})

	_, err := client.Read(context.Background(), token, "abc123", "Sheet1!B:B")

	var uerr *entries.UpstreamError
	require.True(t, errors.As(err, &uerr), "expected UpstreamError, got %v", err)
	assert.Equal(t, http.StatusNotFound, uerr.Status)
	assert.Equal(t, "Requested entity was not found.", uerr.Message)
}

func TestRange(t *testing.T) {
	tests := []struct {
		sheet    string
		columns  string
		expected string
	}{
		{"Sheet1", "B:B", "Sheet1!B:B"},
		{"Sheet1", "", "Sheet1"},
		{"Egg Log", "A:E", "'Egg Log'!A:E"},
		{"Yolk's", "B:B", "'Yolk''s'!B:B"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, Range(test.sheet, test.columns))
	}
}
