package ga4

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/jekabolt/sales-digest/internal/entity"
	gerr "github.com/jekabolt/sales-digest/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	analyticsdata "google.golang.org/api/analyticsdata/v1beta"
	"google.golang.org/api/option"
)

const testPropertyID = "299206603"

var testRange = entity.DateRange{
	From: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC),
	To:   time.Date(2024, time.May, 15, 0, 0, 0, 0, time.UTC),
}

// findCredsPath searches for GA4 credentials in config/creds.
// Returns the path to the first .json file found, or empty string if none.
func findCredsPath(t *testing.T) string {
	t.Helper()
	credsDir := filepath.Join("..", "..", "..", "config", "creds")
	if _, err := os.Stat(credsDir); os.IsNotExist(err) {
		return ""
	}
	entries, err := os.ReadDir(credsDir)
	if err != nil {
		t.Logf("cannot read config/creds: %v", err)
		return ""
	}
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".json" {
			return filepath.Join(credsDir, e.Name())
		}
	}
	return ""
}

func newFakeClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := NewClient(context.Background(), &Config{PropertyID: testPropertyID},
		option.WithEndpoint(srv.URL+"/"),
		option.WithoutAuthentication(),
	)
	require.NoError(t, err)
	return client
}

func TestNewClient_RequiresProperty(t *testing.T) {
	_, err := NewClient(context.Background(), &Config{})
	assert.ErrorIs(t, err, gerr.ErrMissingConfig)

	_, err = NewClient(context.Background(), nil)
	assert.ErrorIs(t, err, gerr.ErrMissingConfig)
}

func TestClient_GetSessions(t *testing.T) {
	client := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, "properties/"+testPropertyID+":runReport")

		var req analyticsdata.RunReportRequest
		if assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) &&
			assert.Len(t, req.DateRanges, 1) && assert.Len(t, req.Metrics, 1) {
			assert.Equal(t, "2024-05-01", req.DateRanges[0].StartDate)
			assert.Equal(t, "2024-05-15", req.DateRanges[0].EndDate)
			assert.Equal(t, "sessions", req.Metrics[0].Name)
			assert.Empty(t, req.Dimensions)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rows":[{"metricValues":[{"value":"4321"}]}],"rowCount":1}`))
	})

	sessions, err := client.GetSessions(context.Background(), testRange)
	require.NoError(t, err)
	assert.Equal(t, 4321, sessions)
}

func TestClient_GetSessions_NoRows(t *testing.T) {
	client := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"metricHeaders":[{"name":"sessions","type":"TYPE_INTEGER"}]}`))
	})

	sessions, err := client.GetSessions(context.Background(), testRange)
	require.NoError(t, err)
	assert.Zero(t, sessions)
}

func TestClient_GetSessions_UpstreamError(t *testing.T) {
	client := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"error":{"code":403,"message":"User does not have sufficient permissions for this property.","status":"PERMISSION_DENIED"}}`))
	})

	_, err := client.GetSessions(context.Background(), testRange)
	assert.ErrorIs(t, err, gerr.ErrUpstream)
}

func TestClient_GetSessions_BadValue(t *testing.T) {
	client := newFakeClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"rows":[{"metricValues":[{"value":"12.5"}]}]}`))
	})

	_, err := client.GetSessions(context.Background(), testRange)
	assert.ErrorIs(t, err, gerr.ErrDecode)
}

func TestClient_GetSessions_Integration(t *testing.T) {
	credsPath := findCredsPath(t)
	if credsPath == "" {
		t.Skip("config/creds/*.json not found - skipping GA4 integration test")
	}

	ctx := context.Background()
	client, err := NewClient(ctx, &Config{
		PropertyID:      testPropertyID,
		CredentialsJSON: credsPath,
	})
	require.NoError(t, err)

	_, day, month := entity.ReportWindows(time.Now())
	daySessions, err := client.GetSessions(ctx, day)
	require.NoError(t, err)
	monthSessions, err := client.GetSessions(ctx, month)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, monthSessions, daySessions)
	t.Logf("GetSessions day=%d month=%d", daySessions, monthSessions)
}
