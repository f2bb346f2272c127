package inventory

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/magicaleks/aicaps-agent/internal/domain"
)

func TestPublishReport(t *testing.T) {
	var received domain.HostReport
	var gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/hosts/report", r.URL.Path)
		gotKey = r.Header.Get("X-API-Key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ak-test")

	report := domain.HostReport{
		AgentID:      "6c5e9e1a-6a32-4d41-9c8f-2f6fbdc2d001",
		Fingerprint:  "deadbeef",
		Hostname:     "gpu-box-01",
		AgentVersion: "dev",
		Report: domain.CapabilityReport{
			TokenCapacity: domain.TokenCapacity{EstimatedMaxContextLength: 4096, SuggestedModels: []string{}},
		},
	}

	require.NoError(t, client.PublishReport(context.Background(), report))
	assert.Equal(t, "ak-test", gotKey)
	assert.Equal(t, report.AgentID, received.AgentID)
	assert.Equal(t, 4096, received.Report.TokenCapacity.EstimatedMaxContextLength)
}

func TestPublishReportServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer server.Close()

	client := NewClient(server.URL, "ak-test")

	err := client.PublishReport(context.Background(), domain.HostReport{})
	assert.Error(t, err)
}

func TestPing(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/ping", r.URL.Path)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "ak-test")

	assert.NoError(t, client.Ping(context.Background()))
}
