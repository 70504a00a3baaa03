package binom

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cost-sync/feature/tracker"
)

func TestClient_ListCampaigns(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/arm.php", r.URL.Path)
		gotQuery = r.URL.Query()
		// Binom serves IDs as quoted numeric strings.
		_, _ = w.Write([]byte(`[
			{"id":"10","name":"Campaign A","click_key":"abc"},
			{"id":11,"name":"Campaign B","click_key":""}
		]`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", "secret")
	campaigns, err := client.ListCampaigns(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "campaign@get_all", gotQuery.Get("action"))
	assert.Equal(t, "secret", gotQuery.Get("api_key"))

	require.Len(t, campaigns, 2)
	assert.Equal(t, tracker.Campaign{ID: 10, Name: "Campaign A", ClickKey: "abc"}, campaigns[0])
	assert.Equal(t, tracker.Campaign{ID: 11, Name: "Campaign B", ClickKey: ""}, campaigns[1])
	assert.False(t, campaigns[1].Matchable())
}

func TestClient_GetCampaign(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/arm.php", r.URL.Path)
		assert.Equal(t, "campaign@get", r.URL.Query().Get("action"))
		assert.Equal(t, "10", r.URL.Query().Get("id"))
		_, _ = w.Write([]byte(`{"id":"10","name":"Campaign A","click_key":"abc"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	campaign, err := client.GetCampaign(context.Background(), 10)
	require.NoError(t, err)
	assert.Equal(t, tracker.Campaign{ID: 10, Name: "Campaign A", ClickKey: "abc"}, campaign)
}

func TestClient_UpdateCost(t *testing.T) {
	var gotQuery url.Values

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/", r.URL.Path)
		gotQuery = r.URL.Query()
		_ = json.NewEncoder(w).Encode(map[string]any{
			"update_status": 1,
			"warning":       []string{"cost overwritten"},
		})
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	response, err := client.UpdateCost(context.Background(), 10, tracker.CostTypeFull, tracker.DateYesterday, 3, 7.5)
	require.NoError(t, err)

	assert.Equal(t, "save_update_costs", gotQuery.Get("page"))
	assert.Equal(t, "secret", gotQuery.Get("api_key"))
	assert.Equal(t, "10", gotQuery.Get("camp_id"))
	assert.Equal(t, "1", gotQuery.Get("type"))
	assert.Equal(t, "2", gotQuery.Get("date"))
	assert.Equal(t, "3", gotQuery.Get("timezone"))
	assert.Equal(t, "7.5", gotQuery.Get("cost"))

	assert.True(t, response.Updated)
	assert.Equal(t, []string{"cost overwritten"}, response.Warnings)
}

func TestClient_UpdateCost_NoStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	response, err := client.UpdateCost(context.Background(), 10, tracker.CostTypeFull, tracker.DateYesterday, 0, 1.0)
	require.NoError(t, err)
	assert.False(t, response.Updated)
	assert.Empty(t, response.Warnings)
}

func TestClient_UpstreamErrorPropagates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "maintenance", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	_, err := client.ListCampaigns(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing campaigns")
}

func TestFlexDecoding(t *testing.T) {
	tests := []struct {
		name string
		json string
		want int
	}{
		{"unquoted", `{"id":7}`, 7},
		{"quoted", `{"id":"7"}`, 7},
		{"null", `{"id":null}`, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload campaignPayload
			require.NoError(t, json.Unmarshal([]byte(tt.json), &payload))
			assert.Equal(t, tt.want, payload.ID.value)
		})
	}

	boolTests := []struct {
		name string
		json string
		want bool
	}{
		{"true", `{"update_status":true}`, true},
		{"one", `{"update_status":1}`, true},
		{"quoted one", `{"update_status":"1"}`, true},
		{"false", `{"update_status":false}`, false},
		{"zero", `{"update_status":0}`, false},
	}

	for _, tt := range boolTests {
		t.Run(tt.name, func(t *testing.T) {
			var payload updateCostPayload
			require.NoError(t, json.Unmarshal([]byte(tt.json), &payload))
			assert.Equal(t, tt.want, payload.UpdateStatus.value)
		})
	}
}
