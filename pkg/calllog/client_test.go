package calllog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient_RequiresToken(t *testing.T) {
	_, err := NewClient("http://example.com", "")
	assert.ErrorIs(t, err, ErrMissingToken)
}

func TestFetch_SendsExpectedQueryAndAuth(t *testing.T) {
	var gotQuery map[string]string
	var gotAuth string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotQuery = map[string]string{}
		for key := range r.URL.Query() {
			gotQuery[key] = r.URL.Query().Get(key)
		}

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results":{"total_count":1,"data":[
			{"record_id":42,"username":"JEYI","company":"焼肉きずな","phone_number":"090-1234-5678",
			 "created_at":"2025-11-07T11:13:25","is_out":1,"is_contract":0,"type":1}
		]}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	require.NoError(t, err)

	result, err := client.Fetch(context.Background(), FetchParams{
		StartDate:    "2025-11-07",
		EndDate:      "2025-11-08",
		Page:         2,
		Row:          50,
		OutboundOnly: true,
	})
	require.NoError(t, err)

	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "2025-11-07", gotQuery["start_date"])
	assert.Equal(t, "2025-11-08", gotQuery["end_date"])
	assert.Equal(t, "2", gotQuery["page"])
	assert.Equal(t, "50", gotQuery["row"])
	assert.Equal(t, "1", gotQuery["is_out"])
	assert.Equal(t, "date-desc", gotQuery["sort"])
	assert.NotContains(t, gotQuery, "call_type")

	assert.Equal(t, 1, result.TotalCount)
	require.Len(t, result.Records, 1)
	assert.Equal(t, "42", result.Records[0].ExternalID())
	assert.True(t, result.Records[0].IsFirstCall())
	assert.Equal(t, "焼肉きずな", result.Records[0].Company)
}

func TestFetch_DefaultsPageAndRow(t *testing.T) {
	var gotPage, gotRow string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPage = r.URL.Query().Get("page")
		gotRow = r.URL.Query().Get("row")
		w.Write([]byte(`{"results":{"total_count":0,"data":[]}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), FetchParams{StartDate: "2025-01-01", EndDate: "2025-01-02"})
	require.NoError(t, err)

	assert.Equal(t, "1", gotPage)
	assert.Equal(t, "100", gotRow)
}

func TestFetch_CallTypeFilter(t *testing.T) {
	var gotCallType string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotCallType = r.URL.Query().Get("call_type")
		w.Write([]byte(`{"results":{"total_count":0,"data":[]}}`))
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), FetchParams{
		StartDate: "2025-01-01",
		EndDate:   "2025-01-02",
		CallType:  CallTypeFirstCall,
	})
	require.NoError(t, err)
	assert.Equal(t, "1", gotCallType)
}

func TestFetch_NonSuccessStatusFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer server.Close()

	client, err := NewClient(server.URL, "test-token")
	require.NoError(t, err)

	_, err = client.Fetch(context.Background(), FetchParams{StartDate: "2025-01-01", EndDate: "2025-01-02"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "token expired")
}

func TestFetch_IsFirstCall(t *testing.T) {
	assert.True(t, Record{Type: CallTypeFirstCall}.IsFirstCall())
	assert.False(t, Record{Type: CallTypeUnclassified}.IsFirstCall())
	assert.False(t, Record{Type: 3}.IsFirstCall())
}
