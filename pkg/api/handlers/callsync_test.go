package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/enttest"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/ent/user"
	"github.com/kizunaworks/backoffice/pkg/cache"
	"github.com/kizunaworks/backoffice/pkg/calllog"
	"github.com/kizunaworks/backoffice/pkg/callsync"
	"github.com/kizunaworks/backoffice/pkg/models"
	"github.com/kizunaworks/backoffice/pkg/namemap"
	"github.com/labstack/echo/v4"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFetcher struct {
	records []calllog.Record
	err     error
}

func (f *fakeFetcher) Fetch(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
	if f.err != nil {
		return nil, f.err
	}
	if params.Page > 1 {
		return &calllog.FetchResult{TotalCount: len(f.records)}, nil
	}
	return &calllog.FetchResult{Records: f.records, TotalCount: len(f.records)}, nil
}

// setupCallSyncTest wires a handler against an in-memory database and Redis.
func setupCallSyncTest(t *testing.T, fetcher callsync.Fetcher) (*ent.Client, *CallSyncHandler) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	mr := miniredis.RunT(t)
	cacheClient, err := cache.NewClient("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { cacheClient.Close() })

	names := namemap.New(map[string]string{"JEYI": "金帝利"})
	svc := callsync.NewService(client, fetcher, names, nil)
	return client, NewCallSyncHandler(svc, cacheClient, nil)
}

func seedRep(t *testing.T, client *ent.Client, name string) *ent.User {
	u, err := client.User.Create().
		SetName(name).
		SetEmail(name + "@example.com").
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func newContext(t *testing.T, method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, nil)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestTriggerSync_MergesAndReturnsRun(t *testing.T) {
	fetcher := &fakeFetcher{records: []calllog.Record{
		{
			RecordID:    10,
			Username:    "JEYI",
			Company:     "焼肉きずな",
			PhoneNumber: "090-1234-5678",
			CreatedAt:   "2025-11-07T02:00:00Z",
			IsOut:       1,
			Type:        calllog.CallTypeFirstCall,
		},
	}}
	client, h := setupCallSyncTest(t, fetcher)
	seedRep(t, client, "金帝利")

	c, rec := newContext(t, http.MethodPost,
		"/api/v1/integrations/calllog/sync?since=2025-11-07&until=2025-11-08")

	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "manual", resp.Trigger)
	assert.Equal(t, "completed", resp.Status)
	assert.Equal(t, 1, resp.Inserted)
	assert.Equal(t, "2025-11-07", resp.StartDate)

	count, err := client.SalesContact.Query().
		Where(salescontact.PhoneEQ("09012345678")).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	// The run is persisted for later status queries
	run, err := client.SyncRun.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, syncrun.TriggerManual, run.Trigger)
}

func TestTriggerSync_InvalidWindow(t *testing.T) {
	_, h := setupCallSyncTest(t, &fakeFetcher{})

	c, rec := newContext(t, http.MethodPost,
		"/api/v1/integrations/calllog/sync?since=2025-11-08&until=2025-11-07")

	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestTriggerSync_UpstreamFailureReturnsPartialRun(t *testing.T) {
	_, h := setupCallSyncTest(t, &fakeFetcher{err: errors.New("status 502")})

	c, rec := newContext(t, http.MethodPost,
		"/api/v1/integrations/calllog/sync?since=2025-11-07&until=2025-11-08")

	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusBadGateway, rec.Code)

	var resp models.SyncRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "failed", resp.Status)
	assert.NotEmpty(t, resp.Error)
	assert.Equal(t, 0, resp.Inserted)
}

func TestPeekRecords_DoesNotMerge(t *testing.T) {
	fetcher := &fakeFetcher{records: []calllog.Record{
		{RecordID: 1, Username: "JEYI", PhoneNumber: "0312345678", Type: calllog.CallTypeFirstCall},
	}}
	client, h := setupCallSyncTest(t, fetcher)

	c, rec := newContext(t, http.MethodGet,
		"/api/v1/integrations/calllog/peek?since=2025-11-07&until=2025-11-08")

	require.NoError(t, h.PeekRecords(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp callsync.PeekResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Records, 1)
	assert.Equal(t, 1, resp.TotalCount)

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count, "peek must not write to the ledger")
}

func TestCheckOwnerDate_ResolvesAlias(t *testing.T) {
	client, h := setupCallSyncTest(t, &fakeFetcher{})
	u := seedRep(t, client, "金帝利")

	_, err := client.SalesContact.Create().
		SetOwner(u).
		SetDate("2025-11-07").
		SetOccurredAt(time.Date(2025, 11, 7, 2, 0, 0, 0, time.UTC)).
		SetManagerName("金帝利").
		SetCompanyName("焼肉きずな").
		SetPhone("09012345678").
		Save(context.Background())
	require.NoError(t, err)

	// Query by the platform alias, not the canonical name
	c, rec := newContext(t, http.MethodGet,
		"/api/v1/integrations/calllog/check?owner=JEYI&date=2025-11-07")

	require.NoError(t, h.CheckOwnerDate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.CheckResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Count)
	assert.Equal(t, "JEYI", resp.Owner)
}

func TestCheckOwnerDate_RequiresParams(t *testing.T) {
	_, h := setupCallSyncTest(t, &fakeFetcher{})

	c, rec := newContext(t, http.MethodGet, "/api/v1/integrations/calllog/check?date=2025-11-07")
	require.NoError(t, h.CheckOwnerDate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	c, rec = newContext(t, http.MethodGet, "/api/v1/integrations/calllog/check?owner=JEYI&date=07-11-2025")
	require.NoError(t, h.CheckOwnerDate(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSyncStatus_NoRuns(t *testing.T) {
	_, h := setupCallSyncTest(t, &fakeFetcher{})

	c, rec := newContext(t, http.MethodGet, "/api/v1/integrations/calllog/status")
	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSyncStatus_ServedFromCacheAfterSync(t *testing.T) {
	fetcher := &fakeFetcher{records: []calllog.Record{
		{
			RecordID:    11,
			Username:    "JEYI",
			Company:     "焼肉きずな",
			PhoneNumber: "090-1111-2222",
			CreatedAt:   "2025-11-07T03:00:00Z",
			IsOut:       1,
			Type:        calllog.CallTypeFirstCall,
		},
	}}
	client, h := setupCallSyncTest(t, fetcher)
	seedRep(t, client, "金帝利")

	c, rec := newContext(t, http.MethodPost,
		"/api/v1/integrations/calllog/sync?since=2025-11-07&until=2025-11-08")
	require.NoError(t, h.TriggerSync(c))
	require.Equal(t, http.StatusOK, rec.Code)

	c, rec = newContext(t, http.MethodGet, "/api/v1/integrations/calllog/status")
	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "manual", resp.Trigger)
	assert.Equal(t, 1, resp.Inserted)
}

func TestSyncStatus_FallsBackToDatabase(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := callsync.NewService(client, &fakeFetcher{}, nil, nil)
	h := NewCallSyncHandler(svc, nil, nil) // no cache wired

	_, err := client.SyncRun.Create().
		SetTrigger(syncrun.TriggerScheduled).
		SetStartDate("2025-11-07").
		SetEndDate("2025-11-07").
		SetInserted(3).
		SetStatus(syncrun.StatusCompleted).
		SetStartedAt(time.Now()).
		SetFinishedAt(time.Now()).
		Save(context.Background())
	require.NoError(t, err)

	c, rec := newContext(t, http.MethodGet, "/api/v1/integrations/calllog/status")
	require.NoError(t, h.SyncStatus(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "scheduled", resp.Trigger)
	assert.Equal(t, 3, resp.Inserted)
}

func TestTriggerSync_ReportsDuplicateOwnershipSkips(t *testing.T) {
	fetcher := &fakeFetcher{records: []calllog.Record{
		{
			RecordID:    20,
			Username:    "JEYI",
			Company:     "居酒屋大将",
			PhoneNumber: "03-9999-8888",
			CreatedAt:   "2025-11-07T05:00:00Z",
			IsOut:       1,
			Type:        calllog.CallTypeUnclassified,
		},
	}}
	client, h := setupCallSyncTest(t, fetcher)
	owner := seedRep(t, client, "金帝利")
	other := seedRep(t, client, "山田太郎")
	_ = other

	// The number already belongs to an active rep
	_, err := client.SalesContact.Create().
		SetOwner(owner).
		SetDate("2025-11-01").
		SetOccurredAt(time.Date(2025, 11, 1, 1, 0, 0, 0, time.UTC)).
		SetManagerName("金帝利").
		SetCompanyName("居酒屋大将").
		SetPhone("0399998888").
		Save(context.Background())
	require.NoError(t, err)

	c, rec := newContext(t, http.MethodPost,
		"/api/v1/integrations/calllog/sync?since=2025-11-07&until=2025-11-08")
	require.NoError(t, h.TriggerSync(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.SyncRunResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 0, resp.Inserted)
	assert.Equal(t, 1, resp.Skipped)
	assert.Equal(t, 1, resp.SkipReasons["duplicate_ownership"])

	// Existing ownership is untouched
	count, err := client.SalesContact.Query().
		Where(salescontact.HasOwnerWith(user.NameEQ("金帝利"))).
		Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}
