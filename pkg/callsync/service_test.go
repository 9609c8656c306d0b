package callsync

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/enttest"
	"github.com/kizunaworks/backoffice/ent/salescontact"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/ent/user"
	"github.com/kizunaworks/backoffice/pkg/calllog"
	"github.com/kizunaworks/backoffice/pkg/namemap"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// MockFetcher is a mock implementation of Fetcher for testing
type MockFetcher struct {
	FetchFunc func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error)
	Calls     []calllog.FetchParams
}

func (m *MockFetcher) Fetch(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
	m.Calls = append(m.Calls, params)
	if m.FetchFunc != nil {
		return m.FetchFunc(ctx, params)
	}
	return &calllog.FetchResult{}, nil
}

// singlePage returns a fetcher serving one page of records on every call.
func singlePage(records ...calllog.Record) *MockFetcher {
	return &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			if params.Page > 1 {
				return &calllog.FetchResult{TotalCount: len(records)}, nil
			}
			return &calllog.FetchResult{Records: records, TotalCount: len(records)}, nil
		},
	}
}

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func createTestUser(t *testing.T, client *ent.Client, name string, status user.EmploymentStatus) *ent.User {
	u, err := client.User.Create().
		SetName(name).
		SetEmail(name + "@example.com").
		SetPasswordHash("hashed").
		SetEmploymentStatus(status).
		Save(context.Background())
	require.NoError(t, err)
	return u
}

func testWindow() (time.Time, time.Time) {
	since := time.Date(2025, 11, 7, 0, 0, 0, 0, time.UTC)
	until := time.Date(2025, 11, 8, 0, 0, 0, 0, time.UTC)
	return since, until
}

func TestSync_InsertsMappedFirstCall(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	fetcher := singlePage(calllog.Record{
		RecordID:    1,
		Username:    "JEYI",
		Company:     "焼肉きずな",
		PhoneNumber: "090-1234-5678",
		CreatedAt:   "2025-11-07T02:00:00Z",
		IsOut:       1,
		Type:        calllog.CallTypeFirstCall,
	})

	service := NewService(client, fetcher, namemap.New(map[string]string{"JEYI": "金帝利"}), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Skipped)

	row, err := client.SalesContact.Query().
		Where(salescontact.ExternalCallIDEQ("1")).
		Only(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "金帝利", row.ManagerName)
	assert.Equal(t, "09012345678", row.Phone)
	assert.Equal(t, "焼肉きずな", row.CompanyName)
	assert.Equal(t, "2025-11-07", row.Date)
	assert.Equal(t, "電話", row.ContactMethod)
	assert.Equal(t, "未返信", row.Status)
	require.NotNil(t, row.ExternalSource)
	assert.Equal(t, ExternalSource, *row.ExternalSource)
}

func TestSync_ResendUpdatesInPlace(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)
	names := namemap.New(map[string]string{"JEYI": "金帝利"})

	record := calllog.Record{
		RecordID:    1,
		Username:    "JEYI",
		PhoneNumber: "090-1234-5678",
		CreatedAt:   "2025-11-07T02:00:00Z",
		Type:        calllog.CallTypeFirstCall,
	}

	since, until := testWindow()

	service := NewService(client, singlePage(record), names, nil)
	_, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	// The platform edited the phone number; the same external id comes back.
	record.PhoneNumber = "080-9999-0000"
	service = NewService(client, singlePage(record), names, nil)
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Updated)

	rows, err := client.SalesContact.Query().All(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "08099990000", rows[0].Phone)
}

func TestSync_RerunIsIdempotent(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)
	names := namemap.New(map[string]string{"JEYI": "金帝利"})

	records := []calllog.Record{
		{RecordID: 1, Username: "JEYI", PhoneNumber: "090-1111-1111", CreatedAt: "2025-11-07T01:00:00", Type: calllog.CallTypeFirstCall},
		{RecordID: 2, Username: "JEYI", PhoneNumber: "090-2222-2222", CreatedAt: "2025-11-07T02:00:00", Type: calllog.CallTypeFirstCall},
	}

	since, until := testWindow()
	service := NewService(client, singlePage(records...), names, nil)

	first, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Inserted)

	second, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)
	assert.Equal(t, 0, second.Inserted)
	assert.Equal(t, 2, second.Updated)

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSync_EmptyPhoneNonFirstCallSkipped(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	fetcher := singlePage(calllog.Record{
		RecordID:  7,
		Username:  "金帝利",
		CreatedAt: "2025-11-07T03:00:00",
		Type:      calllog.CallTypeUnclassified,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.SkipReasons[SkipNoPhone])

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSync_ActiveOwnerBlocksReclaim(t *testing.T) {
	client := setupTestDB(t)
	holder := createTestUser(t, client, "山下南", user.EmploymentStatusActive)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	// 山下南 already owns this phone number via an earlier synced record.
	_, err := client.SalesContact.Create().
		SetDate("2025-11-01").
		SetManagerName("山下南").
		SetPhone("09012345678").
		SetOwnerID(holder.ID).
		SetExternalCallID("100").
		SetExternalSource(ExternalSource).
		Save(context.Background())
	require.NoError(t, err)

	fetcher := singlePage(calllog.Record{
		RecordID:    101,
		Username:    "金帝利",
		PhoneNumber: "090-1234-5678",
		CreatedAt:   "2025-11-07T04:00:00",
		Type:        calllog.CallTypeUnclassified,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.SkipReasons[SkipDuplicateOwnership])

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSync_FirstCallBypassesOwnershipGuard(t *testing.T) {
	client := setupTestDB(t)
	holder := createTestUser(t, client, "山下南", user.EmploymentStatusActive)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	_, err := client.SalesContact.Create().
		SetDate("2025-11-01").
		SetManagerName("山下南").
		SetPhone("09012345678").
		SetOwnerID(holder.ID).
		SetExternalCallID("100").
		SetExternalSource(ExternalSource).
		Save(context.Background())
	require.NoError(t, err)

	fetcher := singlePage(calllog.Record{
		RecordID:    101,
		Username:    "金帝利",
		PhoneNumber: "090-1234-5678",
		CreatedAt:   "2025-11-07T04:00:00",
		Type:        calllog.CallTypeFirstCall,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.Skipped)
}

func TestSync_TerminatedOwnerDoesNotBlockReclaim(t *testing.T) {
	client := setupTestDB(t)
	former := createTestUser(t, client, "石井ひとみ", user.EmploymentStatusTerminated)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	_, err := client.SalesContact.Create().
		SetDate("2025-10-01").
		SetManagerName("石井ひとみ").
		SetPhone("09012345678").
		SetOwnerID(former.ID).
		SetExternalCallID("100").
		SetExternalSource(ExternalSource).
		Save(context.Background())
	require.NoError(t, err)

	fetcher := singlePage(calllog.Record{
		RecordID:    101,
		Username:    "金帝利",
		PhoneNumber: "090-1234-5678",
		CreatedAt:   "2025-11-07T04:00:00",
		Type:        calllog.CallTypeUnclassified,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 0, result.Skipped)

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestSync_UnmappedAgentSkipped(t *testing.T) {
	client := setupTestDB(t)

	fetcher := singlePage(calllog.Record{
		RecordID:    5,
		Username:    "NOBODY",
		PhoneNumber: "090-5555-5555",
		CreatedAt:   "2025-11-07T05:00:00",
		Type:        calllog.CallTypeFirstCall,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.SkipReasons[SkipUnmappedAgent])

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestSync_BlankAgentSkipped(t *testing.T) {
	client := setupTestDB(t)

	fetcher := singlePage(calllog.Record{
		RecordID:    6,
		Username:    "   ",
		PhoneNumber: "090-6666-6666",
		CreatedAt:   "2025-11-07T05:00:00",
		Type:        calllog.CallTypeFirstCall,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Skipped)
	assert.Equal(t, 1, result.SkipReasons[SkipUnmappedAgent])
}

func TestSync_MissingTimestampDefaultsToToday(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	fetcher := singlePage(calllog.Record{
		RecordID:    9,
		Username:    "金帝利",
		PhoneNumber: "090-9999-9999",
		Type:        calllog.CallTypeFirstCall,
	})

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)
	require.Equal(t, 1, result.Inserted)

	row, err := client.SalesContact.Query().
		Where(salescontact.ExternalCallIDEQ("9")).
		Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, time.Now().Format("2006-01-02"), row.Date)
}

func TestSync_WholeDayWindowContract(t *testing.T) {
	client := setupTestDB(t)

	fetcher := &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			return &calllog.FetchResult{}, nil
		},
	}

	service := NewService(client, fetcher, namemap.New(nil), nil)

	// Mid-day boundaries collapse to whole days: the upstream query contract
	// cannot represent sub-day precision.
	since := time.Date(2025, 11, 7, 14, 30, 0, 0, time.UTC)
	until := time.Date(2025, 11, 8, 2, 15, 0, 0, time.UTC)

	_, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	require.Len(t, fetcher.Calls, 1)
	assert.Equal(t, "2025-11-07", fetcher.Calls[0].StartDate)
	assert.Equal(t, "2025-11-08", fetcher.Calls[0].EndDate)
	assert.True(t, fetcher.Calls[0].OutboundOnly)
}

func TestSync_PaginatesUsingLatestTotal(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	makeRecords := func(from, n int) []calllog.Record {
		records := make([]calllog.Record, 0, n)
		for i := 0; i < n; i++ {
			records = append(records, calllog.Record{
				RecordID:    int64(from + i),
				Username:    "金帝利",
				PhoneNumber: fmt.Sprintf("090-0000-%04d", from+i),
				CreatedAt:   "2025-11-07T01:00:00",
				Type:        calllog.CallTypeFirstCall,
			})
		}
		return records
	}

	// The upstream log is still being written: the total grows between pages.
	fetcher := &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			switch params.Page {
			case 1:
				return &calllog.FetchResult{Records: makeRecords(1, 2), TotalCount: 3}, nil
			case 2:
				return &calllog.FetchResult{Records: makeRecords(3, 2), TotalCount: 4}, nil
			default:
				return &calllog.FetchResult{TotalCount: 4}, nil
			}
		},
	}

	service := NewService(client, fetcher, namemap.New(nil), nil)
	service.pageSize = 2

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 4, result.Inserted)
	assert.Len(t, fetcher.Calls, 2)
}

func TestSync_StopsOnEmptyPage(t *testing.T) {
	client := setupTestDB(t)

	fetcher := &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			// Total promises more than the data actually delivers.
			return &calllog.FetchResult{TotalCount: 500}, nil
		},
	}

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Inserted)
	assert.Len(t, fetcher.Calls, 1)
}

func TestSync_UpstreamFailureReturnsPartialCounts(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	fetcher := &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			if params.Page == 1 {
				return &calllog.FetchResult{
					Records: []calllog.Record{
						{RecordID: 1, Username: "金帝利", PhoneNumber: "090-1111-1111", CreatedAt: "2025-11-07T01:00:00", Type: calllog.CallTypeFirstCall},
						{RecordID: 2, Username: "金帝利", PhoneNumber: "090-2222-2222", CreatedAt: "2025-11-07T02:00:00", Type: calllog.CallTypeFirstCall},
					},
					TotalCount: 4,
				}, nil
			}
			return nil, errors.New("upstream exploded")
		},
	}

	service := NewService(client, fetcher, namemap.New(nil), nil)
	service.pageSize = 2

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page 2")

	// Completed merges from page 1 are not rolled back.
	assert.Equal(t, 2, result.Inserted)
	count, cerr := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, cerr)
	assert.Equal(t, 2, count)
}

func TestSync_RetriesTransientFetchFailure(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	attempts := 0
	fetcher := &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			attempts++
			if attempts == 1 {
				return nil, errors.New("connection reset")
			}
			return &calllog.FetchResult{
				Records: []calllog.Record{
					{RecordID: 1, Username: "金帝利", PhoneNumber: "090-1111-1111", CreatedAt: "2025-11-07T01:00:00", Type: calllog.CallTypeFirstCall},
				},
				TotalCount: 1,
			}, nil
		},
	}

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	result, err := service.Sync(context.Background(), since, until)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Inserted)
	assert.Equal(t, 2, attempts)
}

func TestSync_SingleFlight(t *testing.T) {
	client := setupTestDB(t)

	release := make(chan struct{})
	started := make(chan struct{})
	fetcher := &MockFetcher{
		FetchFunc: func(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
			close(started)
			<-release
			return &calllog.FetchResult{}, nil
		},
	}

	service := NewService(client, fetcher, namemap.New(nil), nil)

	since, until := testWindow()
	done := make(chan struct{})
	go func() {
		defer close(done)
		_, _ = service.Sync(context.Background(), since, until)
	}()

	<-started
	_, err := service.Sync(context.Background(), since, until)
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	<-done
}

func TestPeek_FetchesWithoutMerging(t *testing.T) {
	client := setupTestDB(t)
	createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	fetcher := singlePage(calllog.Record{
		RecordID:    1,
		Username:    "JEYI",
		PhoneNumber: "090-1234-5678",
		CreatedAt:   "2025-11-07T02:00:00",
		Type:        calllog.CallTypeFirstCall,
	})

	service := NewService(client, fetcher, namemap.New(map[string]string{"JEYI": "金帝利"}), nil)

	since, until := testWindow()
	peeked, err := service.Peek(context.Background(), since, until)
	require.NoError(t, err)

	assert.Equal(t, 1, peeked.TotalCount)
	require.Len(t, peeked.Records, 1)
	assert.Equal(t, "JEYI", peeked.Records[0].Username)

	count, err := client.SalesContact.Query().Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestCountByOwnerAndDate(t *testing.T) {
	client := setupTestDB(t)
	owner := createTestUser(t, client, "金帝利", user.EmploymentStatusActive)

	for i := 0; i < 3; i++ {
		_, err := client.SalesContact.Create().
			SetDate("2025-11-07").
			SetManagerName("金帝利").
			SetPhone(fmt.Sprintf("0900000%04d", i)).
			SetOwnerID(owner.ID).
			Save(context.Background())
		require.NoError(t, err)
	}
	_, err := client.SalesContact.Create().
		SetDate("2025-11-08").
		SetManagerName("金帝利").
		SetPhone("09099999999").
		SetOwnerID(owner.ID).
		Save(context.Background())
	require.NoError(t, err)

	service := NewService(client, &MockFetcher{}, namemap.New(map[string]string{"JEYI": "金帝利"}), nil)

	count, err := service.CountByOwnerAndDate(context.Background(), "金帝利", "2025-11-07")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	// The external alias resolves to the same owner.
	count, err = service.CountByOwnerAndDate(context.Background(), "JEYI", "2025-11-07")
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	_, err = service.CountByOwnerAndDate(context.Background(), "  ", "2025-11-07")
	assert.Error(t, err)
}

func TestRecordRunAndLastRun(t *testing.T) {
	client := setupTestDB(t)
	service := NewService(client, &MockFetcher{}, namemap.New(nil), nil)

	since, until := testWindow()

	_, err := service.RecordRun(context.Background(), syncrun.TriggerManual, since, until, time.Now().Add(-time.Minute),
		&Result{Inserted: 2, Updated: 1, Skipped: 1, SkipReasons: map[SkipReason]int{SkipNoPhone: 1}}, nil)
	require.NoError(t, err)

	failed, err := service.RecordRun(context.Background(), syncrun.TriggerScheduled, since, until, time.Now(),
		&Result{Inserted: 1}, errors.New("upstream down"))
	require.NoError(t, err)
	assert.Equal(t, syncrun.StatusFailed, failed.Status)
	assert.Equal(t, "upstream down", failed.Error)

	last, err := service.LastRun(context.Background())
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.Equal(t, syncrun.TriggerScheduled, last.Trigger)
	assert.Equal(t, 1, last.Inserted)
}

func TestLastRun_NoRuns(t *testing.T) {
	client := setupTestDB(t)
	service := NewService(client, &MockFetcher{}, namemap.New(nil), nil)

	last, err := service.LastRun(context.Background())
	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestToDateString(t *testing.T) {
	assert.Equal(t, "2025-11-07", toDateString("2025-11-07T11:13:25.123"))
	assert.Equal(t, "2025-11-07", toDateString("2025-11-07 11:13:25"))
	assert.Equal(t, "2025-11-07", toDateString("2025-11-07"))
	assert.Equal(t, time.Now().Format("2006-01-02"), toDateString(""))
}

func TestToOccurredAt(t *testing.T) {
	ts := toOccurredAt("2025-11-07T11:13:25")
	assert.Equal(t, 2025, ts.Year())
	assert.Equal(t, time.November, ts.Month())
	assert.Equal(t, 11, ts.Hour())

	ts = toOccurredAt("2025-11-07T02:00:00Z")
	assert.Equal(t, 2, ts.Hour())

	// Unparseable input falls back to roughly now.
	assert.WithinDuration(t, time.Now(), toOccurredAt("garbage"), time.Minute)
	assert.WithinDuration(t, time.Now(), toOccurredAt(""), time.Minute)
}
