package jobs

import (
	"context"
	"errors"
	"testing"

	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/enttest"
	"github.com/kizunaworks/backoffice/ent/syncrun"
	"github.com/kizunaworks/backoffice/pkg/calllog"
	"github.com/kizunaworks/backoffice/pkg/callsync"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubFetcher struct {
	result *calllog.FetchResult
	err    error
}

func (s *stubFetcher) Fetch(ctx context.Context, params calllog.FetchParams) (*calllog.FetchResult, error) {
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &calllog.FetchResult{}, nil
}

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func TestRunScheduledSync_RecordsRun(t *testing.T) {
	client := setupTestDB(t)
	svc := callsync.NewService(client, &stubFetcher{}, nil, nil)

	cm := NewCronManager(svc, nil, nil, nil, "", 30, nil)

	err := cm.RunScheduledSync(context.Background())
	require.NoError(t, err)

	run, err := client.SyncRun.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, syncrun.TriggerScheduled, run.Trigger)
	assert.Equal(t, syncrun.StatusCompleted, run.Status)
}

func TestRunScheduledSync_RecordsFailure(t *testing.T) {
	client := setupTestDB(t)
	svc := callsync.NewService(client, &stubFetcher{err: errors.New("upstream down")}, nil, nil)

	cm := NewCronManager(svc, nil, nil, nil, "", 30, nil)

	err := cm.RunScheduledSync(context.Background())
	require.Error(t, err)

	run, err := client.SyncRun.Query().Only(context.Background())
	require.NoError(t, err)
	assert.Equal(t, syncrun.StatusFailed, run.Status)
	assert.Contains(t, run.Error, "upstream down")
}

func TestSetupJobs(t *testing.T) {
	client := setupTestDB(t)
	svc := callsync.NewService(client, &stubFetcher{}, nil, nil)

	cm := NewCronManager(svc, nil, nil, nil, "", 15, nil)
	require.NoError(t, cm.SetupJobs())

	cm.Start()
	cm.Stop()
}
