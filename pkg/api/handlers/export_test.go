package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/kizunaworks/backoffice/ent/enttest"
	"github.com/kizunaworks/backoffice/pkg/export"
	"github.com/kizunaworks/backoffice/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateExport_ReturnsFileSummary(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	u, err := client.User.Create().
		SetName("金帝利").
		SetEmail("jey@example.com").
		SetPasswordHash("hashed").
		Save(context.Background())
	require.NoError(t, err)

	_, err = client.SalesContact.Create().
		SetOwner(u).
		SetDate("2025-11-07").
		SetOccurredAt(time.Date(2025, 11, 7, 2, 0, 0, 0, time.UTC)).
		SetManagerName("金帝利").
		SetCompanyName("焼肉きずな").
		SetPhone("09012345678").
		Save(context.Background())
	require.NoError(t, err)

	svc := export.NewService(client, nil, t.TempDir())
	h := NewExportHandler(svc, nil)

	c, rec := postJSON(t, "/api/v1/exports",
		`{"start_date":"2025-11-01","end_date":"2025-11-30","format":"csv"}`)

	require.NoError(t, h.CreateExport(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp models.ExportResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.RowCount)
	assert.Equal(t, "csv", resp.Format)
	assert.NotEmpty(t, resp.FileName)
}

func TestCreateExport_RejectsBadDates(t *testing.T) {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })

	svc := export.NewService(client, nil, t.TempDir())
	h := NewExportHandler(svc, nil)

	c, rec := postJSON(t, "/api/v1/exports",
		`{"start_date":"01/11/2025","end_date":"2025-11-30"}`)

	require.NoError(t, h.CreateExport(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
