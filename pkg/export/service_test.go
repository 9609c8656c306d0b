package export

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/kizunaworks/backoffice/ent"
	"github.com/kizunaworks/backoffice/ent/enttest"
	"github.com/kizunaworks/backoffice/pkg/models"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *ent.Client {
	client := enttest.Open(t, "sqlite3", "file:"+t.Name()+"?mode=memory&_fk=1")
	t.Cleanup(func() { client.Close() })
	return client
}

func seedContacts(t *testing.T, client *ent.Client) {
	ctx := context.Background()

	u, err := client.User.Create().
		SetName("金帝利").
		SetEmail("jey@example.com").
		SetPasswordHash("hashed").
		Save(ctx)
	require.NoError(t, err)

	for i, date := range []string{"2025-11-06", "2025-11-07", "2025-11-09"} {
		_, err := client.SalesContact.Create().
			SetOwner(u).
			SetDate(date).
			SetOccurredAt(time.Date(2025, 11, 6+i, 10, 0, 0, 0, time.UTC)).
			SetManagerName("金帝利").
			SetCompanyName("焼肉きずな").
			SetPhone("09012345678").
			Save(ctx)
		require.NoError(t, err)
	}
}

func TestCreateExport_CSV(t *testing.T) {
	client := setupTestDB(t)
	seedContacts(t, client)

	dir := t.TempDir()
	svc := NewService(client, nil, dir)

	resp, err := svc.CreateExport(context.Background(), models.ExportRequest{
		StartDate: "2025-11-06",
		EndDate:   "2025-11-07",
		Format:    "csv",
	})
	require.NoError(t, err)

	// Only rows inside the window
	assert.Equal(t, 2, resp.RowCount)
	assert.Equal(t, "csv", resp.Format)
	assert.Empty(t, resp.S3Key)

	file, err := os.Open(filepath.Join(dir, resp.FileName))
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 3) // header + 2 rows

	assert.Equal(t, exportHeaders, rows[0])
	assert.Equal(t, "2025-11-06", rows[1][1])
	assert.Equal(t, "金帝利", rows[1][3])
	assert.Equal(t, "2025-11-07", rows[2][1])
}

func TestCreateExport_XLSXDefault(t *testing.T) {
	client := setupTestDB(t)
	seedContacts(t, client)

	dir := t.TempDir()
	svc := NewService(client, nil, dir)

	resp, err := svc.CreateExport(context.Background(), models.ExportRequest{
		StartDate: "2025-11-01",
		EndDate:   "2025-11-30",
	})
	require.NoError(t, err)

	assert.Equal(t, "xlsx", resp.Format)
	assert.Equal(t, 3, resp.RowCount)

	_, err = os.Stat(filepath.Join(dir, resp.FileName))
	require.NoError(t, err)
}

func TestCreateExport_InvalidFormat(t *testing.T) {
	client := setupTestDB(t)

	svc := NewService(client, nil, t.TempDir())

	_, err := svc.CreateExport(context.Background(), models.ExportRequest{
		StartDate: "2025-11-06",
		EndDate:   "2025-11-07",
		Format:    "pdf",
	})
	assert.Error(t, err)
}
