package history_test

import (
	"path"
	"testing"
	"time"

	"github.com/robgonnella/bumpver/internal/exception"
	"github.com/robgonnella/bumpver/internal/history"
	"github.com/robgonnella/bumpver/internal/test_util"
	"github.com/stretchr/testify/assert"
)

func TestHistorySqliteRepo(t *testing.T) {
	testDBFile := path.Join(t.TempDir(), "history.db")

	db, err := test_util.GetDBConnection(testDBFile)

	if err != nil {
		t.Logf("failed to create test db: %s", err.Error())
		t.FailNow()
	}

	if err := test_util.Migrate(db, &history.Record{}); err != nil {
		t.Logf("failed to migrate test db: %s", err.Error())
		t.FailNow()
	}

	repo := history.NewSqliteRepo(db)

	older := &history.Record{
		ID:         "id-1",
		Project:    "dmiid",
		OldVersion: "0.1.0",
		NewVersion: "0.1.1",
		Action:     "patch",
		Committed:  true,
		Tagged:     true,
		CreatedAt:  time.Now().Add(-time.Hour),
	}

	newer := &history.Record{
		ID:         "id-2",
		Project:    "dmiid",
		OldVersion: "0.1.1",
		NewVersion: "0.2.0",
		Action:     "minor",
		CreatedAt:  time.Now(),
	}

	t.Run("GetLatestRecord returns record not found error", func(st *testing.T) {
		_, err := repo.GetLatestRecord()

		assert.Error(st, err)
		assert.Equal(st, exception.ErrRecordNotFound, err)
	})

	t.Run("adds records", func(st *testing.T) {
		created, err := repo.AddRecord(older)

		assert.NoError(st, err)
		assert.Equal(st, older, created)

		_, err = repo.AddRecord(newer)

		assert.NoError(st, err)
	})

	t.Run("gets all records newest first", func(st *testing.T) {
		records, err := repo.GetAllRecords()

		assert.NoError(st, err)
		assert.Equal(st, 2, len(records))
		assert.Equal(st, "id-2", records[0].ID)
		assert.Equal(st, "id-1", records[1].ID)
	})

	t.Run("gets latest record", func(st *testing.T) {
		record, err := repo.GetLatestRecord()

		assert.NoError(st, err)
		assert.Equal(st, "0.2.0", record.NewVersion)
	})
}
