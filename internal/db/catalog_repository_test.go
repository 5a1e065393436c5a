package db

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unklstewy/airforcenone/internal/errors"
	"github.com/unklstewy/airforcenone/pkg/registry"
)

var catalogColumns = []string{
	"icao", "country", "description", "registration", "type_code", "operator",
	"icao_type", "cmpg", "category", "tag1", "tag2", "tag3", "link",
}

func newMockRepository(t *testing.T) (*CatalogRepository, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })
	return NewCatalogRepository(New(sqlDB, DriverPostgres)), mock
}

// TestImport tests the transactional upsert.
func TestImport(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO known_aircraft"))
	prep.ExpectExec().
		WithArgs("ae001f", "USA", "Air Force One", "82-8000", "VC25", "", "", "", "", "Presidential", "", "", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	prep.ExpectExec().
		WithArgs("3c4b26", "", "", "", "", "German Air Force", "A359", "Mil", "GAF", "a", "b", "c", "").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	n, err := repo.Import(context.Background(), []registry.Record{
		{ICAO: " AE001F", Country: "USA", Description: "Air Force One", Registration: "82-8000", TypeCode: "VC25", Tags: []string{"Presidential"}},
		{ICAO: "bad"},
		{ICAO: "3c4b26", Operator: "German Air Force", ICAOType: "A359", CMPG: "Mil", Category: "GAF", Tags: []string{"a", "b", "c", "d"}},
	})

	require.NoError(t, err)
	assert.Equal(t, 2, n)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestImportRollback tests that a failed row rolls back the transaction.
func TestImportRollback(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectBegin()
	prep := mock.ExpectPrepare(regexp.QuoteMeta("INSERT INTO known_aircraft"))
	prep.ExpectExec().WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	n, err := repo.Import(context.Background(), []registry.Record{{ICAO: "ae001f"}})

	require.Error(t, err)
	assert.Zero(t, n)
	assert.Contains(t, err.Error(), "ae001f")
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestLoadAll tests reading records back.
func TestLoadAll(t *testing.T) {
	repo, mock := newMockRepository(t)

	rows := sqlmock.NewRows(catalogColumns).
		AddRow("0d0abc", "", "", "XC-LOK", "Boeing 787-8", "Mexican Government", "B788", "Gov", "Dictator Alert", "", "", "", "").
		AddRow("ae001f", "USA", "Air Force One", "82-8000", "VC25", "", "", "", "", "Presidential", "", "SAM", "https://example.org")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT icao, country")).WillReturnRows(rows)

	records, err := repo.LoadAll(context.Background())

	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Dictator Alert", records[0].Category)
	assert.Nil(t, records[0].Tags)
	assert.Equal(t, []string{"Presidential", "SAM"}, records[1].Tags)
	assert.Equal(t, "https://example.org", records[1].Link)
	assert.NoError(t, mock.ExpectationsWereMet())
}

// TestLoadRegistryFault tests that a query failure yields an empty registry.
func TestLoadRegistryFault(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT icao, country")).WillReturnError(errors.New("relation \"known_aircraft\" does not exist"))

	reg, err := repo.LoadRegistry(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, registry.ErrCatalogLoad))
	require.NotNil(t, reg)
	assert.Zero(t, reg.Len())
}

// TestCount tests the row count.
func TestCount(t *testing.T) {
	repo, mock := newMockRepository(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM known_aircraft")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(169))

	n, err := repo.Count(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 169, n)
}
