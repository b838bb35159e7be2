package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dinespot/dinesync/models"
)

func restaurantRow(rest models.Restaurant) *sqlmock.Rows {
	return sqlmock.NewRows(restaurantColumns).
		AddRow(rest.ID, rest.Name, rest.Description, rest.Category, rest.PriceTier,
			rest.Latitude, rest.Longitude, rest.ImageURL, rest.Phone, rest.Website,
			rest.Rating, rest.RatingCount, rest.OwnerID, rest.CreatedAt, rest.UpdatedAt, string(rest.SyncStatus))
}

func TestRestaurantRepository_Upsert_StampsZeroTimestamps(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	rest := models.Restaurant{ID: "rest1", Name: "Blue Basil"}

	mock.ExpectExec("INSERT INTO restaurants").
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Upsert(context.Background(), &rest))
	assert.False(t, rest.CreatedAt.IsZero())
	assert.False(t, rest.UpdatedAt.IsZero())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	now := time.Now().UTC()
	want := models.Restaurant{
		ID: "rest1", Name: "Blue Basil", Category: "thai", PriceTier: 2,
		Rating: 4.5, RatingCount: 12, CreatedAt: now, UpdatedAt: now,
		SyncStatus: models.StatusSynced,
	}

	mock.ExpectQuery("SELECT (.+) FROM restaurants WHERE id = \\?").
		WithArgs("rest1").
		WillReturnRows(restaurantRow(want))

	got, err := repo.GetByID(context.Background(), "rest1")
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestRestaurantRepository_GetByID_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectQuery("SELECT (.+) FROM restaurants WHERE id = \\?").
		WithArgs("missing").
		WillReturnRows(sqlmock.NewRows(restaurantColumns))

	_, err := repo.GetByID(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestRestaurantRepository_UpsertWithPending_SingleTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	rest := models.Restaurant{ID: "rest1", Name: "Blue Basil"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO restaurants").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, operation FROM pending_operations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "operation"}))
	mock.ExpectExec("INSERT INTO pending_operations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.UpsertWithPending(context.Background(), &rest, models.OpInsert))
	assert.Equal(t, models.StatusPending, rest.SyncStatus)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_UpsertWithPending_RollsBackOnQueueFailure(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	rest := models.Restaurant{ID: "rest1", Name: "Blue Basil"}

	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO restaurants").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery("SELECT id, operation FROM pending_operations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "operation"}))
	mock.ExpectExec("INSERT INTO pending_operations").
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	err := repo.UpsertWithPending(context.Background(), &rest, models.OpInsert)
	require.Error(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_DeleteWithPending_QueuesSnapshot(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	now := time.Now().UTC()
	existing := models.Restaurant{ID: "rest1", Name: "Blue Basil", CreatedAt: now, UpdatedAt: now, SyncStatus: models.StatusSynced}

	mock.ExpectQuery("SELECT (.+) FROM restaurants WHERE id = \\?").
		WithArgs("rest1").
		WillReturnRows(restaurantRow(existing))
	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM restaurants").
		WithArgs("rest1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT id, operation FROM pending_operations").
		WillReturnRows(sqlmock.NewRows([]string{"id", "operation"}))
	mock.ExpectExec("INSERT INTO pending_operations").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	require.NoError(t, repo.DeleteWithPending(context.Background(), "rest1"))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_SetSyncStatus(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	mock.ExpectExec("UPDATE restaurants SET sync_status = \\?").
		WithArgs(string(models.StatusSynced), "rest1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.SetSyncStatus(context.Background(), "rest1", models.StatusSynced))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestRestaurantRepository_List_OrderedByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewRestaurantRepository(db)

	now := time.Now().UTC()
	a := models.Restaurant{ID: "r1", Name: "Aroy Dee", CreatedAt: now, UpdatedAt: now, SyncStatus: models.StatusSynced}
	b := models.Restaurant{ID: "r2", Name: "Blue Basil", CreatedAt: now, UpdatedAt: now, SyncStatus: models.StatusSynced}

	rows := sqlmock.NewRows(restaurantColumns)
	for _, rest := range []models.Restaurant{a, b} {
		rows.AddRow(rest.ID, rest.Name, rest.Description, rest.Category, rest.PriceTier,
			rest.Latitude, rest.Longitude, rest.ImageURL, rest.Phone, rest.Website,
			rest.Rating, rest.RatingCount, rest.OwnerID, rest.CreatedAt, rest.UpdatedAt, string(rest.SyncStatus))
	}
	mock.ExpectQuery("SELECT (.+) FROM restaurants ORDER BY name ASC").
		WillReturnRows(rows)

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Aroy Dee", got[0].Name)
}
