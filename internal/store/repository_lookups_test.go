package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/foodblog/go-food-blog/internal/logger"
	"github.com/foodblog/go-food-blog/models"
)

func newTestLookupRepo(t *testing.T) (*lookupRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()

	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &lookupRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveLookups_ReplacesKindInOneTransaction(t *testing.T) {
	repo, mock, db := newTestLookupRepo(t)
	defer db.Close()

	items := []models.LookupItem{
		{ID: "c-1", Name: "Breakfast"},
		{ID: "c-2", Name: "Dinner"},
	}

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM lookups").
		WithArgs("categories").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO lookups").
		WithArgs("categories", "c-1", "Breakfast", "categories", "c-2", "Dinner").
		WillReturnResult(sqlmock.NewResult(2, 2))
	mock.ExpectCommit()

	if err := repo.SaveLookups(context.Background(), "categories", items); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveLookups_EmptyListOnlyClears(t *testing.T) {
	repo, mock, db := newTestLookupRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM lookups").
		WithArgs("tags").
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectCommit()

	if err := repo.SaveLookups(context.Background(), "tags", nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestSaveLookups_InsertErrorRollsBack(t *testing.T) {
	repo, mock, db := newTestLookupRepo(t)
	defer db.Close()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM lookups").
		WithArgs("cuisines").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("INSERT INTO lookups").
		WillReturnError(errors.New("constraint failed"))
	mock.ExpectRollback()

	err := repo.SaveLookups(context.Background(), "cuisines", []models.LookupItem{{ID: "x", Name: "X"}})
	if err == nil {
		t.Fatal("expected an error")
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestLoadLookups_ReturnsNameOrderedItems(t *testing.T) {
	repo, mock, db := newTestLookupRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM lookups").
		WithArgs("dietary-tags").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).
			AddRow("dt-2", "Gluten free").
			AddRow("dt-1", "Vegan"))

	items, err := repo.LoadLookups(context.Background(), "dietary-tags")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 2 || items[0].Name != "Gluten free" {
		t.Errorf("unexpected items: %+v", items)
	}
}

func TestLoadLookups_EmptyCache(t *testing.T) {
	repo, mock, db := newTestLookupRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT id, name FROM lookups").
		WithArgs("categories").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	items, err := repo.LoadLookups(context.Background(), "categories")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("expected no items, got %+v", items)
	}
}
