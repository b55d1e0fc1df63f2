package postgres

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/njprem/ExploreIndia_APP_BackEnd/internal/domain"
)

func placeRows(places ...domain.Place) *sqlmock.Rows {
	rows := sqlmock.NewRows(placeColumns)
	for _, p := range places {
		rows.AddRow(p.ID.String(), p.Name, p.Description, p.Importance, p.ImageURL, p.Location, p.Category)
	}
	return rows
}

func TestPlaceRepository_ListAll(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	taj := domain.Place{ID: uuid.New(), Name: "Taj Mahal", Category: "Historical"}
	goa := domain.Place{ID: uuid.New(), Name: "Goa Beaches", Category: "Beach"}

	mock.ExpectQuery(regexp.QuoteMeta("FROM places ORDER BY seq ASC")).
		WillReturnRows(placeRows(taj, goa))

	places, err := repo.List(context.Background(), domain.PlaceListFilter{})
	require.NoError(t, err)
	require.Len(t, places, 2)
	assert.Equal(t, "Taj Mahal", places[0].Name)
	assert.Equal(t, "Goa Beaches", places[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPlaceRepository_ListByCategory(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	goa := domain.Place{ID: uuid.New(), Name: "Goa Beaches", Category: "Beach"}
	mock.ExpectQuery(regexp.QuoteMeta("WHERE category IN ($1,$2) ORDER BY seq ASC")).
		WithArgs("Beach", "Nature").
		WillReturnRows(placeRows(goa))

	places, err := repo.List(context.Background(), domain.PlaceListFilter{Categories: []string{"Beach", "Nature"}})
	require.NoError(t, err)
	require.Len(t, places, 1)
	assert.Equal(t, goa.ID, places[0].ID)
}

func TestPlaceRepository_ListEmptyIsNotNil(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	mock.ExpectQuery("FROM places").WillReturnRows(placeRows())

	places, err := repo.List(context.Background(), domain.PlaceListFilter{})
	require.NoError(t, err)
	assert.NotNil(t, places)
	assert.Empty(t, places)
}

func TestPlaceRepository_FindByIDNotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	mock.ExpectQuery("FROM places\\s+WHERE id = \\$1").
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(placeRows())

	_, err := repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestPlaceRepository_Create(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	in := domain.Place{
		Name:        "Varanasi",
		Description: "Spiritual capital",
		Importance:  "Oldest living city",
		ImageURL:    "https://example.com/varanasi.jpg",
		Location:    "Uttar Pradesh",
		Category:    "Spiritual",
	}
	id := uuid.New()
	want := in
	want.ID = id

	mock.ExpectQuery("INSERT INTO places").
		WithArgs(in.Name, in.Description, in.Importance, in.ImageURL, in.Location, in.Category).
		WillReturnRows(placeRows(want))

	got, err := repo.Create(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, want, *got)
}

func TestPlaceRepository_ExistingNames(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT name FROM places WHERE name = ANY($1)")).
		WithArgs(sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Taj Mahal"))

	names, err := repo.ExistingNames(context.Background(), []string{"Taj Mahal", "Himalayas"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Taj Mahal"}, names)
}

func TestPlaceRepository_ExistingNamesEmptyInput(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPlaceRepo(db)

	names, err := repo.ExistingNames(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, names)
	assert.NoError(t, mock.ExpectationsWereMet())
}
