package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryRepository_FindAll_OrderedByName(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository()

	rows := sqlmock.NewRows([]string{"id", "name", "slug", "description"}).
		AddRow(2, "Cardiology", "cardiology", "").
		AddRow(1, "Mental Health", "mental-health", "Mind and mood")
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "categories" ORDER BY name ASC`)).
		WillReturnRows(rows)

	categories, err := repo.FindAll(context.Background(), db)
	require.NoError(t, err)
	require.Len(t, categories, 2)
	assert.Equal(t, "cardiology", categories[0].Slug)
	assert.Equal(t, "Mind and mood", categories[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCategoryRepository_FindBySlug_NotFound(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewCategoryRepository()

	mock.ExpectQuery(`SELECT \* FROM "categories" WHERE slug = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	category, err := repo.FindBySlug(context.Background(), db, "nope")
	require.NoError(t, err)
	assert.Nil(t, category)
	assert.NoError(t, mock.ExpectationsWereMet())
}
