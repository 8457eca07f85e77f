package professional

import (
	"context"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMock(t *testing.T) (*Repository, sqlmock.Sqlmock, func()) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	repo := NewRepository(db)
	done := func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		db.Close()
	}
	return repo, mock, done
}

func TestRepository_List(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{"id", "name", "specialty", "image_url"}).
		AddRow(int64(1), "Алексей", "Барбер", nil).
		AddRow(int64(2), "Мария", "Колорист", "https://cdn.example.com/m.jpg")

	mock.ExpectQuery(`SELECT id, name, specialty, image_url FROM professionals ORDER BY name ASC`).
		WillReturnRows(rows)

	professionals, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, professionals, 2)
	assert.Equal(t, "Алексей", professionals[0].Name)
	assert.Nil(t, professionals[0].ImageURL)
	require.NotNil(t, professionals[1].ImageURL)
	assert.Equal(t, "https://cdn.example.com/m.jpg", *professionals[1].ImageURL)
}

func TestRepository_List_Empty(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	mock.ExpectQuery(`SELECT id, name, specialty, image_url FROM professionals ORDER BY name ASC`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialty", "image_url"}))

	professionals, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, professionals)
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	rows := sqlmock.NewRows([]string{"id", "name", "specialty", "image_url"}).
		AddRow(int64(7), "Игорь", "Барбер", nil)

	mock.ExpectQuery(`SELECT id, name, specialty, image_url FROM professionals WHERE id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(rows)

	p, err := repo.GetByID(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, int64(7), p.ID)
	assert.Equal(t, "Игорь", p.Name)
	assert.Equal(t, "Барбер", p.Specialty)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, mock, done := newMock(t)
	defer done()

	mock.ExpectQuery(`SELECT id, name, specialty, image_url FROM professionals WHERE id = \$1`).
		WithArgs(int64(99)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "specialty", "image_url"}))

	p, err := repo.GetByID(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Nil(t, p)
}
