package filesystem

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFileSystem_Breadcrumb(t *testing.T) {
	asserts := assert.New(t)
	fs := newMockFS(nil)

	// Drive root alone
	items, err := fs.Breadcrumb(nil)
	asserts.NoError(err)
	asserts.Len(items, 1)
	asserts.Nil(items[0].ID)
	asserts.Equal("My Drive", items[0].Name)
	asserts.Equal("/", items[0].Path)

	// Nested folder: virtual root, then ancestors top-down
	id := uint(3)
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "parent_id", "path"}).AddRow(3, "sub", 2, "/docs/sub"))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "path"}).AddRow(2, "docs", "/docs"))
	items, err = fs.Breadcrumb(&id)
	asserts.NoError(err)
	asserts.Len(items, 3)
	asserts.Nil(items[0].ID)
	asserts.Equal("docs", items[1].Name)
	asserts.NotNil(items[1].ID)
	asserts.Equal("sub", items[2].Name)
	asserts.Equal("/docs/sub", items[2].Path)
	asserts.NoError(mock.ExpectationsWereMet())

	// Unknown folder
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(9, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	id = 9
	_, err = fs.Breadcrumb(&id)
	asserts.Equal(ErrObjectNotExist, err)
	asserts.NoError(mock.ExpectationsWereMet())

	// Dangling parent reference reads as a broken chain
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(3, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "parent_id"}).AddRow(3, "sub", 404))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(404, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	id = 3
	_, err = fs.Breadcrumb(&id)
	asserts.Error(err)
	asserts.NoError(mock.ExpectationsWereMet())
}
