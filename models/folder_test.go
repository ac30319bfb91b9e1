package model

import (
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
)

func TestFolder_Create(t *testing.T) {
	asserts := assert.New(t)
	folder := &Folder{Name: "reports", OwnerID: 1, Path: "/reports"}

	// Insert succeeds
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(5, 1))
	mock.ExpectCommit()
	fid, err := folder.Create()
	asserts.NoError(err)
	asserts.Equal(uint(5), fid)
	asserts.NoError(mock.ExpectationsWereMet())

	// Insert fails
	folder = &Folder{Name: "reports"}
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnError(errors.New("error"))
	mock.ExpectRollback()
	_, err = folder.Create()
	asserts.Error(err)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestGetFolderByID(t *testing.T) {
	asserts := assert.New(t)

	// Found
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "path"}).AddRow(5, "reports", "/reports"))
	folder, err := GetFolderByID(5, 1)
	asserts.NoError(err)
	asserts.Equal("reports", folder.Name)
	asserts.NoError(mock.ExpectationsWereMet())

	// Not found
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(6, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	_, err = GetFolderByID(6, 1)
	asserts.Error(err)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestGetTrashedFolderByID(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectQuery("SELECT(.+)deleted_at is not null(.+)").
		WithArgs(5, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(5, "old"))
	folder, err := GetTrashedFolderByID(5, 1)
	asserts.NoError(err)
	asserts.Equal(uint(5), folder.ID)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestFolderNameExists(t *testing.T) {
	asserts := assert.New(t)
	parent := uint(2)

	// Sibling present under a real parent
	mock.ExpectQuery("SELECT count(.+)").
		WithArgs("reports", 1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	asserts.True(FolderNameExists("reports", &parent, 1, 0))
	asserts.NoError(mock.ExpectationsWereMet())

	// No sibling at root, the mutated row itself excluded
	mock.ExpectQuery("SELECT count(.+)").
		WithArgs("reports", 1, 9).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	asserts.False(FolderNameExists("reports", nil, 1, 9))
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestSoftDeleteFoldersByIDs(t *testing.T) {
	asserts := assert.New(t)

	// Empty input touches nothing
	asserts.NoError(SoftDeleteFoldersByIDs(nil))

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	asserts.NoError(SoftDeleteFoldersByIDs([]uint{1, 2}))
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestRestoreFolderByID(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	asserts.NoError(RestoreFolderByID(5))
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestDeleteFoldersByIDs(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectBegin()
	mock.ExpectExec("DELETE(.+)").WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectCommit()
	asserts.NoError(DeleteFoldersByIDs([]uint{1, 2}))
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestUpdateFolderPathByID(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	asserts.NoError(UpdateFolderPathByID(5, "/new/path"))
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestListFolders(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectQuery("SELECT count(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "a").AddRow(2, "b"))
	folders, total, err := ListFolders(1, nil, "", 1, 50)
	asserts.NoError(err)
	asserts.Equal(2, total)
	asserts.Len(folders, 2)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestListTrashedFolders(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectQuery("SELECT count(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(3, "old"))
	folders, total, err := ListTrashedFolders(1, "old", 1, 50)
	asserts.NoError(err)
	asserts.Equal(1, total)
	asserts.Len(folders, 1)
	asserts.NoError(mock.ExpectationsWereMet())
}
