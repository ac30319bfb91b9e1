package filesystem

import (
	"context"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	testMock "github.com/stretchr/testify/mock"
)

func TestFileSystem_CopyFolder(t *testing.T) {
	asserts := assert.New(t)
	handler := &HandlerMock{}
	fs := newMockFS(handler)
	ctx := context.Background()

	// Source folder with one file, copied to the drive root under the
	// default label
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "path"}).AddRow(2, "docs", "/docs"))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	// New folder record
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()
	// Files of the source folder
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "size", "blob_key"}).AddRow(7, "a.txt", 100, "files/1/k1"))
	handler.On("Copy", testMock.Anything, "files/1/k1", testMock.Anything).Return(nil)
	// New file record and quota increment
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(11, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	folder, err := fs.CopyFolder(ctx, 2, nil, "")
	asserts.NoError(err)
	asserts.Equal("Copy of docs", folder.Name)
	asserts.Equal("/Copy of docs", folder.Path)
	asserts.NotEqual(uint(2), folder.ID)
	asserts.Equal(uint64(300), fs.User.Storage)
	asserts.NoError(mock.ExpectationsWereMet())
	handler.AssertExpectations(t)
}

func TestFileSystem_CopyFolder_SkipsFailedBlob(t *testing.T) {
	asserts := assert.New(t)
	handler := &HandlerMock{}
	fs := newMockFS(handler)
	ctx := context.Background()

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(2, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "path"}).AddRow(2, "docs", "/docs"))
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(1, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(10, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "size", "blob_key"}).AddRow(7, "a.txt", 100, "files/1/k1"))
	handler.On("Copy", testMock.Anything, "files/1/k1", testMock.Anything).
		Return(errors.New("store unavailable"))

	// The failed file is skipped, the folder copy still succeeds
	folder, err := fs.CopyFolder(ctx, 2, nil, "")
	asserts.NoError(err)
	asserts.NotNil(folder)
	asserts.Equal(uint64(200), fs.User.Storage)
	asserts.NoError(mock.ExpectationsWereMet())
	handler.AssertExpectations(t)
}

func TestFileSystem_CopyFile(t *testing.T) {
	asserts := assert.New(t)
	handler := &HandlerMock{}
	fs := newMockFS(handler)
	ctx := context.Background()

	// Blob failure is fatal for a single-file copy
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "size", "blob_key"}).AddRow(7, "a.txt", 100, "files/1/k1"))
	handler.On("Copy", testMock.Anything, "files/1/k1", testMock.Anything).
		Return(errors.New("store unavailable")).Once()
	_, err := fs.CopyFile(ctx, 7, nil, "")
	asserts.Error(err)
	asserts.NoError(mock.ExpectationsWereMet())

	// Success path gives the copy a new identity and blob key
	mock.ExpectQuery("SELECT(.+)").
		WithArgs(7, 1).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "size", "blob_key"}).AddRow(7, "a.txt", 100, "files/1/k1"))
	handler.On("Copy", testMock.Anything, "files/1/k1", testMock.Anything).Return(nil).Once()
	mock.ExpectBegin()
	mock.ExpectExec("INSERT(.+)").WillReturnResult(sqlmock.NewResult(12, 1))
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	file, err := fs.CopyFile(ctx, 7, nil, "")
	asserts.NoError(err)
	asserts.Equal("Copy of a.txt", file.Name)
	asserts.NotEqual("files/1/k1", file.BlobKey)
	asserts.NotEqual(uint(7), file.ID)
	asserts.NoError(mock.ExpectationsWereMet())
	handler.AssertExpectations(t)
}
