package model

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
	"github.com/stretchr/testify/assert"
)

func TestGetUserByID(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectQuery("SELECT(.+)").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email", "nick"}).AddRow(1, "admin@nimbus.local", "admin"))
	user, err := GetUserByID(1)
	asserts.NoError(err)
	asserts.Equal("admin", user.Nick)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestGetActiveUserByEmail(t *testing.T) {
	asserts := assert.New(t)

	mock.ExpectQuery("SELECT(.+)").
		WithArgs(Active, "admin@nimbus.local").
		WillReturnRows(sqlmock.NewRows([]string{"id", "email"}).AddRow(1, "admin@nimbus.local"))
	user, err := GetActiveUserByEmail("admin@nimbus.local")
	asserts.NoError(err)
	asserts.Equal(uint(1), user.ID)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestUser_SetAndCheckPassword(t *testing.T) {
	asserts := assert.New(t)
	user := User{}

	asserts.NoError(user.SetPassword("correct horse"))
	asserts.NotEmpty(user.Password)

	ok, err := user.CheckPassword("correct horse")
	asserts.NoError(err)
	asserts.True(ok)

	ok, err = user.CheckPassword("wrong")
	asserts.NoError(err)
	asserts.False(ok)

	// Unknown digest format
	user.Password = "garbage"
	_, err = user.CheckPassword("anything")
	asserts.Error(err)
}

func TestUser_IncreaseStorage(t *testing.T) {
	asserts := assert.New(t)
	user := User{Model: gorm.Model{ID: 1}, MaxStorage: 100}

	// Within quota
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	asserts.True(user.IncreaseStorage(60))
	asserts.Equal(uint64(60), user.Storage)
	asserts.NoError(mock.ExpectationsWereMet())

	// Beyond quota
	asserts.False(user.IncreaseStorage(41))
	asserts.Equal(uint64(60), user.Storage)

	// Zero is always fine
	asserts.True(user.IncreaseStorage(0))
}

func TestUser_DeductionStorage(t *testing.T) {
	asserts := assert.New(t)
	user := User{Model: gorm.Model{ID: 1}, Storage: 50, MaxStorage: 100}

	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	asserts.True(user.DeductionStorage(20))
	asserts.Equal(uint64(30), user.Storage)
	asserts.NoError(mock.ExpectationsWereMet())

	// Over-deduction clamps to zero
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE(.+)").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	asserts.False(user.DeductionStorage(999))
	asserts.Equal(uint64(0), user.Storage)
	asserts.NoError(mock.ExpectationsWereMet())
}

func TestUser_GetRemainingCapacity(t *testing.T) {
	asserts := assert.New(t)

	user := User{Storage: 20, MaxStorage: 100}
	asserts.Equal(uint64(80), user.GetRemainingCapacity())

	user.Storage = 200
	asserts.Equal(uint64(0), user.GetRemainingCapacity())
}
