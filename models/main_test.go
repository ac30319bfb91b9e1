package model

import (
	"database/sql"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jinzhu/gorm"
)

var mock sqlmock.Sqlmock

// TestMain replaces the package DB with a sqlmock-backed connection.
func TestMain(m *testing.M) {
	var (
		db  *sql.DB
		err error
	)
	db, mock, err = sqlmock.New()
	if err != nil {
		panic("An error was not expected when opening a stub database connection")
	}

	DB, err = gorm.Open("mysql", db)
	if err != nil {
		panic("Failed to open gorm connection")
	}
	defer db.Close()

	m.Run()
}
