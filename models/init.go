package model

import (
	"fmt"
	"time"

	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/jinzhu/gorm"

	_ "github.com/jinzhu/gorm/dialects/mysql"
	_ "github.com/jinzhu/gorm/dialects/sqlite"
)

// DB database connection singleton
var DB *gorm.DB

// Init initializes the database connection according to the loaded
// configuration and runs migrations.
func Init() {
	util.Log().Info("Initializing database connection...")

	var (
		db  *gorm.DB
		err error
	)

	switch conf.DatabaseConfig.Type {
	case "sqlite", "sqlite3":
		db, err = gorm.Open("sqlite3", conf.DatabaseConfig.DBFile)
	case "mysql":
		db, err = gorm.Open("mysql", fmt.Sprintf("%s:%s@(%s:%d)/%s?charset=utf8mb4&parseTime=True&loc=Local",
			conf.DatabaseConfig.User,
			conf.DatabaseConfig.Password,
			conf.DatabaseConfig.Host,
			conf.DatabaseConfig.Port,
			conf.DatabaseConfig.Name))
	default:
		util.Log().Panic("Unsupported database type %q", conf.DatabaseConfig.Type)
	}

	if err != nil {
		util.Log().Panic("Failed to connect to database: %s", err)
	}

	db.LogMode(conf.SystemConfig.Debug)

	if conf.DatabaseConfig.TablePrefix != "" {
		gorm.DefaultTableNameHandler = func(db *gorm.DB, defaultTableName string) string {
			return conf.DatabaseConfig.TablePrefix + defaultTableName
		}
	}

	db.DB().SetMaxIdleConns(50)
	db.DB().SetMaxOpenConns(100)
	db.DB().SetConnMaxLifetime(time.Second * 30)

	DB = db

	migration()
}
