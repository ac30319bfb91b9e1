package model

import (
	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/jinzhu/gorm"
)

// migration keeps the schema in sync with the models.
func migration() {
	util.Log().Info("Running database migration...")

	if conf.DatabaseConfig.Type == "mysql" {
		DB = DB.Set("gorm:table_options", "ENGINE=InnoDB")
	}

	DB.AutoMigrate(&User{}, &Folder{}, &File{})

	addDefaultUser()

	util.Log().Info("Database migration finished.")
}

// addDefaultUser seeds an admin account on a fresh database.
func addDefaultUser() {
	var count int
	DB.Model(&User{}).Count(&count)
	if count > 0 {
		return
	}

	password := util.RandStringRunes(12)
	user := User{
		Email:      "admin@nimbus.local",
		Nick:       "admin",
		Status:     Active,
		MaxStorage: defaultMaxStorage,
	}
	if err := user.SetPassword(password); err != nil {
		util.Log().Panic("Failed to derive default admin password: %s", err)
	}

	if err := DB.Create(&user).Error; err != nil {
		util.Log().Panic("Failed to create default admin: %s", err)
	}

	util.Log().Info("Created default admin account %q, initial password: %s", user.Email, password)
}
