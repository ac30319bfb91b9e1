package bootstrap

import (
	model "github.com/nimbusdrive/nimbus/models"
	"github.com/nimbusdrive/nimbus/pkg/conf"
)

// Init loads the configuration and prepares the database.
func Init(path string) {
	conf.Init(path)
	model.Init()
}
