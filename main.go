package main

import (
	"flag"

	"github.com/nimbusdrive/nimbus/bootstrap"
	"github.com/nimbusdrive/nimbus/pkg/conf"
	"github.com/nimbusdrive/nimbus/pkg/util"
	"github.com/nimbusdrive/nimbus/routers"
)

var confPath string

func init() {
	flag.StringVar(&confPath, "c", "conf.ini", "Path to the config file")
	flag.Parse()

	bootstrap.Init(confPath)
}

func main() {
	api := routers.InitRouter()

	util.Log().Info("Listening on %q", conf.SystemConfig.Listen)
	if err := api.Run(conf.SystemConfig.Listen); err != nil {
		util.Log().Panic("Failed to start server: %s", err)
	}
}
