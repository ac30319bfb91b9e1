package conf

import (
	"github.com/nimbusdrive/nimbus/pkg/util"

	"github.com/go-ini/ini"
	"github.com/go-playground/validator/v10"
)

var cfg *ini.File

// Init loads the configuration from the given path, creating a default
// config file when none exists yet.
func Init(path string) {
	var err error

	if path == "" || !util.Exists(path) {
		// A fresh deployment gets a generated config with random secrets.
		confContent := util.Replace(map[string]string{
			"{SessionSecret}": util.RandStringRunes(64),
			"{HashIDSalt}":    util.RandStringRunes(64),
		}, defaultConf)
		f, err := util.CreatNestedFile(path)
		if err != nil {
			util.Log().Panic("Failed to create config file: %s", err)
		}

		if _, err := f.WriteString(confContent); err != nil {
			util.Log().Panic("Failed to write config file: %s", err)
		}

		f.Close()
	}

	cfg, err = ini.Load(path)
	if err != nil {
		util.Log().Panic("Failed to parse config file %q: %s", path, err)
	}

	sections := map[string]interface{}{
		"Database": DatabaseConfig,
		"System":   SystemConfig,
		"Storage":  StorageConfig,
		"CORS":     CORSConfig,
	}
	for sectionName, sectionStruct := range sections {
		err = mapSection(sectionName, sectionStruct)
		if err != nil {
			util.Log().Panic("Failed to parse config section %q: %s", sectionName, err)
		}
	}

	// The log level from the config wins over the bootstrap default.
	if !SystemConfig.Debug {
		util.BuildLogger(SystemConfig.LogLevel)
	} else {
		util.BuildLogger("debug")
	}
}

// mapSection maps a config file section onto the given struct and
// validates the result.
func mapSection(section string, confStruct interface{}) error {
	err := cfg.Section(section).MapTo(confStruct)
	if err != nil {
		return err
	}

	validate := validator.New()
	err = validate.Struct(confStruct)
	if err != nil {
		return err
	}

	return nil
}
