package conf

import (
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInit_GeneratesDefaultConfig(t *testing.T) {
	asserts := assert.New(t)
	path := filepath.Join(t.TempDir(), "conf.ini")

	Init(path)

	asserts.FileExists(path)
	content, err := ioutil.ReadFile(path)
	asserts.NoError(err)
	// Placeholders were replaced by random secrets
	asserts.NotContains(string(content), "{SessionSecret}")
	asserts.NotContains(string(content), "{HashIDSalt}")
	asserts.NotEmpty(SystemConfig.SessionSecret)
	asserts.NotEmpty(SystemConfig.HashIDSalt)
	asserts.Equal("sqlite3", DatabaseConfig.Type)
}

func TestInit_LoadsExistingConfig(t *testing.T) {
	asserts := assert.New(t)
	path := filepath.Join(t.TempDir(), "conf.ini")

	content := `[System]
Listen = :6000
SessionSecret = secret
HashIDSalt = salt
LogLevel = warning

[Database]
Type = mysql
User = nimbus
Host = 127.0.0.1
Name = nimbus

[Storage]
Bucket = nimbus-files
SignedURLExpire = 600
`
	asserts.NoError(ioutil.WriteFile(path, []byte(content), 0644))

	Init(path)

	asserts.Equal(":6000", SystemConfig.Listen)
	asserts.Equal("warning", SystemConfig.LogLevel)
	asserts.Equal("mysql", DatabaseConfig.Type)
	asserts.Equal("nimbus-files", StorageConfig.Bucket)
	asserts.Equal(int64(600), StorageConfig.SignedURLExpire)
}
