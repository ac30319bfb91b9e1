package conf

// DatabaseConfig database settings
var DatabaseConfig = &database{
	Type:   "UNSET",
	DBFile: "nimbus.db",
	Port:   3306,
}

// SystemConfig system settings
var SystemConfig = &system{
	Debug:    false,
	Listen:   ":5212",
	LogLevel: "info",
}

// StorageConfig object store settings
var StorageConfig = &storage{
	Region:          "us-east-1",
	MaxFileSize:     100 << 20, // 100 MB
	SignedURLExpire: 3600,
}

// CORSConfig cross-origin settings
var CORSConfig = &cors{
	AllowOrigins:     []string{"UNSET"},
	AllowMethods:     []string{"PUT", "POST", "GET", "OPTIONS", "DELETE"},
	AllowHeaders:     []string{"Cookie", "Content-Length", "Content-Type", "X-Requested-With"},
	AllowCredentials: false,
	ExposeHeaders:    nil,
}

const defaultConf = `[System]
Debug = false
Listen = :5212
SessionSecret = {SessionSecret}
HashIDSalt = {HashIDSalt}
LogLevel = info

[Database]
Type = sqlite3
DBFile = nimbus.db

[Storage]
Region = us-east-1
Bucket =
AccessKey =
SecretKey =
MaxFileSize = 104857600
SignedURLExpire = 3600
`
