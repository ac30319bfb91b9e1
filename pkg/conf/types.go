package conf

// database section of the config file.
type database struct {
	Type        string
	User        string
	Password    string
	Host        string
	Name        string
	TablePrefix string
	DBFile      string
	Port        int
}

// system holds process-wide settings.
type system struct {
	Listen        string `validate:"required"`
	Debug         bool
	SessionSecret string
	HashIDSalt    string
	LogLevel      string `validate:"eq=error|eq=warning|eq=info|eq=debug"`
}

// storage describes the S3-compatible object store backing file blobs.
type storage struct {
	Endpoint        string
	Region          string
	Bucket          string
	AccessKey       string
	SecretKey       string
	ForcePathStyle  bool
	MaxFileSize     uint64 `validate:"gte=0"`
	SignedURLExpire int64  `validate:"gt=0"`
}

// cors settings forwarded to the gin middleware.
type cors struct {
	AllowOrigins     []string
	AllowMethods     []string
	AllowHeaders     []string
	AllowCredentials bool
	ExposeHeaders    []string
}
