package storage

// Config holds the connection settings of the snapshot bucket.
type Config struct {
	// Endpoint is the host:port of the S3 compatible service.
	Endpoint  string `mapstructure:"endpoint" default:"localhost:9000"`
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	UseSSL    bool   `mapstructure:"use_ssl" default:"false"`

	// Bucket receives the implementation snapshots.
	Bucket string `mapstructure:"bucket" default:"karta"`
	// Region is only used when the bucket has to be created.
	Region         string `mapstructure:"region" default:""`
	TimeoutSeconds int    `mapstructure:"timeout_seconds" default:"30"`
}
