package configs

// SharedStore configures the object store shared with the delivery
// partner. Driver selects the client: "s3" uses the AWS SDK, "minio" the
// MinIO client. Endpoint is optional for S3 and switches to path-style
// addressing for S3 compatible services.
type SharedStore struct {
	Driver          string `env:"DRIVER" envDefault:"s3"`
	Bucket          string `env:"BUCKET" envDefault:"lp-publisher"`
	Region          string `env:"REGION" envDefault:"us-east-1"`
	Endpoint        string `env:"ENDPOINT"`
	AccessKeyID     string `env:"ACCESS_KEY_ID"`
	SecretAccessKey string `env:"SECRET_ACCESS_KEY"`
	// Secure enables TLS for the MinIO driver.
	Secure bool `env:"SECURE" envDefault:"true"`
	// Gzip compresses documents and appends ".gz" to their keys.
	Gzip bool `env:"GZIP" envDefault:"false"`
}
