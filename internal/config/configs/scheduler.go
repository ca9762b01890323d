package configs

import "time"

// Scheduler configures the in-process job runner. Interval is how often
// pending jobs are attempted; LockTTL bounds how long a crashed run keeps
// other replicas out; DoneTTL is how long a finished run is remembered.
type Scheduler struct {
	Enabled  bool          `env:"ENABLED" envDefault:"true"`
	Interval time.Duration `env:"INTERVAL" envDefault:"15m"`
	LockTTL  time.Duration `env:"LOCK_TTL" envDefault:"30m"`
	DoneTTL  time.Duration `env:"DONE_TTL" envDefault:"48h"`
}
