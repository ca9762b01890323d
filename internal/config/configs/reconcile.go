package configs

import (
	"fmt"
	"time"
	_ "time/tzdata"
)

// Reconcile holds the shared store key prefixes and the time zone used to
// decide what "today" is. Keys take the form "<prefix>-<YYYY-MM-DD>".
type Reconcile struct {
	StatusKeyPrefix string `env:"STATUS_KEY_PREFIX" envDefault:"campaign-status"`
	OrderKeyPrefix  string `env:"ORDER_KEY_PREFIX" envDefault:"campaign-order"`
	TimeZone        string `env:"TIME_ZONE" envDefault:"UTC"`
}

// Location resolves TimeZone.
func (c Reconcile) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.TimeZone)
	if err != nil {
		return nil, fmt.Errorf("load time zone %q: %w", c.TimeZone, err)
	}
	return loc, nil
}
