package sharedstore

import (
	"context"
	"fmt"

	"lp-publisher/internal/config/configs"
	"lp-publisher/internal/core/port"
)

// New returns the shared store selected by cfg.Driver.
func New(ctx context.Context, cfg configs.SharedStore) (port.SharedStore, error) {
	switch cfg.Driver {
	case "s3":
		store, err := NewS3Store(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	case "minio":
		store, err := NewMinIOStore(cfg)
		if err != nil {
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown shared store driver %q", cfg.Driver)
	}
}
