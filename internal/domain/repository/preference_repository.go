package repository

import "context"

// PreferenceRepository is a per-user string key-value store.
type PreferenceRepository interface {
	// Get reports found=false for an unset key.
	Get(ctx context.Context, uid, key string) (value string, found bool, err error)
	Set(ctx context.Context, uid, key, value string) error
	Delete(ctx context.Context, uid, key string) error
}
