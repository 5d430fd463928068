// Package store provides read access to province statistics from a YAML
// directory, PostgreSQL or MongoDB, optionally behind an in-memory cache.
package store

import (
	"context"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/valuin/domikado/pkg/province"
)

// ErrNotFound is returned (wrapped) when no province matches a key.
var ErrNotFound = eris.New("province not found")

// Store looks provinces up by key. A key is either the province UUID or its
// slug ("papua", "jawa-barat"). Returned records are shared and must not be
// modified.
type Store interface {
	List(ctx context.Context) ([]*province.Statistics, error)
	Get(ctx context.Context, key string) (*province.Statistics, error)
	Close() error
}

// Writer is implemented by stores that can persist provinces.
type Writer interface {
	Put(ctx context.Context, s *province.Statistics) error
}

// normalizeKey lowercases and trims a lookup key so UUIDs and slugs compare
// case-insensitively.
func normalizeKey(key string) string {
	return strings.ToLower(strings.TrimSpace(key))
}

// matches reports whether s is addressed by the normalized key.
func matches(s *province.Statistics, key string) bool {
	return strings.EqualFold(s.ProvinceID, key) ||
		strings.EqualFold(s.Province.ID, key) ||
		s.Slug() == key
}

func notFound(key string) error {
	return eris.Wrapf(ErrNotFound, "province %q", key)
}
