package store

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/valuin/domikado/internal/config"
)

var errReadOnly = eris.New("store is read-only")

// Open builds the store selected by cfg, wrapped in a cache when
// cfg.CacheTTL is positive.
func Open(ctx context.Context, cfg config.StoreConfig) (Store, error) {
	var (
		s   Store
		err error
	)
	switch cfg.Driver {
	case config.DriverFile:
		s, err = NewFile(cfg.DataDir)
	case config.DriverPostgres:
		s, err = NewPostgres(ctx, cfg.PostgresDSN)
	case config.DriverMongo:
		s, err = NewMongo(ctx, cfg.MongoURI, cfg.MongoDatabase)
	default:
		return nil, eris.Errorf("unknown store driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}

	if cfg.CacheTTL > 0 {
		return NewCached(s, cfg.CacheTTL), nil
	}
	return s, nil
}
