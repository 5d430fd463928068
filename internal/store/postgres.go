package store

import (
	"context"
	"encoding/json"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"github.com/valuin/domikado/pkg/province"
)

const provincesTable = "provinces"

// PostgresSchema creates the provinces table. The full record is kept as
// jsonb; id, slug and name are columns for lookup and ordering.
const PostgresSchema = `CREATE TABLE IF NOT EXISTS provinces (
	id   uuid PRIMARY KEY,
	slug text NOT NULL UNIQUE,
	name text NOT NULL,
	data jsonb NOT NULL
)`

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Postgres reads provinces from a pgx connection pool.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres connects to dsn and makes sure the schema exists.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, eris.Wrap(err, "creating postgres pool")
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "connecting to postgres")
	}
	if _, err := pool.Exec(ctx, PostgresSchema); err != nil {
		pool.Close()
		return nil, eris.Wrap(err, "creating provinces table")
	}
	log.Info().Str("table", provincesTable).Msg("postgres store connected")
	return &Postgres{pool: pool}, nil
}

func listQuery() (string, []any, error) {
	return psql.Select("data").From(provincesTable).OrderBy("name").ToSql()
}

func getQuery(key string) (string, []any, error) {
	k := normalizeKey(key)
	return psql.Select("data").
		From(provincesTable).
		Where(sq.Or{sq.Eq{"id::text": k}, sq.Eq{"slug": k}}).
		Limit(1).
		ToSql()
}

func putQuery(s *province.Statistics) (string, []any, error) {
	data, err := json.Marshal(s)
	if err != nil {
		return "", nil, eris.Wrap(err, "encoding province")
	}
	return psql.Insert(provincesTable).
		Columns("id", "slug", "name", "data").
		Values(s.ProvinceID, s.Slug(), s.Name(), data).
		Suffix("ON CONFLICT (id) DO UPDATE SET slug = EXCLUDED.slug, name = EXCLUDED.name, data = EXCLUDED.data").
		ToSql()
}

func (p *Postgres) List(ctx context.Context) ([]*province.Statistics, error) {
	query, args, err := listQuery()
	if err != nil {
		return nil, eris.Wrap(err, "building list query")
	}
	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "listing provinces")
	}
	raws, err := pgx.CollectRows(rows, pgx.RowTo[[]byte])
	if err != nil {
		return nil, eris.Wrap(err, "reading provinces")
	}

	out := make([]*province.Statistics, 0, len(raws))
	for _, raw := range raws {
		s, err := decodeJSON(raw)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}

func (p *Postgres) Get(ctx context.Context, key string) (*province.Statistics, error) {
	query, args, err := getQuery(key)
	if err != nil {
		return nil, eris.Wrap(err, "building get query")
	}
	var raw []byte
	if err := p.pool.QueryRow(ctx, query, args...).Scan(&raw); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, notFound(key)
		}
		return nil, eris.Wrapf(err, "loading province %q", key)
	}
	return decodeJSON(raw)
}

// Put upserts s by province ID.
func (p *Postgres) Put(ctx context.Context, s *province.Statistics) error {
	province.Normalize(s)
	query, args, err := putQuery(s)
	if err != nil {
		return err
	}
	if _, err := p.pool.Exec(ctx, query, args...); err != nil {
		return eris.Wrapf(err, "saving province %s", s.Name())
	}
	return nil
}

func (p *Postgres) Close() error {
	p.pool.Close()
	return nil
}

func decodeJSON(raw []byte) (*province.Statistics, error) {
	var s province.Statistics
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil, eris.Wrap(err, "decoding province")
	}
	province.Normalize(&s)
	return &s, nil
}
