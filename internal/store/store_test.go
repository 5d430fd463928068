package store

import (
	"context"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/rotisserie/eris"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/valuin/domikado/internal/config"
	"github.com/valuin/domikado/pkg/province"
)

const (
	dataDir   = "../../data/provinces"
	papuaID   = "5afad633-fc10-4382-acef-13aaaa5f4c26"
	jakartaID = "0b9fb40b-0533-4092-bc06-b4e8ce7c367e"
)

func TestFileStoreLookups(t *testing.T) {
	f, err := NewFile(dataDir)
	if err != nil {
		t.Fatalf("NewFile() error: %v", err)
	}
	ctx := context.Background()

	all, err := f.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 || all[0].Name() != "Jakarta" || all[1].Name() != "Papua" {
		t.Fatalf("List() = %d provinces, want Jakarta, Papua", len(all))
	}

	for _, key := range []string{papuaID, strings.ToUpper(papuaID), "papua", " Papua "} {
		s, err := f.Get(ctx, key)
		if err != nil {
			t.Errorf("Get(%q) error: %v", key, err)
			continue
		}
		if s.ProvinceID != papuaID {
			t.Errorf("Get(%q) = %s, want Papua", key, s.Name())
		}
	}

	_, err = f.Get(ctx, "atlantis")
	if !eris.Is(err, ErrNotFound) {
		t.Errorf("Get(atlantis) error = %v, want ErrNotFound", err)
	}
}

func TestFileStoreMissingDir(t *testing.T) {
	if _, err := NewFile("does/not/exist"); err == nil {
		t.Error("expected error for missing directory")
	}
}

func TestMemoryPutReplaces(t *testing.T) {
	ctx := context.Background()
	m := NewMemory(
		&province.Statistics{ProvinceID: papuaID, Province: province.Info{Name: "Papua"}},
		&province.Statistics{ProvinceID: jakartaID, Province: province.Info{Name: "Jakarta"}},
	)

	updated := &province.Statistics{ProvinceID: papuaID, Province: province.Info{Name: "Papua"}, GapScore: 90}
	if err := m.Put(ctx, updated); err != nil {
		t.Fatal(err)
	}
	all, _ := m.List(ctx)
	if len(all) != 2 {
		t.Fatalf("len = %d, want 2", len(all))
	}
	if all[0].Name() != "Jakarta" {
		t.Errorf("first = %s, want Jakarta", all[0].Name())
	}
	s, err := m.Get(ctx, papuaID)
	if err != nil || s.GapScore != 90 {
		t.Errorf("Get() = %v, %v; want updated record", s, err)
	}
	// Normalize copies province_id into provinces.id.
	if s.Province.ID != papuaID {
		t.Errorf("Province.ID = %q, want %q", s.Province.ID, papuaID)
	}
}

type countingStore struct {
	Store
	lists, gets int
}

func (c *countingStore) List(ctx context.Context) ([]*province.Statistics, error) {
	c.lists++
	return c.Store.List(ctx)
}

func (c *countingStore) Get(ctx context.Context, key string) (*province.Statistics, error) {
	c.gets++
	return c.Store.Get(ctx, key)
}

func TestCachedStore(t *testing.T) {
	ctx := context.Background()
	inner := &countingStore{Store: NewMemory(
		&province.Statistics{ProvinceID: papuaID, Province: province.Info{Name: "Papua"}},
	)}
	c := NewCached(inner, time.Minute)

	for i := 0; i < 3; i++ {
		if _, err := c.List(ctx); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Get(ctx, "PAPUA"); err != nil {
			t.Fatal(err)
		}
		if _, err := c.Get(ctx, "papua"); err != nil {
			t.Fatal(err)
		}
	}
	if inner.lists != 1 || inner.gets != 1 {
		t.Errorf("inner calls = %d lists, %d gets; want 1, 1", inner.lists, inner.gets)
	}

	// Misses are not cached.
	for i := 0; i < 2; i++ {
		if _, err := c.Get(ctx, "atlantis"); !eris.Is(err, ErrNotFound) {
			t.Errorf("Get(atlantis) error = %v", err)
		}
	}
	if inner.gets != 3 {
		t.Errorf("inner gets = %d, want 3", inner.gets)
	}
}

func TestCachedPutInvalidates(t *testing.T) {
	ctx := context.Background()
	c := NewCached(NewMemory(), time.Minute)

	all, _ := c.List(ctx)
	if len(all) != 0 {
		t.Fatalf("len = %d, want 0", len(all))
	}
	if err := c.Put(ctx, &province.Statistics{ProvinceID: papuaID, Province: province.Info{Name: "Papua"}}); err != nil {
		t.Fatal(err)
	}
	all, _ = c.List(ctx)
	if len(all) != 1 {
		t.Errorf("len after Put = %d, want 1", len(all))
	}
}

func TestCachedPutReadOnly(t *testing.T) {
	c := NewCached(&countingStore{Store: NewMemory()}, time.Minute)
	if err := c.Put(context.Background(), &province.Statistics{}); err == nil {
		t.Error("expected error writing through a read-only store")
	}
}

func TestCacheKey(t *testing.T) {
	if got := CacheKey("province", "papua", 2); got != "province:papua:2" {
		t.Errorf("CacheKey() = %q", got)
	}
}

func TestPostgresQueries(t *testing.T) {
	query, args, err := listQuery()
	if err != nil {
		t.Fatal(err)
	}
	if query != "SELECT data FROM provinces ORDER BY name" || len(args) != 0 {
		t.Errorf("listQuery() = %q %v", query, args)
	}

	query, args, err = getQuery(" Papua ")
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"SELECT data FROM provinces WHERE", "id::text = $1", "slug = $2", "LIMIT 1"} {
		if !strings.Contains(query, want) {
			t.Errorf("getQuery() = %q, missing %q", query, want)
		}
	}
	if !reflect.DeepEqual(args, []any{"papua", "papua"}) {
		t.Errorf("getQuery() args = %v", args)
	}

	s := &province.Statistics{ProvinceID: papuaID, Province: province.Info{ID: papuaID, Name: "Papua Barat"}}
	query, args, err = putQuery(s)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(query, "INSERT INTO provinces (id,slug,name,data) VALUES ($1,$2,$3,$4)") {
		t.Errorf("putQuery() = %q", query)
	}
	if !strings.Contains(query, "ON CONFLICT (id) DO UPDATE") {
		t.Errorf("putQuery() missing upsert clause: %q", query)
	}
	if len(args) != 4 || args[0] != papuaID || args[1] != "papua-barat" || args[2] != "Papua Barat" {
		t.Errorf("putQuery() args = %v", args[:3])
	}
}

func TestMongoKeyFilter(t *testing.T) {
	got := keyFilter(" Papua ")
	want := bson.M{"$or": bson.A{
		bson.M{"province_id": "papua"},
		bson.M{"provinces.id": "papua"},
		bson.M{"slug": "papua"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("keyFilter() = %v, want %v", got, want)
	}
}

func TestMongoDocumentLowercasesIDs(t *testing.T) {
	const upper = "5AFAD633-1D4B-4B8E-9C55-3B1D0A5E7F21"
	s := &province.Statistics{
		ProvinceID: upper,
		Province:   province.Info{ID: upper, Name: "Papua Barat"},
	}

	doc := newDocument(s)
	want := strings.ToLower(upper)
	if doc.ProvinceID != want || doc.Province.ID != want {
		t.Errorf("document ids = %q, %q, want %q", doc.ProvinceID, doc.Province.ID, want)
	}
	if doc.Slug != "papua-barat" {
		t.Errorf("document slug = %q, want papua-barat", doc.Slug)
	}
	if s.ProvinceID != upper {
		t.Errorf("newDocument modified its input: %q", s.ProvinceID)
	}

	// An uppercase lookup key must hit the stored lowercase id.
	filter := keyFilter(upper)
	found := false
	for _, clause := range filter["$or"].(bson.A) {
		if clause.(bson.M)["province_id"] == doc.ProvinceID {
			found = true
		}
	}
	if !found {
		t.Errorf("keyFilter(%q) = %v does not match stored id %q", upper, filter, doc.ProvinceID)
	}
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	s, err := Open(ctx, config.StoreConfig{Driver: config.DriverFile, DataDir: dataDir, CacheTTL: time.Minute})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	defer s.Close()
	if _, ok := s.(*Cached); !ok {
		t.Errorf("Open() with cache_ttl = %T, want *Cached", s)
	}

	s, err = Open(ctx, config.StoreConfig{Driver: config.DriverFile, DataDir: dataDir})
	if err != nil {
		t.Fatalf("Open() error: %v", err)
	}
	if _, ok := s.(*File); !ok {
		t.Errorf("Open() without cache = %T, want *File", s)
	}

	if _, err := Open(ctx, config.StoreConfig{Driver: "sqlite"}); err == nil {
		t.Error("expected error for unknown driver")
	}
}
