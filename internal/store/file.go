package store

import (
	"context"
	"sort"
	"sync"

	"github.com/rotisserie/eris"
	"github.com/rs/zerolog/log"

	"github.com/valuin/domikado/pkg/province"
)

// File serves provinces loaded once from a directory of YAML/JSON files.
// Put only changes the in-memory copy.
type File struct {
	mu        sync.RWMutex
	provinces []*province.Statistics
}

// NewFile loads every province file in dir.
func NewFile(dir string) (*File, error) {
	provinces, err := province.LoadDir(dir)
	if err != nil {
		return nil, eris.Wrap(err, "opening file store")
	}
	log.Info().Str("dir", dir).Int("provinces", len(provinces)).Msg("file store loaded")
	return &File{provinces: provinces}, nil
}

// NewMemory serves the given provinces.
func NewMemory(provinces ...*province.Statistics) *File {
	f := &File{}
	for _, s := range provinces {
		_ = f.Put(context.Background(), s)
	}
	return f
}

func (f *File) List(_ context.Context) ([]*province.Statistics, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	out := make([]*province.Statistics, len(f.provinces))
	copy(out, f.provinces)
	return out, nil
}

func (f *File) Get(_ context.Context, key string) (*province.Statistics, error) {
	f.mu.RLock()
	defer f.mu.RUnlock()

	k := normalizeKey(key)
	for _, s := range f.provinces {
		if matches(s, k) {
			return s, nil
		}
	}
	return nil, notFound(key)
}

// Put adds s or replaces the province with the same ID.
func (f *File) Put(_ context.Context, s *province.Statistics) error {
	province.Normalize(s)

	f.mu.Lock()
	defer f.mu.Unlock()

	for i, existing := range f.provinces {
		if existing.ProvinceID == s.ProvinceID {
			f.provinces[i] = s
			return nil
		}
	}
	f.provinces = append(f.provinces, s)
	sort.Slice(f.provinces, func(i, j int) bool {
		return f.provinces[i].Province.Name < f.provinces[j].Province.Name
	})
	return nil
}

func (f *File) Close() error { return nil }
