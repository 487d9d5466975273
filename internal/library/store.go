package library

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/osse101/NumeneraItems_Go/internal/domain"
	"github.com/osse101/NumeneraItems_Go/internal/item"
	"github.com/osse101/NumeneraItems_Go/internal/logger"
)

// Store is the read-only compendium served by the API: the normalized
// records of the pack configured at startup. Replace swaps the whole
// content atomically.
type Store struct {
	mu       sync.RWMutex
	records  []domain.ItemRecord
	byID     map[string]int
	checksum string
	loaded   bool
}

// NewStore returns an empty store. It reports not ready until the first
// Replace.
func NewStore() *Store {
	return &Store{byID: make(map[string]int)}
}

// Replace installs the normalized records of variants
func (s *Store) Replace(variants []item.Variant, checksum string) {
	records := make([]domain.ItemRecord, len(variants))
	byID := make(map[string]int, len(variants))
	for i, v := range variants {
		records[i] = v.Record()
		byID[records[i].ID] = i
	}

	s.mu.Lock()
	s.records = records
	s.byID = byID
	s.checksum = checksum
	s.loaded = true
	s.mu.Unlock()
}

// Get returns a copy of the record with id
func (s *Store) Get(id string) (domain.ItemRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return domain.ItemRecord{}, fmt.Errorf("%w: %s", domain.ErrItemNotFound, id)
	}
	return s.records[idx].Clone(), nil
}

// List returns copies of the stored records in pack order, optionally
// restricted to one type tag.
func (s *Store) List(tag domain.TypeTag) []domain.ItemRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.ItemRecord, 0, len(s.records))
	for _, rec := range s.records {
		if tag != "" && rec.Type != tag {
			continue
		}
		out = append(out, rec.Clone())
	}
	return out
}

// Counts returns the number of stored records per type tag, sorted by tag.
func (s *Store) Counts() []TypeCount {
	s.mu.RLock()
	counts := make(map[domain.TypeTag]int)
	for _, rec := range s.records {
		counts[rec.Type]++
	}
	s.mu.RUnlock()

	out := make([]TypeCount, 0, len(counts))
	for tag, n := range counts {
		out = append(out, TypeCount{Type: tag, Count: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// TypeCount is the number of records of one type in the store.
type TypeCount struct {
	Type  domain.TypeTag `json:"type"`
	Count int            `json:"count"`
}

// Checksum returns the checksum of the pack the store was filled from
func (s *Store) Checksum() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.checksum
}

// CheckHealth reports an error until the store holds a pack.
func (s *Store) CheckHealth(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.loaded {
		return ErrStoreNotLoaded
	}
	return nil
}

// LoadStore loads the pack at path, builds it and installs it in store.
func LoadStore(ctx context.Context, loader Loader, store *Store, path string, opts BuildOptions) error {
	pack, err := loader.Load(path)
	if err != nil {
		return err
	}

	result, err := loader.Build(ctx, pack, opts)
	if err != nil {
		return err
	}

	store.Replace(result.Items, pack.Checksum)
	logger.FromContext(ctx).Info(LogMsgStoreLoaded, "path", path, "items", len(result.Items), "by_type", result.ByType)
	return nil
}
