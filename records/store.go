// Package records keeps the player's best dash across sessions.
package records

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"
)

const (
	recordsObject   = "records"
	recordsProperty = "dash"
)

// Records is the persisted payload.
type Records struct {
	BestDash float64 `yaml:"best_dash"`
	Dashes   int     `yaml:"dashes"`
}

// backend is the part of *gdata.Manager the store uses.
type backend interface {
	ObjectPropExists(objectKey, propKey string) bool
	LoadObjectProp(objectKey, propKey string) ([]byte, error)
	SaveObjectProp(objectKey, propKey string, data []byte) error
}

// Store holds records in memory and mirrors them to gdata storage when a
// manager is available.
type Store struct {
	b   backend
	rec Records
}

// Open creates a store backed by the platform data dir for appName. An empty
// appName gives a memory-only store.
func Open(appName string) (*Store, error) {
	if appName == "" {
		return New(nil), nil
	}
	m, err := gdata.Open(gdata.Config{AppName: appName})
	if err != nil {
		return nil, fmt.Errorf("records: open %s: %w", appName, err)
	}
	return New(m), nil
}

// New wraps a gdata manager. A nil manager keeps records in memory only.
func New(m *gdata.Manager) *Store {
	if m == nil {
		return &Store{}
	}
	return &Store{b: m}
}

// Load reads persisted records. Missing data leaves the zero records.
func (s *Store) Load() error {
	if s.b == nil || !s.b.ObjectPropExists(recordsObject, recordsProperty) {
		return nil
	}
	data, err := s.b.LoadObjectProp(recordsObject, recordsProperty)
	if err != nil {
		return fmt.Errorf("records: load: %w", err)
	}
	var rec Records
	if err := yaml.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("records: decode: %w", err)
	}
	s.rec = rec
	return nil
}

// Save writes the records. It is a no-op without a backend.
func (s *Store) Save() error {
	if s.b == nil {
		return nil
	}
	data, err := yaml.Marshal(s.rec)
	if err != nil {
		return fmt.Errorf("records: encode: %w", err)
	}
	if err := s.b.SaveObjectProp(recordsObject, recordsProperty, data); err != nil {
		return fmt.Errorf("records: save: %w", err)
	}
	return nil
}

// Offer counts a completed dash and reports whether it set a new best.
// New bests are saved immediately.
func (s *Store) Offer(distance float64) (bool, error) {
	s.rec.Dashes++
	if distance <= s.rec.BestDash {
		return false, nil
	}
	s.rec.BestDash = distance
	return true, s.Save()
}

func (s *Store) Best() float64 {
	return s.rec.BestDash
}

func (s *Store) Records() Records {
	return s.rec
}
