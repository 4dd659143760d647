// Package progress persists campaign progress across sessions: whether the
// campaign has been beaten and the furthest level reached.
//
// Data lives in a gdata store as a YAML document. Without a store the
// manager keeps progress in memory only.
package progress

import (
	"fmt"

	"github.com/quasilyte/gdata/v2"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/starfall/internal/balance"
)

// AppName is the gdata application name used for the save directory.
const AppName = "starfall"

const (
	progressObject   = "progress"
	progressProperty = "campaign"
)

// Campaign is the persisted progress record.
type Campaign struct {
	Completed bool `yaml:"completed"`
	BestLevel int  `yaml:"best_level"`
}

// Manager loads and saves campaign progress.
type Manager struct {
	store    *gdata.Manager // nil means memory only
	campaign Campaign
}

// Open opens the default gdata store for the game.
func Open() (*gdata.Manager, error) {
	m, err := gdata.Open(gdata.Config{AppName: AppName})
	if err != nil {
		return nil, fmt.Errorf("progress: cannot open save data: %w", err)
	}
	return m, nil
}

// NewManager creates a manager over store and loads any saved progress.
// store may be nil.
func NewManager(store *gdata.Manager) (*Manager, error) {
	m := &Manager{store: store}
	if err := m.Load(); err != nil {
		return m, err
	}
	return m, nil
}

// Load reads progress from the store. Missing data leaves a fresh record.
func (m *Manager) Load() error {
	m.campaign = Campaign{}
	if m.store == nil {
		return nil
	}
	if !m.store.ObjectPropExists(progressObject, progressProperty) {
		return nil
	}

	data, err := m.store.LoadObjectProp(progressObject, progressProperty)
	if err != nil {
		return fmt.Errorf("progress: cannot load: %w", err)
	}

	var c Campaign
	if err := yaml.Unmarshal(data, &c); err != nil {
		return fmt.Errorf("progress: cannot decode: %w", err)
	}
	m.campaign = c
	return nil
}

// Save writes progress to the store. It is a no-op in memory-only mode.
func (m *Manager) Save() error {
	if m.store == nil {
		return nil
	}

	data, err := yaml.Marshal(m.campaign)
	if err != nil {
		return fmt.Errorf("progress: cannot encode: %w", err)
	}
	if err := m.store.SaveObjectProp(progressObject, progressProperty, data); err != nil {
		return fmt.Errorf("progress: cannot save: %w", err)
	}
	return nil
}

// Campaign returns the current progress record.
func (m *Manager) Campaign() Campaign {
	return m.campaign
}

// RecordLevel raises the best level reached. Lower or invalid levels are
// ignored. It reports whether the record changed.
func (m *Manager) RecordLevel(level int) bool {
	if !balance.IsValidLevel(level) || level <= m.campaign.BestLevel {
		return false
	}
	m.campaign.BestLevel = level
	return true
}

// MarkCompleted flags the campaign as beaten.
func (m *Manager) MarkCompleted() {
	m.campaign.Completed = true
	m.campaign.BestLevel = balance.MaxLevel
}
