package progress

import (
	"fmt"
	"testing"
	"time"

	"github.com/quasilyte/gdata/v2"
)

// openTestStore opens a gdata store under a temporary home directory.
func openTestStore(t *testing.T) *gdata.Manager {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())

	store, err := gdata.Open(gdata.Config{
		AppName: fmt.Sprintf("starfall_test_%d", time.Now().UnixNano()),
	})
	if err != nil {
		t.Skipf("Cannot create gdata store for testing: %v", err)
	}
	return store
}

func TestMemoryOnly(t *testing.T) {
	m, err := NewManager(nil)
	if err != nil {
		t.Fatalf("NewManager(nil) failed: %v", err)
	}

	if m.Campaign() != (Campaign{}) {
		t.Errorf("Expected empty progress, got %+v", m.Campaign())
	}

	if !m.RecordLevel(2) {
		t.Error("Expected level 2 to be recorded")
	}
	if m.RecordLevel(1) {
		t.Error("Lower level should not change the record")
	}
	if m.RecordLevel(9) {
		t.Error("Invalid level should not change the record")
	}
	if m.Campaign().BestLevel != 2 {
		t.Errorf("Expected best level 2, got %d", m.Campaign().BestLevel)
	}

	m.MarkCompleted()
	if err := m.Save(); err != nil {
		t.Errorf("Save() in memory mode should not fail: %v", err)
	}
	if c := m.Campaign(); !c.Completed || c.BestLevel != 3 {
		t.Errorf("Expected completed campaign at level 3, got %+v", c)
	}
}

func TestSaveAndReload(t *testing.T) {
	store := openTestStore(t)

	m, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() failed: %v", err)
	}
	m.RecordLevel(2)
	if err := m.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	reloaded, err := NewManager(store)
	if err != nil {
		t.Fatalf("NewManager() reload failed: %v", err)
	}
	if c := reloaded.Campaign(); c.BestLevel != 2 || c.Completed {
		t.Errorf("Unexpected reloaded progress %+v", c)
	}

	reloaded.MarkCompleted()
	if err := reloaded.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if err := m.Load(); err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if c := m.Campaign(); !c.Completed || c.BestLevel != 3 {
		t.Errorf("Expected completed campaign after reload, got %+v", c)
	}
}

func TestLoadCorruptData(t *testing.T) {
	store := openTestStore(t)

	if err := store.SaveObjectProp(progressObject, progressProperty, []byte("completed: [")); err != nil {
		t.Fatalf("SaveObjectProp() failed: %v", err)
	}

	m, err := NewManager(store)
	if err == nil {
		t.Fatal("Expected error for corrupt progress data")
	}
	if m == nil || m.Campaign() != (Campaign{}) {
		t.Error("Manager should fall back to empty progress on corrupt data")
	}
}
