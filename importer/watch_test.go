package importer

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTriggersImport(t *testing.T) {
	target := filepath.Join(t.TempDir(), "profiles.yaml")

	tests := []struct {
		name  string
		event fsnotify.Event
		want  bool
	}{
		{name: "write", event: fsnotify.Event{Name: target, Op: fsnotify.Write}, want: true},
		{name: "create after rename save", event: fsnotify.Event{Name: target, Op: fsnotify.Create}, want: true},
		{name: "write and chmod", event: fsnotify.Event{Name: target, Op: fsnotify.Write | fsnotify.Chmod}, want: true},
		{name: "chmod only", event: fsnotify.Event{Name: target, Op: fsnotify.Chmod}},
		{name: "removed", event: fsnotify.Event{Name: target, Op: fsnotify.Remove}},
		{name: "renamed away", event: fsnotify.Event{Name: target, Op: fsnotify.Rename}},
		{name: "sibling file", event: fsnotify.Event{Name: target + ".swp", Op: fsnotify.Write}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, triggersImport(target, tt.event))
		})
	}
}

func TestWatch(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleDocument), 0o600))

	repo := newTestRepo(t)
	cfg := testConfig()
	cfg.WatchDebounce = 20 * time.Millisecond
	im := NewImporter(repo, cfg, nil)

	var (
		mu      sync.Mutex
		imports []int
	)
	onImport := func(s *Summary, err error) {
		mu.Lock()
		defer mu.Unlock()
		if err == nil {
			imports = append(imports, s.Imported)
		}
	}
	importCount := func() int {
		mu.Lock()
		defer mu.Unlock()
		return len(imports)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- im.Watch(ctx, path, onImport) }()

	require.Eventually(t, func() bool { return importCount() == 1 }, 5*time.Second, 10*time.Millisecond)

	extra := sampleDocument + `  - slug: lena-kurz
    name: Lena Kurz
    specialties: [adhd]
    session_mode: online
    location: {city: Leipzig}
`
	require.NoError(t, os.WriteFile(path, []byte(extra), 0o600))

	require.Eventually(t, func() bool {
		n, err := repo.CountProfiles(context.Background())
		return err == nil && n == 3
	}, 5*time.Second, 10*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
	assert.GreaterOrEqual(t, importCount(), 2)
}

func TestWatch_MissingDirectory(t *testing.T) {
	im := NewImporter(newTestRepo(t), testConfig(), nil)
	err := im.Watch(context.Background(), filepath.Join(t.TempDir(), "gone", "profiles.yaml"), nil)
	assert.Error(t, err)
}
