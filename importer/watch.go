// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package importer

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// ImportFunc receives the outcome of every import Watch runs.
type ImportFunc func(summary *Summary, err error)

// Watch imports the file at path, then imports it again each time it is
// written or replaced, until ctx is done. The parent directory is watched
// so that editors which save through a rename are noticed. Bursts of events
// are folded into one import after Config.WatchDebounce.
func (im *Importer) Watch(ctx context.Context, path string, onImport ImportFunc) error {
	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(target)); err != nil {
		return err
	}
	im.logger.Info("watching profile file", "path", target)

	run := func() {
		summary, err := im.ImportFile(ctx, target)
		if err != nil {
			im.logger.Warn("import failed", "path", target, "err", err)
		}
		if onImport != nil {
			onImport(summary, err)
		}
	}
	run()

	var settle <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if triggersImport(target, event) {
				im.logger.Debug("profile file changed", "op", event.Op.String())
				settle = time.After(im.config.WatchDebounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			im.logger.Warn("file watcher error", "err", err)
		case <-settle:
			settle = nil
			run()
		}
	}
}

// triggersImport reports whether event touched the watched file in a way
// that leaves new content behind.
func triggersImport(target string, event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != target {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create)
}
