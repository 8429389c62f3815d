package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"hermes-gcs/log"
)

// Watch reloads the config whenever the file on disk changes and delivers
// the fresh value on the returned channel. Tuning values like the snap
// threshold can then be applied to a running console without a restart.
// The watcher stops when stop is closed.
func Watch(stop <-chan struct{}) (<-chan *Config, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	// Watch the directory, not the file: editors replace the file on save
	// and a file watch would go stale after the first write.
	if err := watcher.Add(configDir); err != nil {
		watcher.Close()
		return nil, err
	}

	out := make(chan *Config, 1)
	configPath := filepath.Join(configDir, ConfigFileName)

	go func() {
		defer watcher.Close()
		defer close(out)
		for {
			select {
			case <-stop:
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != configPath {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg := LoadConfig()
				select {
				case out <- cfg:
				default:
					// A reload is already queued; the newest file state
					// will be picked up by the next event anyway.
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.WarningLog.Printf("config watcher: %v", err)
			}
		}
	}()

	return out, nil
}
