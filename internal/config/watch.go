package config

import (
	"errors"
	"os"

	"github.com/knadh/koanf/providers/file"
)

// Watcher reloads the configuration whenever one of its files changes.
type Watcher struct {
	providers []*file.File
}

// Watch watches every existing file of Paths(explicit). Each change
// triggers a full Load and onChange receives the result; the callback runs
// on the watcher's goroutine.
func Watch(explicit string, onChange func(*Config, error)) (*Watcher, error) {
	w := &Watcher{}
	for _, path := range Paths(explicit) {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		p := file.Provider(path)
		err := p.Watch(func(_ any, err error) {
			if err != nil {
				onChange(nil, err)
				return
			}
			onChange(Load(explicit))
		})
		if err != nil {
			_ = w.Close()
			return nil, err
		}
		w.providers = append(w.providers, p)
	}
	return w, nil
}

// Len returns the number of watched files.
func (w *Watcher) Len() int {
	return len(w.providers)
}

// Close stops watching.
func (w *Watcher) Close() error {
	var errs []error
	for _, p := range w.providers {
		errs = append(errs, p.Unwatch())
	}
	w.providers = nil
	return errors.Join(errs...)
}
