package config

import (
	"github.com/fsnotify/fsnotify"
	"github.com/rileyhilliard/swipr/internal/logger"
)

// Watch reloads the config at path whenever the file is written and hands
// the validated result to onChange. Invalid edits are logged and skipped so
// the running host keeps its last good config.
//
// The watch lives for the rest of the process.
func Watch(path string, log logger.Logger, onChange func(*Config)) error {
	v := newViper()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		cfg, err := parseConfig(v, path)
		if err != nil {
			log.Warn("ignoring config change in %s: %v", e.Name, err)
			return
		}
		log.Debug("config reloaded from %s", e.Name)
		onChange(cfg)
	})
	v.WatchConfig()
	return nil
}
