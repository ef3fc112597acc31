// Package profile names and locates the per-profile state of a daemon: its
// key-value file, socket, lock and logs.
package profile

import "github.com/matheus3301/chatzy/internal/config"

const DefaultName = "main"

// Resolve picks the active profile name:
// the --profile flag, then default_profile from cfg, then "main".
func Resolve(flagOverride string, cfg *config.Config) string {
	if flagOverride != "" {
		return flagOverride
	}
	if cfg != nil && cfg.DefaultProfile != "" {
		return cfg.DefaultProfile
	}
	return DefaultName
}
