// Package file implements the SettingsStore port on a TOML file under
// the user's config directory (~/.ccimport/config.toml). A missing file
// yields the defaults; a malformed file is a configuration failure that
// stops the tool before any work is attempted.
package file
