// Package paths resolves where mcpreg keeps its configuration.
//
// The package wraps github.com/adrg/xdg for XDG Base Directory compliance.
// The configuration directory is <ConfigHome>/mcpreg unless the
// MCPREG_CONFIG_DIR environment variable points elsewhere:
//
//	paths.ConfigDir()  // ~/.config/mcpreg
//	paths.ConfigFile() // ~/.config/mcpreg/config.yaml
package paths
