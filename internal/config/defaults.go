package config

import "github.com/spf13/viper"

const (
	// The default board plus its chrome fills an 80x24 terminal.
	DefaultWidth    = 78
	DefaultHeight   = 19
	DefaultDebugLog = "debug.log"

	// Columns taken by the frame border.
	ChromeWidth = 2
	// Rows taken by the frame border, the status line, the help line and
	// the trailing newline.
	ChromeHeight = 5
)

// SetDefaults registers the default value of every key.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("width", DefaultWidth)
	v.SetDefault("height", DefaultHeight)
	v.SetDefault("formation", "")
	v.SetDefault("log_file", "")
	v.SetDefault("alt_screen", true)
	v.SetDefault("color", true)
}
