package config

// Color constants for logging. Values are ANSI palette indexes understood by termenv.
const (
	ColorRed     = "1"
	ColorGreen   = "2"
	ColorYellow  = "3"
	ColorBlue    = "4"
	ColorMagenta = "5"
	ColorCyan    = "6"
	ColorPurple  = "13"
)
