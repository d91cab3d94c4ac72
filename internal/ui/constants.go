package ui

// Icons (emojis/symbols)
const (
	IconSettings = "⚙"
	IconScissors = "✂"
	IconFolder   = "📁"
	IconPlay     = "▶"
	IconError    = "❌"
	IconCheck    = "✔"
	IconLanguage = "🌐"
)

// Form defaults
const (
	DefaultStartTime = "00:00:00"
	DefaultEndTime   = "00:01:00"
)

// Text fragments
const (
	MiddleDotSeparator = " · "
	LogTimeFormat      = "15:04:05"
	LogLineFormat      = "[%s] %s"
)

// Layout sizing
const (
	WindowWidth      float32 = 640
	WindowHeight     float32 = 520
	StatusLogMinRows         = 8
	MaxStatusLines           = 200
	SettingsWidth    float32 = 520
	SettingsHeight   float32 = 460
)
