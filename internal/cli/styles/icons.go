package styles

// Nerd Font icons.
const (
	IconGlobe     = "" // web
	IconFolder    = "" // expanded group
	IconFolderOff = "" // collapsed group
	IconCheck     = ""
	IconX         = ""
	IconWarning   = ""
	IconCursor    = "" // chevron-right
	IconDatabase  = ""
	IconDot       = ""
)
