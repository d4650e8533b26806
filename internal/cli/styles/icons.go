package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "\uf02b" // tag
	IconGitBranch = "\ue725" // git branch
	IconCalendar  = "\uf073" // calendar
	IconGithub    = "\uf09b" // github
	IconGo        = "\ue627" // go gopher

	IconCheck   = "\uf00c" // check
	IconX       = "\uf00d" // x
	IconWarning = "\uf071" // warning
	IconInfo    = "\uf05a" // info

	IconConfig   = "\ue615" // config
	IconDatabase = "\uf1c0" // database
	IconDesktop  = "\uf108" // desktop

	// Navigation
	IconCursor   = "\uf054" // chevron-right
	IconGroup    = "\uf07b" // folder
	IconBack     = "\uf060" // arrow-left
	IconKeyboard = "\uf11c" // keyboard
	IconMenu     = "\uf0c9" // bars
	IconTarget   = "\uf05b" // crosshairs
	IconClock    = "\uf017" // clock
)
