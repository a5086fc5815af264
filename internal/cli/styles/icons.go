package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGithub    = "" // github
	IconGo        = "" // go gopher

	IconCheck    = "" // check
	IconX        = "" // x
	IconInfo     = "" // info
	IconConfig   = "" // config
	IconDatabase = "" // database

	IconWindow  = "" // window
	IconArchive = "" // archive
	IconRestore = "" // rotate-left
)
