package styles

// Nerd font glyphs, with ASCII fallbacks for plain terminals.
var (
	IconCompleted  = "\uf058"
	IconInProgress = "\uf192"
	IconNotStarted = "\uf10c"
	IconCalendar   = "\uf073"
	IconSortAsc    = "▲"
	IconSortDesc   = "▼"
	IconPrev       = "‹"
	IconNext       = "›"
	IconFilter     = "\uf0b0"

	IconNotifyInfo    = "\uf05a"
	IconNotifySuccess = "\uf00c"
	IconNotifyWarning = "\uf071"
	IconNotifyError   = "\uf057"
)

// UsePlainIcons swaps the nerd font glyphs for ASCII.
func UsePlainIcons() {
	IconCompleted = "[x]"
	IconInProgress = "[~]"
	IconNotStarted = "[ ]"
	IconCalendar = "#"
	IconSortAsc = "^"
	IconSortDesc = "v"
	IconPrev = "<"
	IconNext = ">"
	IconFilter = "/"
	IconNotifyInfo = "i"
	IconNotifySuccess = "+"
	IconNotifyWarning = "!"
	IconNotifyError = "x"
}
