package stylesheet

// Other constants we can use to enforce a consistent style across all states of the program

const (
	TIWidth         = 60
	TIPromptPrefix  = "> " // text input prefix
	SelectionPrefix = '»'
	UpDown          = "↑/↓"
	LeftRight       = "←/→"
	Indent          = "  "
)
