package game

// Command is a user action, independent of the input device that produced it.
type Command int

const (
	CmdNone Command = iota
	CmdRowsUp
	CmdRowsDown
	CmdColsUp
	CmdColsDown
	CmdToggleHistory
	CmdToggleHUD
	CmdToggleTone
	CmdGridDialog
	CmdExportTone
	CmdQuit
)

var commandNames = map[Command]string{
	CmdNone:          "none",
	CmdRowsUp:        "rows+",
	CmdRowsDown:      "rows-",
	CmdColsUp:        "cols+",
	CmdColsDown:      "cols-",
	CmdToggleHistory: "full-history",
	CmdToggleHUD:     "hud",
	CmdToggleTone:    "tone",
	CmdGridDialog:    "grid-dialog",
	CmdExportTone:    "export-tone",
	CmdQuit:          "quit",
}

func (c Command) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "unknown"
}

// CommandForRune maps the keyboard shortcuts shared by both front ends.
func CommandForRune(r rune) Command {
	switch r {
	case '+', '=':
		return CmdRowsUp
	case '-', '_':
		return CmdRowsDown
	case ']':
		return CmdColsUp
	case '[':
		return CmdColsDown
	case 'f', 'F':
		return CmdToggleHistory
	case 'h', 'H':
		return CmdToggleHUD
	case 'a', 'A':
		return CmdToggleTone
	case 'g', 'G':
		return CmdGridDialog
	case 'w', 'W':
		return CmdExportTone
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdNone
}

// Execute applies the commands that change the table itself. It reports
// whether cmd was one of them.
func (t *Table) Execute(cmd Command) (bool, error) {
	switch cmd {
	case CmdRowsUp:
		return true, t.Apply(ParamChange{Property: "rows", Value: t.cfg.Rows + 1})
	case CmdRowsDown:
		return true, t.Apply(ParamChange{Property: "rows", Value: t.cfg.Rows - 1})
	case CmdColsUp:
		return true, t.Apply(ParamChange{Property: "cols", Value: t.cfg.Cols + 1})
	case CmdColsDown:
		return true, t.Apply(ParamChange{Property: "cols", Value: t.cfg.Cols - 1})
	case CmdToggleHistory:
		t.SetFullHistory(!t.cfg.FullHistory)
		return true, nil
	}
	return false, nil
}
