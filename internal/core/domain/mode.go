package domain

// Mode selects what the dispatcher does with a resolved package.
type Mode int

const (
	// ModeRun builds the package and replaces the current process with the command.
	ModeRun Mode = iota
	// ModeShell opens an interactive shell with the packages available.
	ModeShell
	// ModePrintPath prints the absolute path of the command's executable.
	ModePrintPath
	// ModeInstall installs the package permanently.
	ModeInstall
)

// String returns a human-readable mode name.
func (m Mode) String() string {
	switch m {
	case ModeRun:
		return "run"
	case ModeShell:
		return "shell"
	case ModePrintPath:
		return "print-path"
	case ModeInstall:
		return "install"
	default:
		return "unknown"
	}
}
