package tui

// loginDoneMsg is produced by the async login command.
type loginDoneMsg struct {
	err error
}

type pageLoadedMsg struct {
	err error
}

type refreshDoneMsg struct {
	err error
}

type submitDoneMsg struct {
	err error
}

type profileSavedMsg struct {
	err error
}

type clearStatusMsg struct{}
