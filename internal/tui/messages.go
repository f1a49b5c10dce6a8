package tui

type pollTickMsg struct{}

type statusPolledMsg struct {
	raw string
}

type commandDoneMsg struct {
	line    string
	outcome string
}

type copiedMsg struct {
	err error
}

type clearNoticeMsg struct{}
