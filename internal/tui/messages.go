package tui

type commandDoneMsg struct {
	line   string
	result commandResult
	err    error
}

type backgroundErrMsg struct {
	err error
}
