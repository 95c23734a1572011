package usecase

// NoticeLevel mirrors the flash message levels shown to admins.
type NoticeLevel string

const (
	NoticeSuccess NoticeLevel = "success"
	NoticeWarning NoticeLevel = "warning"
	NoticeError   NoticeLevel = "error"
)

type Notice struct {
	Level   NoticeLevel `json:"level"`
	Message string      `json:"message"`
}

// Outcome reports an admin action that may legitimately do nothing. A
// skipped action is not an error: Done is false and Notices says why.
type Outcome struct {
	Done     bool     `json:"done"`
	Notices  []Notice `json:"notices,omitempty"`
	Redirect string   `json:"redirect,omitempty"`
}

func succeeded(msg string) Outcome {
	return Outcome{Done: true, Notices: []Notice{{Level: NoticeSuccess, Message: msg}}}
}

func skipped(level NoticeLevel, msg, redirect string) Outcome {
	return Outcome{Notices: []Notice{{Level: level, Message: msg}}, Redirect: redirect}
}
