package live

import werrors "github.com/vango-dev/weave/internal/errors"

// Message types sent by the browser.
const (
	MessageClick  = "click"
	MessageInput  = "input"
	MessageAction = "action"
)

// Reply types sent to the browser.
const (
	ReplyHTML  = "html"
	ReplyError = "error"
)

// Message is an event reported by the browser.
type Message struct {
	// Type is one of MessageClick, MessageInput or MessageAction.
	Type string `json:"type"`

	// Path is the element-child path of the target from the mount root,
	// formatted like "0/2".
	Path string `json:"path,omitempty"`

	// Value is the new value of an input target.
	Value string `json:"value,omitempty"`

	// Action and Arg name a demo action.
	Action string `json:"action,omitempty"`
	Arg    string `json:"arg,omitempty"`
}

// Reply is sent after the connection opens and after every message.
type Reply struct {
	Type  string `json:"type"`
	HTML  string `json:"html,omitempty"`
	Error string `json:"error,omitempty"`

	// Code is the weave error code of an error reply.
	Code string `json:"code,omitempty"`
}

// errorReply reports err to the browser. Uncoded errors are reported as
// E145.
func errorReply(err error) Reply {
	ce := werrors.FromError(err, "E145")
	return Reply{Type: ReplyError, Error: ce.FormatCompact(), Code: ce.Code}
}
