package el

import "github.com/vango-dev/weave/pkg/dom"

// Event names accepted by (*Element).On.
const (
	EventClick       = "click"
	EventDblClick    = "dblclick"
	EventMouseDown   = "mousedown"
	EventMouseUp     = "mouseup"
	EventMouseMove   = "mousemove"
	EventMouseEnter  = "mouseenter"
	EventMouseLeave  = "mouseleave"
	EventContextMenu = "contextmenu"
	EventWheel       = "wheel"
	EventKeyDown     = "keydown"
	EventKeyUp       = "keyup"
	EventInput       = "input"
	EventChange      = "change"
	EventSubmit      = "submit"
	EventFocus       = "focus"
	EventBlur        = "blur"
	EventFocusIn     = "focusin"
	EventFocusOut    = "focusout"
	EventReset       = "reset"
	EventInvalid     = "invalid"
	EventDragStart   = "dragstart"
	EventDrag        = "drag"
	EventDragEnd     = "dragend"
	EventDragEnter   = "dragenter"
	EventDragOver    = "dragover"
	EventDragLeave   = "dragleave"
	EventDrop        = "drop"
	EventPointerDown = "pointerdown"
	EventPointerUp   = "pointerup"
	EventPointerMove = "pointermove"
	EventScroll      = "scroll"
	EventToggle      = "toggle"
	EventLoad        = "load"
	EventError       = "error"
)

// Do adapts a function that ignores the event into a listener.
//
//	el.Button().On(el.EventClick, el.Do(func() { open.Set(true) })).Text("open")
func Do(fn func()) dom.EventListener {
	return func(*dom.Event) { fn() }
}
