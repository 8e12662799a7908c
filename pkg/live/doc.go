// Package live serves a demo over HTTP and WebSocket.
//
// GET / returns a page with the demo's initial markup. The page opens a
// WebSocket on /ws; each connection gets its own document and mounted
// tree, owned by the connection's goroutine. The browser reports events
// by element path and receives the new markup in reply:
//
//	→ {"type":"click","path":"0/2"}
//	← {"type":"html","html":"<div id=\"counter\">...</div>"}
//
// GET /metrics exposes the Prometheus registry when one is configured.
package live
