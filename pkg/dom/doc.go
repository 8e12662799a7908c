// Package dom is the host document weave mounts into.
//
// Nodes are golang.org/x/net/html nodes, so a mounted tree can be inspected
// and serialized with the standard html tooling. Document adds what a
// browser keeps outside the markup: element properties (such as an input's
// live value), event listeners and event dispatch.
//
//	doc := dom.NewDocument()
//	root := doc.CreateElement("div")
//	btn := doc.CreateElement("button")
//	doc.InsertBefore(root, btn, nil)
//	doc.AddEventListener(btn, "click", func(ev *dom.Event) { ... })
//	doc.Click(btn)
//	markup, _ := doc.InnerHTML(root) // "<button></button>"
//
// A Document is single-writer. WithStrictOwner makes every mutation verify
// it runs on the goroutine that created the document.
package dom
