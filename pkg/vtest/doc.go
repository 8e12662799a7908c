// Package vtest provides testing helpers for weave views.
//
// A Harness owns a document and a root container and mounts nodes into
// it, so a test can drive events and assert on the resulting markup
// without any surrounding setup.
//
// # Quick Start
//
//	func TestCounter(t *testing.T) {
//	    h := vtest.New(t)
//	    h.Mount(demo.Counter().Build())
//	    h.Click("button", 0)
//	    h.ExpectContains("count: 1")
//	}
//
// # Driving Events
//
// Click and Input address elements by tag and position among the root's
// descendants with that tag:
//
//	h.Input("input", 0, "buy milk")
//	h.Click("button", 1)
//
// # Assertions
//
//	h.ExpectHTML(`<ul><li>a</li><!--repeat node--></ul>`)
//	h.ExpectContains("Welcome")
//	h.ExpectNotContains("Error")
//	h.ExpectElement("button")
//	h.ExpectAttribute("class", "btn-primary")
//	h.ExpectChildren(2)
package vtest
