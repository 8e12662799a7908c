package dom

import (
	"io"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Parse parses markup as body content and returns a detached div holding
// the resulting nodes.
func (d *Document) Parse(markup string) (*html.Node, error) {
	context := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), context)
	if err != nil {
		return nil, err
	}
	container := d.CreateElement("div")
	for _, n := range nodes {
		d.AppendChild(container, n)
	}
	return container, nil
}

// Render writes the markup of n to w.
func (d *Document) Render(w io.Writer, n *html.Node) error {
	return html.Render(w, n)
}

// OuterHTML returns the markup of n including n itself.
func (d *Document) OuterHTML(n *html.Node) (string, error) {
	var b strings.Builder
	if err := html.Render(&b, n); err != nil {
		return "", err
	}
	return b.String(), nil
}

// InnerHTML returns the markup of n's children.
func (d *Document) InnerHTML(n *html.Node) (string, error) {
	var b strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if err := html.Render(&b, c); err != nil {
			return "", err
		}
	}
	return b.String(), nil
}
