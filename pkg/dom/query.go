package dom

import (
	"strconv"
	"strings"

	"golang.org/x/net/html"
)

// Find returns the first descendant element of root with the given tag in
// document order, or nil.
func (d *Document) Find(root *html.Node, tag string) *html.Node {
	all := d.find(root, tag, true)
	if len(all) == 0 {
		return nil
	}
	return all[0]
}

// FindAll returns every descendant element of root with the given tag in
// document order.
func (d *Document) FindAll(root *html.Node, tag string) []*html.Node {
	return d.find(root, tag, false)
}

func (d *Document) find(root *html.Node, tag string, first bool) []*html.Node {
	tag = strings.ToLower(tag)
	var out []*html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type != html.ElementNode {
				continue
			}
			if c.Data == tag {
				out = append(out, c)
				if first {
					return true
				}
			}
			if walk(c) {
				return true
			}
		}
		return false
	}
	walk(root)
	return out
}

// NodeAt follows path from root, each step selecting an element child by
// position.
func (d *Document) NodeAt(root *html.Node, path []int) (*html.Node, error) {
	cur := root
	for depth, i := range path {
		children := d.Children(cur)
		if i < 0 || i >= len(children) {
			return nil, notFound("path %s: step %d selects child %d of %d", FormatPath(path), depth, i, len(children))
		}
		cur = children[i]
	}
	return cur, nil
}

// PathOf returns the element-child path from root to n.
func (d *Document) PathOf(root, n *html.Node) ([]int, error) {
	var path []int
	for cur := n; cur != root; cur = cur.Parent {
		if cur == nil || cur.Parent == nil {
			return nil, notFound("node <%s> is not inside root", n.Data)
		}
		idx := 0
		for s := cur.PrevSibling; s != nil; s = s.PrevSibling {
			if s.Type == html.ElementNode {
				idx++
			}
		}
		path = append([]int{idx}, path...)
	}
	return path, nil
}

// FormatPath renders a path as "0/1/2".
func FormatPath(path []int) string {
	parts := make([]string, len(path))
	for i, p := range path {
		parts[i] = strconv.Itoa(p)
	}
	return strings.Join(parts, "/")
}

// ParsePath parses the output of FormatPath. The empty string is the
// empty path.
func ParsePath(s string) ([]int, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	path := make([]int, len(parts))
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, notFound("invalid path %q: %v", s, err)
		}
		path[i] = n
	}
	return path, nil
}
