package script

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"golang.org/x/net/html"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/demo"
	"github.com/vango-dev/weave/pkg/dom"
	"github.com/vango-dev/weave/pkg/node"
)

// Run mounts the script's demo into root and plays every step.
//
// Snapshots are written to out as a header line followed by the root's
// inner markup. The mounted tree is returned so the caller can inspect or
// unmount it; on error it is returned too when mounting succeeded.
// Run stops before the next step once ctx is done.
func Run(ctx context.Context, doc *dom.Document, root *html.Node, s *Script, out io.Writer, opts ...node.Option) (*node.Tree, error) {
	d, err := demo.New(s.Demo)
	if err != nil {
		return nil, err
	}
	tree := node.Root(doc, root, opts...)
	if err := tree.ChildrenContext(ctx, d.Build()); err != nil {
		return nil, err
	}

	p := &player{doc: doc, root: root, demo: d, out: out, logger: doc.Logger()}
	for i, st := range s.Steps {
		if err := ctx.Err(); err != nil {
			return tree, err
		}
		p.logger.Debug("play step", "step", i+1, "do", st.String())
		if err := p.step(i+1, st); err != nil {
			return tree, err
		}
	}
	return tree, nil
}

type player struct {
	doc       *dom.Document
	root      *html.Node
	demo      demo.Demo
	out       io.Writer
	logger    *slog.Logger
	snapshots int
}

func (p *player) step(n int, st Step) error {
	switch st.Kind() {
	case "click":
		el, err := p.target(st.Click, st.Nth)
		if err != nil {
			return stepError(n, st, err)
		}
		p.doc.Click(el)
	case "input":
		el, err := p.target(st.Input, st.Nth)
		if err != nil {
			return stepError(n, st, err)
		}
		p.doc.Input(el, st.Value)
	case "action":
		if err := demo.Run(p.demo, st.Action, st.Arg); err != nil {
			return stepError(n, st, err)
		}
	case "snapshot":
		markup, err := p.doc.InnerHTML(p.root)
		if err != nil {
			return stepError(n, st, err)
		}
		p.snapshots++
		if _, err := fmt.Fprintf(p.out, "--- snapshot %d (step %d) ---\n%s\n", p.snapshots, n, markup); err != nil {
			return err
		}
	case "expect":
		markup, err := p.doc.InnerHTML(p.root)
		if err != nil {
			return stepError(n, st, err)
		}
		if !strings.Contains(markup, st.Expect) {
			return stepError(n, st, fmt.Errorf("markup does not contain %q:\n%s", st.Expect, markup))
		}
	default:
		return stepError(n, st, fmt.Errorf("invalid step"))
	}
	return nil
}

// target resolves a tag or "/"-prefixed path to an element.
func (p *player) target(t string, nth int) (*html.Node, error) {
	if path, ok := strings.CutPrefix(t, "/"); ok {
		steps, err := dom.ParsePath(path)
		if err != nil {
			return nil, err
		}
		return p.doc.NodeAt(p.root, steps)
	}
	all := p.doc.FindAll(p.root, t)
	if nth >= len(all) {
		return nil, fmt.Errorf("no <%s> #%d, found %d", t, nth, len(all))
	}
	return all[nth], nil
}

func stepError(n int, st Step, err error) error {
	return werrors.New("E142").WithDetailf("step %d (%s): %v", n, st, err).Wrap(err)
}
