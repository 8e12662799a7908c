// Package script plays scripted sessions against a demo.
//
// A script names a demo and lists steps that drive it the way a user
// would, by clicking and typing, or by calling the demo's named actions.
// Snapshot steps write the rendered markup to an io.Writer; expect steps
// fail the run when the markup lacks a substring.
//
//	demo: fruits
//	steps:
//	  - click: button
//	    nth: 1
//	  - click: /0/3
//	  - input: input
//	    value: kiwi
//	  - click: button
//	  - action: rename
//	    arg: 0=pear
//	  - expect: "0: pear"
//	  - snapshot: true
package script

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	werrors "github.com/vango-dev/weave/internal/errors"
	"github.com/vango-dev/weave/pkg/dom"
)

// Script is a parsed play script.
type Script struct {
	// Demo is the demo to mount.
	Demo string `yaml:"demo"`

	// Steps run in order.
	Steps []Step `yaml:"steps"`
}

// Step is one scripted interaction. Exactly one of Click, Input, Action,
// Snapshot and Expect is set.
type Step struct {
	// Click clicks the target: the Nth element with this tag, or, when it
	// starts with "/", the element at that child-index path from the root.
	Click string `yaml:"click,omitempty"`

	// Input types Value into the target, addressed like Click.
	Input string `yaml:"input,omitempty"`

	// Nth selects among elements matching a tag target.
	Nth int `yaml:"nth,omitempty"`

	// Value is the text typed by Input.
	Value string `yaml:"value,omitempty"`

	// Action calls the demo's named action with Arg.
	Action string `yaml:"action,omitempty"`

	// Arg is passed to Action.
	Arg string `yaml:"arg,omitempty"`

	// Snapshot writes the current markup.
	Snapshot bool `yaml:"snapshot,omitempty"`

	// Expect fails the run unless the markup contains it.
	Expect string `yaml:"expect,omitempty"`
}

// Kind returns the step's kind: "click", "input", "action", "snapshot",
// "expect", or "" when no kind or more than one is set.
func (s Step) Kind() string {
	kinds := 0
	kind := ""
	set := func(ok bool, k string) {
		if ok {
			kinds++
			kind = k
		}
	}
	set(s.Click != "", "click")
	set(s.Input != "", "input")
	set(s.Action != "", "action")
	set(s.Snapshot, "snapshot")
	set(s.Expect != "", "expect")
	if kinds != 1 {
		return ""
	}
	return kind
}

// Parse decodes a YAML script and validates it.
func Parse(data []byte) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return nil, werrors.New("E142").
			WithDetail("Failed to parse script: " + err.Error()).
			Wrap(err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the script at path.
func Load(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, werrors.New("E142").WithDetail("Failed to read " + path).Wrap(err)
	}
	return Parse(data)
}

// Validate checks that a demo is named and that every step has exactly
// one kind and a well-formed path.
func (s *Script) Validate() error {
	if s.Demo == "" {
		return werrors.New("E142").WithDetail("script names no demo")
	}
	for i, st := range s.Steps {
		if st.Kind() == "" {
			return werrors.New("E142").WithDetailf("step %d: exactly one of click, input, action, snapshot, expect is required", i+1)
		}
		if path, ok := strings.CutPrefix(st.Click+st.Input, "/"); ok {
			if _, err := dom.ParsePath(path); err != nil {
				return werrors.New("E142").WithDetailf("step %d: %v", i+1, err).Wrap(err)
			}
		}
		if st.Nth < 0 {
			return werrors.New("E142").WithDetailf("step %d: nth must not be negative", i+1)
		}
	}
	return nil
}

// String describes the step for logs and error messages.
func (s Step) String() string {
	target := s.Click + s.Input
	if s.Nth > 0 {
		target = fmt.Sprintf("%s #%d", target, s.Nth)
	}
	switch s.Kind() {
	case "click":
		return "click " + target
	case "input":
		return fmt.Sprintf("input %q into %s", s.Value, target)
	case "action":
		return fmt.Sprintf("action %s(%q)", s.Action, s.Arg)
	case "snapshot":
		return "snapshot"
	case "expect":
		return fmt.Sprintf("expect %q", s.Expect)
	default:
		return "invalid step"
	}
}
