package dom

import (
	"errors"
	"reflect"
	"testing"
)

func TestFindAndPaths(t *testing.T) {
	d := NewDocument()
	root := d.CreateElement("div")
	for i := 0; i < 3; i++ {
		row := d.CreateElement("div")
		d.AppendChild(row, d.CreateText("row"))
		d.AppendChild(row, d.CreateElement("button"))
		d.AppendChild(root, row)
		d.AppendChild(root, d.CreateComment("sep"))
	}

	buttons := d.FindAll(root, "button")
	if len(buttons) != 3 {
		t.Fatalf("FindAll found %d buttons", len(buttons))
	}
	if d.Find(root, "BUTTON") != buttons[0] {
		t.Error("Find should return the first button")
	}
	if d.Find(root, "table") != nil {
		t.Error("Find should return nil when nothing matches")
	}

	path, err := d.PathOf(root, buttons[2])
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(path, []int{2, 0}) {
		t.Errorf("PathOf = %v, want [2 0]", path)
	}

	n, err := d.NodeAt(root, path)
	if err != nil || n != buttons[2] {
		t.Errorf("NodeAt(%v) = %v, %v", path, n, err)
	}

	if _, err := d.NodeAt(root, []int{5}); !errors.Is(err, ErrNotFound) {
		t.Errorf("NodeAt out of range err = %v", err)
	}
}

func TestParsePath(t *testing.T) {
	tests := []struct {
		in      string
		want    []int
		wantErr bool
	}{
		{"", nil, false},
		{"0", []int{0}, false},
		{"1/0/3", []int{1, 0, 3}, false},
		{"1/x", nil, true},
	}
	for _, tt := range tests {
		got, err := ParsePath(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParsePath(%q) err = %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParsePath(%q) = %v, want %v", tt.in, got, tt.want)
		}
		if !tt.wantErr && FormatPath(got) != tt.in {
			t.Errorf("FormatPath(ParsePath(%q)) = %q", tt.in, FormatPath(got))
		}
	}
}

func TestParse(t *testing.T) {
	d := NewDocument()
	root, err := d.Parse(`<p class="a">hi</p><!--x--><span></span>`)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if got := len(d.ChildNodes(root)); got != 3 {
		t.Errorf("ChildNodes = %d, want 3", got)
	}
	if !d.HasClass(d.Find(root, "p"), "a") {
		t.Error("expected parsed class to be kept")
	}
	if got, want := mustInner(t, d, root), `<p class="a">hi</p><!--x--><span></span>`; got != want {
		t.Errorf("InnerHTML = %q, want %q", got, want)
	}
}
