package ui_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lichnak/rg3d/pkg/graphics"
	"github.com/lichnak/rg3d/pkg/ui"
)

// propertyLog records SetProperty calls in order.
type propertyLog struct {
	ui.ControlBase
	applied []ui.Setter
}

func (p *propertyLog) SetProperty(name string, value any) {
	p.applied = append(p.applied, ui.Setter{Name: name, Value: value})
}

func TestApplyStyleWalksBaseChainFirst(t *testing.T) {
	grandBase := ui.NewStyle().
		AddSetter("background", "dark").
		AddSetter("padding", 2)
	base := ui.NewStyle().
		WithBase(grandBase).
		AddSetter("background", "mid")
	style := ui.NewStyle().
		WithBase(base).
		AddSetter("background", "light").
		AddSetter("border", 1)

	node := &propertyLog{ControlBase: ui.NewControlBase()}
	ui.ApplyStyle(node, style)

	want := []ui.Setter{
		{Name: "background", Value: "dark"},
		{Name: "padding", Value: 2},
		{Name: "background", Value: "mid"},
		{Name: "background", Value: "light"},
		{Name: "border", Value: 1},
	}
	if diff := cmp.Diff(want, node.applied); diff != "" {
		t.Errorf("setter application order (-want +got):\n%s", diff)
	}
	if node.Widget().Style() != style {
		t.Error("the outermost style must be recorded on the widget")
	}
}

func TestApplyNilStyleIsNoOp(t *testing.T) {
	node := &propertyLog{ControlBase: ui.NewControlBase()}
	ui.ApplyStyle(node, nil)
	if len(node.applied) != 0 || node.Widget().Style() != nil {
		t.Error("nil style must change nothing")
	}
}

const testSheet = `
styles:
  base:
    setters:
      - {name: fill_color, value: "#303030"}
      - {name: stroke_thickness, value: 2.0}
  accent:
    base: base
    setters:
      - {name: stroke_color, value: cornflowerblue}
  plain:
    setters:
      - {name: label, value: hello}
`

func TestLoadStylesheet(t *testing.T) {
	sheet, err := ui.LoadStylesheet(strings.NewReader(testSheet))
	if err != nil {
		t.Fatalf("LoadStylesheet: %v", err)
	}

	accent, ok := sheet["accent"]
	if !ok {
		t.Fatal("missing style accent")
	}
	if accent.Base() != sheet["base"] {
		t.Error("accent must share the resolved base style")
	}

	node := &propertyLog{ControlBase: ui.NewControlBase()}
	ui.ApplyStyle(node, accent)

	want := []ui.Setter{
		{Name: "fill_color", Value: graphics.RGB(0x30, 0x30, 0x30)},
		{Name: "stroke_thickness", Value: float32(2)},
		{Name: "stroke_color", Value: graphics.RGB(100, 149, 237)},
	}
	if diff := cmp.Diff(want, node.applied); diff != "" {
		t.Errorf("applied setters (-want +got):\n%s", diff)
	}

	// Strings that are not colors stay strings.
	plain := sheet["plain"]
	if got := plain.Setters()[0].Value; got != "hello" {
		t.Errorf("non-color value = %v (%T), want \"hello\"", got, got)
	}
}

func TestLoadStylesheetRejectsUnknownBase(t *testing.T) {
	_, err := ui.LoadStylesheet(strings.NewReader(`
styles:
  broken:
    base: nonexistent
    setters: []
`))
	if err == nil || !strings.Contains(err.Error(), "unknown base style") {
		t.Errorf("err = %v, want unknown base style error", err)
	}
}

func TestLoadStylesheetRejectsCycles(t *testing.T) {
	_, err := ui.LoadStylesheet(strings.NewReader(`
styles:
  a:
    base: b
    setters: []
  b:
    base: a
    setters: []
`))
	if err == nil || !strings.Contains(err.Error(), "cyclic base reference") {
		t.Errorf("err = %v, want cyclic base reference error", err)
	}
}

func TestLoadStylesheetRejectsMalformedYAML(t *testing.T) {
	_, err := ui.LoadStylesheet(strings.NewReader("styles: ["))
	if err == nil {
		t.Error("malformed YAML must error")
	}
}
