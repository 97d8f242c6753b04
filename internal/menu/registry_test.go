package menu

import (
	"reflect"
	"strings"
	"testing"
)

func TestBuildRegistryIsValid(t *testing.T) {
	r := BuildRegistry()
	if err := r.Validate(); err != nil {
		t.Fatalf("expected bundled tree to validate, got %v", err)
	}
	if r.Root() != RootID {
		t.Fatalf("expected root %s, got %s", RootID, r.Root())
	}
	if _, ok := r.Screen(AudioID); !ok {
		t.Fatalf("expected audio screen registered")
	}
}

func TestValidateReportsUnknownChild(t *testing.T) {
	r := NewRegistry(NewNode("root", "", SubmenuItem("missing", "Missing")))
	err := r.Validate()
	if err == nil {
		t.Fatalf("expected validation error")
	}
	if !strings.Contains(err.Error(), "missing") {
		t.Fatalf("expected error to name the missing screen, got %v", err)
	}
}

func TestNodeResolve(t *testing.T) {
	n := NewNode("root", "Root",
		ActionItem("quit", "Quit", nil),
		SubmenuItem("settings", "Settings"),
		Item{ID: "inert", Label: "Inert"},
	)
	res, ok := n.Resolve(0)
	if !ok || res.Action == nil || res.Action.ID != "quit" {
		t.Fatalf("expected quit action, got %#v", res)
	}
	res, ok = n.Resolve(1)
	if !ok || res.Child != "settings" {
		t.Fatalf("expected settings child, got %#v", res)
	}
	if _, ok := n.Resolve(2); ok {
		t.Fatalf("expected inert item to resolve to nothing")
	}
	if _, ok := n.Resolve(7); ok {
		t.Fatalf("expected out of range index to resolve to nothing")
	}
}

func TestNewNodeDerivesTitle(t *testing.T) {
	n := NewNode("settings:key_bindings", "")
	if n.Title() != "Key Bindings" {
		t.Fatalf("expected derived title, got %q", n.Title())
	}
}

func TestBreadcrumb(t *testing.T) {
	got := Breadcrumb(AudioID)
	want := []string{"Settings", "Audio"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if got := Breadcrumb(""); len(got) != 0 {
		t.Fatalf("expected empty breadcrumb, got %v", got)
	}
}

func TestDefaultHandler(t *testing.T) {
	r := BuildRegistry()
	controls, _ := r.Find(ControlsID)
	item := controls.Items()[2]
	out := DefaultHandler(Selection{Screen: ControlsID, Row: 2, Item: item})
	result, ok := out.(ActionResult)
	if !ok {
		t.Fatalf("expected ActionResult, got %T", out)
	}
	if result.StickThreshold != 0.10 {
		t.Fatalf("expected threshold 0.10, got %v", result.StickThreshold)
	}

	root, _ := r.Find(RootID)
	out = DefaultHandler(Selection{Screen: RootID, Row: 2, Item: root.Items()[2]})
	if result := out.(ActionResult); !result.Quit {
		t.Fatalf("expected quit result, got %#v", result)
	}

	if DefaultHandler(Selection{Item: Item{ID: "x"}}) != nil {
		t.Fatalf("expected nil event for item without action")
	}
	out = DefaultHandler(Selection{Item: ActionItem("unknown", "Unknown", nil)})
	if result := out.(ActionResult); result.Err == nil {
		t.Fatalf("expected error for unhandled action")
	}
}
