package jarkup

import "testing"

// Every registered tag must select exactly one arm of the Component union,
// and unknown tags none.
func TestComponentArms_NonAmbiguous(t *testing.T) {
	arms := componentArms()
	for _, k := range Kinds() {
		obj := map[string]any{keyType: string(k), keyInline: k.Inline()}
		var matched []string
		for _, arm := range arms {
			if arm.match(obj) {
				matched = append(matched, arm.name)
			}
		}
		if len(matched) != 1 {
			t.Fatalf("%s matched %v", k, matched)
		}
		want := "BlockComponent"
		if k.Inline() {
			want = "InlineComponent"
		}
		if matched[0] != want {
			t.Fatalf("%s committed to %s, want %s", k, matched[0], want)
		}
	}
	for _, obj := range []map[string]any{{}, {keyType: "Nope"}, {keyType: 3}} {
		for _, arm := range arms {
			if arm.match(obj) {
				t.Fatalf("%v unexpectedly matched %s", obj, arm.name)
			}
		}
	}
}

func TestRegistry_Consistent(t *testing.T) {
	if len(registry.order) != len(registry.byKind) {
		t.Fatalf("order/byKind mismatch")
	}
	for _, s := range registry.order {
		z := s.zero()
		if z.Kind() != s.kind || z.Inline() != s.inline {
			t.Fatalf("%s: zero value disagrees with registry", s.kind)
		}
	}
}

func TestTokenDepth(t *testing.T) {
	if got := pickOpt(nil).tokenDepth(); got != DefaultMaxDepth*3+4 {
		t.Fatalf("default token depth: %d", got)
	}
	if got := (DecodeOpt{MaxDepth: -1}).tokenDepth(); got != 0 {
		t.Fatalf("disabled token depth: %d", got)
	}
}

func TestPath_Pointer(t *testing.T) {
	p := rootPath.at(3).field("slots").field("a/b~c").at(0)
	if got := p.Pointer(); got != "/3/slots/a~1b~0c/0" {
		t.Fatalf("pointer: %s", got)
	}
	if rootPath.Pointer() != "/" {
		t.Fatalf("root pointer")
	}
}
