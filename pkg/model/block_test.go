package model

import "testing"

func TestBlockIsEmpty(t *testing.T) {
	cases := []struct {
		name string
		b    Block
		want bool
	}{
		{"unfixed empty", Block{Kind: Empty}, true},
		{"fixed empty is not placeable", Block{Kind: Empty, Fixed: true}, false},
		{"none", Block{Kind: None, Fixed: true}, false},
		{"fixed reflect", Block{Kind: Reflect, Fixed: true}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := c.b.IsEmpty(); got != c.want {
				t.Errorf("IsEmpty() = %v, want %v", got, c.want)
			}
		})
	}
}

func TestBlockInteracts(t *testing.T) {
	interacting := []BlockKind{Reflect, Opaque, Refract}
	for _, k := range interacting {
		if !(Block{Kind: k}).Interacts() {
			t.Errorf("expected kind %v to interact", k)
		}
	}
	noninteracting := []BlockKind{Empty, None, LaserTrace}
	for _, k := range noninteracting {
		if (Block{Kind: k}).Interacts() {
			t.Errorf("expected kind %v not to interact", k)
		}
	}
}

func TestBlockKindString(t *testing.T) {
	cases := map[BlockKind]string{
		Empty:   "o",
		None:    "x",
		Reflect: "A",
		Opaque:  "B",
		Refract: "C",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("%v.String() = %q, want %q", k, got, want)
		}
	}
}
