package registry

import (
	"testing"

	"github.com/vovakirdan/tui-klondike/internal/klondike"
)

func TestBuiltinVariants(t *testing.T) {
	list := List()
	if len(list) < 2 {
		t.Fatalf("List() = %v, want at least basic and whitehead", list)
	}
	if list[0].ID != "basic" || list[1].ID != "whitehead" {
		t.Errorf("List() = %v, want sorted basic, whitehead", list)
	}

	for _, info := range list {
		if !Exists(info.ID) {
			t.Errorf("Exists(%q) = false", info.ID)
		}
		v, err := Variant(info.ID)
		if err != nil {
			t.Fatalf("Variant(%q) error: %v", info.ID, err)
		}
		if v.Name() != info.ID {
			t.Errorf("Variant(%q).Name() = %q", info.ID, v.Name())
		}
	}
}

func TestCreate(t *testing.T) {
	seed := uint64(42)
	a, err := Create("whitehead", &seed)
	if err != nil {
		t.Fatalf("Create() error: %v", err)
	}
	b, _ := Create("whitehead", &seed)
	for _, g := range []*klondike.Game{a, b} {
		if err := g.Start(klondike.NewDeck(), true, 7, 1); err != nil {
			t.Fatalf("Start() error: %v", err)
		}
	}
	ha, _ := a.DrawHand()
	hb, _ := b.DrawHand()
	if ha[0] != hb[0] {
		t.Errorf("seeded games dealt %v and %v", ha, hb)
	}

	g, err := Create("basic", nil)
	if err != nil {
		t.Fatalf("Create(basic) error: %v", err)
	}
	if g.Variant().Name() != "basic" {
		t.Errorf("variant = %q, want basic", g.Variant().Name())
	}
}

func TestUnknownVariant(t *testing.T) {
	if Exists("spider") {
		t.Error("Exists(spider) = true")
	}
	if _, err := Create("spider", nil); err == nil {
		t.Error("Create(spider) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("basic", "Again", func() klondike.Variant { return klondike.Basic{} })
}
