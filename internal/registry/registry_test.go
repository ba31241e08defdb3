package registry

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_stub_b", func() Game { return &stubGame{id: "zz_stub_b"} })
	Register("zz_stub_a", func() Game { return &stubGame{id: "zz_stub_a"} })

	if !Exists("zz_stub_a") {
		t.Fatal("expected zz_stub_a to exist")
	}
	if Exists("zz_missing") {
		t.Error("unexpected zz_missing")
	}

	g, err := Create("zz_stub_b")
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if g.ID() != "zz_stub_b" {
		t.Errorf("ID = %q, want zz_stub_b", g.ID())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("expected error for unknown id")
	}

	var ids []string
	for _, info := range List() {
		if strings.HasPrefix(info.ID, "zz_stub_") {
			ids = append(ids, info.ID+"="+info.Title)
		}
	}
	want := []string{"zz_stub_a=ZZ_STUB_A", "zz_stub_b=ZZ_STUB_B"}
	if strings.Join(ids, ",") != strings.Join(want, ",") {
		t.Errorf("List = %v, want %v", ids, want)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })

	defer func() {
		if recover() == nil {
			t.Error("expected panic on duplicate registration")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
