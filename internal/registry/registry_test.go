package registry

import (
	"testing"

	"github.com/vovakirdan/tui-engine/internal/engine"
)

type stubLevel struct {
	id    string
	env   Env
	built int
}

func (s *stubLevel) ID() string    { return s.id }
func (s *stubLevel) Title() string { return "Stub " + s.id }

func (s *stubLevel) Build(e *engine.Engine) error {
	s.built++
	return e.AddGameObject(engine.NewEntity("stub", 0, 0))
}

func TestRegisterCreateList(t *testing.T) {
	Register("zz-stub", func(env Env) Level { return &stubLevel{id: "zz-stub", env: env} })
	Register("aa-stub", func(env Env) Level { return &stubLevel{id: "aa-stub", env: env} })

	if !Exists("zz-stub") {
		t.Error("Exists(zz-stub) = false, expected true")
	}
	if Exists("missing") {
		t.Error("Exists(missing) = true, expected false")
	}

	var ids []string
	for _, info := range List() {
		ids = append(ids, info.ID)
		if info.ID == "aa-stub" && info.Title != "Stub aa-stub" {
			t.Errorf("Title = %q, expected %q", info.Title, "Stub aa-stub")
		}
	}
	aa, zz := -1, -1
	for i, id := range ids {
		switch id {
		case "aa-stub":
			aa = i
		case "zz-stub":
			zz = i
		}
	}
	if aa < 0 || zz < 0 || aa > zz {
		t.Errorf("List() ids = %v, expected sorted and containing both stubs", ids)
	}

	env := Env{}
	env.Runtime.ScreenW = 42
	lvl, err := Create("zz-stub", env)
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if got := lvl.(*stubLevel).env.Runtime.ScreenW; got != 42 {
		t.Errorf("env.Runtime.ScreenW = %d, expected 42", got)
	}

	e := engine.New(nil, engine.WithLevel(lvl.Build))
	if err := e.Start(); err != nil {
		t.Fatalf("Start() error = %v", err)
	}
	if e.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", e.Len())
	}
}

func TestCreateUnknown(t *testing.T) {
	if _, err := Create("does-not-exist", Env{}); err == nil {
		t.Error("Create(does-not-exist) expected error")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-stub", func(Env) Level { return &stubLevel{id: "dup-stub"} })
	defer func() {
		if recover() == nil {
			t.Error("Register() duplicate expected panic")
		}
	}()
	Register("dup-stub", func(Env) Level { return &stubLevel{id: "dup-stub"} })
}
