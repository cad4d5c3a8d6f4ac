package registry

import (
	"context"
	"testing"
)

type testBackend struct{ id string }

func (b testBackend) ID() string                     { return b.id }
func (b testBackend) Title() string                  { return "Test " + b.id }
func (b testBackend) Run(context.Context, Env) error { return nil }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz-test", func() Backend { return testBackend{id: "zz-test"} })
	Register("aa-test", func() Backend { return testBackend{id: "aa-test"} })

	if !Exists("zz-test") {
		t.Fatal("Exists(zz-test) = false")
	}
	if Exists("nope") {
		t.Error("Exists(nope) = true")
	}

	b, err := Create("zz-test")
	if err != nil {
		t.Fatalf("Create() failed: %v", err)
	}
	if b.ID() != "zz-test" {
		t.Errorf("ID() = %q", b.ID())
	}

	if _, err := Create("nope"); err == nil {
		t.Error("Create(nope) should fail")
	}

	list := List()
	var aa, zz = -1, -1
	for i, info := range list {
		switch info.ID {
		case "aa-test":
			aa = i
			if info.Title != "Test aa-test" {
				t.Errorf("Title = %q", info.Title)
			}
		case "zz-test":
			zz = i
		}
	}
	if aa < 0 || zz < 0 || aa > zz {
		t.Errorf("List() not sorted or missing entries: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Backend { return testBackend{id: "dup-test"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Backend { return testBackend{id: "dup-test"} })
}
