package terminal

import (
	"sort"
	"testing"
)

func TestBindAndExecute(t *testing.T) {
	term := New()

	var fired bool
	var gotInt int
	var gotString string

	if err := term.BindAction("ping", "no-arg action", func() { fired = true }); err != nil {
		t.Fatalf("BindAction: %v", err)
	}
	if err := term.BindAction("level", "int action", func(n int) { gotInt = n }); err != nil {
		t.Fatalf("BindAction: %v", err)
	}
	if err := term.BindAction("name", "string action", func(s string) { gotString = s }); err != nil {
		t.Fatalf("BindAction: %v", err)
	}

	if err := term.Execute("ping"); err != nil {
		t.Fatalf("Execute ping: %v", err)
	}
	if !fired {
		t.Fatal("ping handler did not run")
	}

	if err := term.Execute("level 2"); err != nil {
		t.Fatalf("Execute level: %v", err)
	}
	if gotInt != 2 {
		t.Fatalf("gotInt = %d, want 2", gotInt)
	}

	if err := term.Execute("name act1"); err != nil {
		t.Fatalf("Execute name: %v", err)
	}
	if gotString != "act1" {
		t.Fatalf("gotString = %q, want act1", gotString)
	}
}

func TestExecuteErrors(t *testing.T) {
	term := New()
	if err := term.BindAction("level", "int action", func(int) {}); err != nil {
		t.Fatalf("BindAction: %v", err)
	}

	cases := []struct {
		name string
		line string
	}{
		{"empty", ""},
		{"whitespace", "   "},
		{"unknown", "nope"},
		{"missing_arg", "level"},
		{"bad_int", "level two"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := term.Execute(c.line); err == nil {
				t.Fatalf("Execute(%q) should fail", c.line)
			}
		})
	}
}

func TestBindRejectsUnsupportedSignature(t *testing.T) {
	term := New()
	if err := term.BindAction("bad", "unsupported", func(float64) {}); err == nil {
		t.Fatal("expected an error for func(float64)")
	}
}

func TestActionsSorted(t *testing.T) {
	term := New()
	_ = term.BindAction("zeta", "last", func() {})
	_ = term.BindAction("alpha", "first", func() {})
	_ = term.BindAction("mid", "middle", func() {})

	actions := term.Actions()
	if len(actions) != 3 {
		t.Fatalf("%d actions, want 3", len(actions))
	}
	if !sort.StringsAreSorted(actions) {
		t.Fatalf("actions not sorted: %v", actions)
	}
}
