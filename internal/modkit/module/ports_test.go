package module

import (
	"strings"
	"testing"

	phttp "taller/internal/platform/net/http"
	"taller/internal/platform/testkit"
)

type fooPort interface{ Foo() int }

type fooImpl struct{ v int }

func (f fooImpl) Foo() int { return f.v }

type fakeModule struct {
	name  string
	ports any
}

func (m fakeModule) Name() string             { return m.name }
func (m fakeModule) Ports() any               { return m.ports }
func (m fakeModule) MountRoutes(phttp.Router) {}

func TestPortsOf(t *testing.T) {
	t.Parallel()

	type bundle struct {
		Foo fooPort
		N   int
	}
	type hidden struct {
		foo fooPort
	}

	cases := []struct {
		name  string
		ports any
		want  int
		ok    bool
	}{
		{"nil", nil, 0, false},
		{"direct", fooPort(fooImpl{v: 1}), 1, true},
		{"struct field", bundle{Foo: fooImpl{v: 2}}, 2, true},
		{"pointer bundle", &bundle{Foo: fooImpl{v: 3}}, 3, true},
		{"nil pointer bundle", (*bundle)(nil), 0, false},
		{"unexported field", hidden{foo: fooImpl{v: 4}}, 0, false},
		{"scalar", 5, 0, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := PortsOf[fooPort](fakeModule{ports: tc.ports})
			if ok != tc.ok {
				t.Fatalf("ok=%v want %v", ok, tc.ok)
			}
			if ok && got.Foo() != tc.want {
				t.Fatalf("Foo=%d want %d", got.Foo(), tc.want)
			}
		})
	}
}

func TestMustPortsOf_PanicNamesModule(t *testing.T) {
	t.Parallel()

	defer func() {
		msg, _ := recover().(string)
		if !strings.Contains(msg, "analysis") {
			t.Fatalf("panic message %q", msg)
		}
	}()
	_ = MustPortsOf[fooPort](fakeModule{name: "analysis"})
	t.Fatalf("expected panic")
}

func TestMustPortsOf_Value(t *testing.T) {
	t.Parallel()
	testkit.MustNotPanic(t, func() {
		if MustPortsOf[fooPort](fakeModule{ports: fooPort(fooImpl{v: 9})}).Foo() != 9 {
			t.Fatalf("wrong value")
		}
	})
}
