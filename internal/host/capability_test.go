package host

import "testing"

func TestGrantsDenyByDefault(t *testing.T) {
	g := NewGrants()
	if g.Has("FS") {
		t.Fatal("fresh Grants should deny every capability")
	}
}

func TestGrantsGrantIsIdempotent(t *testing.T) {
	g := NewGrants()
	g.Grant(NewCapability("FS"))
	g.Grant(NewCapability("FS"))
	if !g.Has("FS") {
		t.Fatal("FS should be granted")
	}
	if g.Has("Net") {
		t.Fatal("Net was never granted")
	}
}
