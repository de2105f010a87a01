package content

import "testing"

func TestRegistryGet(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Article{Key: "a", Title: "A", Published: true})
	got, ok := reg.Get("a")
	if !ok {
		t.Fatal("Get(a) missed a registered record")
	}
	if got.Title != "A" {
		t.Errorf("Get(a).Title = %q, want %q", got.Title, "A")
	}
}

func TestRegistryGetMiss(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Article{Key: "a"})
	if _, ok := reg.Get("nope"); ok {
		t.Error("Get(nope) = ok, want miss")
	}
}

func TestRegistryReregisterReplacesInPlace(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Article{Key: "a", Title: "first"})
	reg.Register(Article{Key: "b", Title: "B"})
	reg.Register(Article{Key: "a", Title: "second"})

	if reg.Len() != 2 {
		t.Errorf("Len = %d after re-register, want 2", reg.Len())
	}
	got, _ := reg.Get("a")
	if got.Title != "second" {
		t.Errorf("Get(a).Title = %q, want replaced payload", got.Title)
	}
	all := reg.All()
	if len(all) != 2 || all[0].Key != "a" || all[1].Key != "b" {
		t.Errorf("All order changed after re-register: %v", keysOf(all))
	}
}

func TestRegistryAllKeepsOrderAndUnpublished(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Article{Key: "c", Published: true})
	reg.Register(Article{Key: "a", Published: false})
	reg.Register(Article{Key: "b", Published: true})

	all := reg.All()
	want := []string{"c", "a", "b"}
	got := keysOf(all)
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("All order = %v, want %v", got, want)
		}
	}
}

func keysOf(records []Article) []string {
	keys := make([]string, len(records))
	for i, a := range records {
		keys[i] = a.Key
	}
	return keys
}
