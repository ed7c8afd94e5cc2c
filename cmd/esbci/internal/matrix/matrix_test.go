package matrix_test

import (
	"testing"

	"github.com/esb-rs/esbci/cmd/esbci/internal/matrix"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("pairs features and targets positionally", func(t *testing.T) {
		t.Parallel()
		m, err := matrix.New(
			[]string{"51", "52810"},
			[]string{"thumbv6m-none-eabi", "thumbv7em-none-eabi"},
		)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m) != 2 {
			t.Fatalf("expected 2 entries, got %d", len(m))
		}
		if m[0].Feature != "51" || m[0].Target != "thumbv6m-none-eabi" {
			t.Errorf("unexpected first entry: %+v", m[0])
		}
		if m[1].Feature != "52810" || m[1].Target != "thumbv7em-none-eabi" {
			t.Errorf("unexpected second entry: %+v", m[1])
		}
	})

	t.Run("rejects unequal lengths", func(t *testing.T) {
		t.Parallel()
		_, err := matrix.New([]string{"51", "52810"}, []string{"thumbv6m-none-eabi"})
		if err == nil {
			t.Fatal("expected error for unequal lists, got nil")
		}
	})

	t.Run("empty lists yield empty matrix", func(t *testing.T) {
		t.Parallel()
		m, err := matrix.New(nil, nil)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(m) != 0 {
			t.Errorf("expected empty matrix, got %d entries", len(m))
		}
	})
}

func TestInvocation(t *testing.T) {
	t.Parallel()

	entry := matrix.Entry{Feature: "52840", Target: "thumbv7em-none-eabihf"}
	got := entry.Invocation([]string{"cargo", "build"})

	want := []string{"cargo", "build", "--features=52840", "--target=thumbv7em-none-eabihf"}
	if len(got) != len(want) {
		t.Fatalf("expected %d args, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("arg %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestInvocationDoesNotAliasBase(t *testing.T) {
	t.Parallel()

	base := make([]string, 2, 8)
	base[0], base[1] = "cargo", "build"

	entry := matrix.Entry{Feature: "51", Target: "a"}
	_ = entry.Invocation(base)

	other := matrix.Entry{Feature: "52810", Target: "b"}
	got := other.Invocation(base)

	if got[2] != "--features=52810" {
		t.Errorf("invocation reused backing array: %v", got)
	}
}

func TestDefault(t *testing.T) {
	t.Parallel()

	m := matrix.Default()
	if len(m) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(m))
	}

	want := matrix.Matrix{
		{Feature: "51", Target: "thumbv6m-none-eabi"},
		{Feature: "52810", Target: "thumbv7em-none-eabi"},
		{Feature: "52840", Target: "thumbv7em-none-eabihf"},
	}
	for i := range want {
		if m[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], m[i])
		}
	}
}
