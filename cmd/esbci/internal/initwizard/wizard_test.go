package initwizard_test

import (
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
	"github.com/esb-rs/esbci/cmd/esbci/internal/initwizard"
)

type mockRunner struct {
	runFunc func(*huh.Form) error
}

func (m *mockRunner) Run(form *huh.Form) error {
	if m.runFunc != nil {
		return m.runFunc(form)
	}
	return nil
}

func TestWizard_Run(t *testing.T) {
	t.Parallel()

	t.Run("returns result from successful form run", func(t *testing.T) {
		t.Parallel()
		builder := initwizard.NewFormBuilder()
		runner := &mockRunner{
			runFunc: func(_ *huh.Form) error {
				return nil
			},
		}

		wizard := initwizard.New(builder, runner)
		result, err := wizard.Run("esb")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.CrateIdent != "esb" {
			t.Errorf("expected crate ident 'esb', got %q", result.CrateIdent)
		}
		if result.FailurePolicy != config.PolicyFailFast {
			t.Errorf("expected failure policy 'fail-fast', got %q", result.FailurePolicy)
		}
	})

	t.Run("propagates runner error", func(t *testing.T) {
		t.Parallel()
		builder := initwizard.NewFormBuilder()
		expectedErr := errors.New("user aborted")
		runner := &mockRunner{
			runFunc: func(_ *huh.Form) error {
				return expectedErr
			},
		}

		wizard := initwizard.New(builder, runner)
		_, err := wizard.Run("esb")

		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !errors.Is(err, expectedErr) {
			t.Errorf("expected wrapped runner error, got %v", err)
		}
	})
}
