package initwizard_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/huh"
	"github.com/esb-rs/esbci/cmd/esbci/internal/initwizard"
)

func TestAccessibleRunner(t *testing.T) {
	t.Parallel()

	t.Run("runs form in accessible mode", func(t *testing.T) {
		t.Parallel()
		var output bytes.Buffer
		input := strings.NewReader("esb\n")

		var value string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().Title("Crate identifier").Value(&value),
			),
		)

		runner := initwizard.NewAccessibleRunner(&output, input)
		err := runner.Run(form)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if value != "esb" {
			t.Errorf("expected value 'esb', got %q", value)
		}
		if !strings.Contains(output.String(), "Crate identifier") {
			t.Errorf("expected output to contain 'Crate identifier', got %q", output.String())
		}
	})
}
