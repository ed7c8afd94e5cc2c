package initwizard

import (
	"github.com/charmbracelet/huh"
	"github.com/cockroachdb/errors"
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
)

type FormBuilder interface {
	Build(defaultIdent string, result *Result) *huh.Form
}

type formBuilder struct{}

func NewFormBuilder() FormBuilder {
	return &formBuilder{}
}

func (b *formBuilder) Build(defaultIdent string, result *Result) *huh.Form {
	*result = DefaultResult(defaultIdent)
	return huh.NewForm(
		huh.NewGroup(
			b.crateIdentInput(&result.CrateIdent),
			b.failurePolicySelect(&result.FailurePolicy),
		),
	)
}

func (b *formBuilder) crateIdentInput(value *string) *huh.Input {
	return huh.NewInput().
		Title("Crate identifier").
		Description("Name of the crate this runner builds").
		Value(value).
		Validate(ValidateCrateIdent)
}

func (b *formBuilder) failurePolicySelect(value *string) *huh.Select[string] {
	return huh.NewSelect[string]().
		Title("Matrix failure policy").
		Description("fail-fast stops at the first failed build; keep-going runs the full matrix and reports every failure").
		Options(
			huh.NewOption("fail-fast", config.PolicyFailFast),
			huh.NewOption("keep-going", config.PolicyKeepGoing),
		).
		Value(value)
}

func ValidateCrateIdent(s string) error {
	if s == "" {
		return errors.New("crate identifier is required")
	}
	if len(s) > 64 {
		return errors.New("crate identifier must be 64 characters or less")
	}
	for _, c := range s {
		if !IsValidIdentChar(c) {
			return errors.Newf("invalid character %q: use lowercase letters, numbers, hyphens, and underscores only", c)
		}
	}
	if s[0] == '-' || s[len(s)-1] == '-' {
		return errors.New("crate identifier cannot start or end with a hyphen")
	}
	return nil
}

func IsValidIdentChar(c rune) bool {
	return (c >= 'a' && c <= 'z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}
