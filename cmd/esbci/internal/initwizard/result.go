package initwizard

import (
	"github.com/esb-rs/esbci/cmd/esbci/internal/config"
	"github.com/iancoleman/strcase"
)

type Result struct {
	CrateIdent    string
	FailurePolicy string
}

// DefaultResult seeds the form. The ident usually comes from the crate
// directory name, which may carry casing that crates.io would reject.
func DefaultResult(defaultIdent string) Result {
	return Result{
		CrateIdent:    strcase.ToKebab(defaultIdent),
		FailurePolicy: config.PolicyFailFast,
	}
}
