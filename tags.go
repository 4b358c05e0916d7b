package opustag

import (
	"github.com/simonhull/opustag/internal/types"
)

// Tags is an alias to types.Tags.
// Re-exported from internal/types so internal packages can share the type.
type Tags = types.Tags

// EditPlan is an alias to types.EditPlan.
// Re-exported from internal/types so internal packages can share the type.
type EditPlan = types.EditPlan

// FieldName returns the field-name part of a "FIELD=VALUE" comment.
func FieldName(comment string) string {
	return types.FieldName(comment)
}
