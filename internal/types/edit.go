package types

import "slices"

// EditPlan describes the modifications to apply to a comment header.
//
// The zero value is the empty plan: applying it leaves the tags unchanged.
type EditPlan struct {
	// DeleteAll clears the whole comment list before anything is added.
	DeleteAll bool

	// Delete lists field names whose comments are removed. Matching is
	// case-insensitive. Ignored when DeleteAll is set.
	Delete []string

	// SetAll replaces the comment list wholesale with Replace.
	SetAll bool

	// Replace is the replacement list used when SetAll is set.
	Replace []string

	// Add lists comments appended at the end, in order.
	Add []string
}

// Apply mutates tags according to the plan.
//
// The phases run in a fixed order: the delete phase first (DeleteAll or
// per-name deletes), then the SetAll replacement, then appends. This order
// makes "set FIELD=VALUE" (delete FIELD + add FIELD=VALUE) remove existing
// entries before appending the new one, and makes additions land after a
// wholesale replacement.
func (p *EditPlan) Apply(tags *Tags) {
	if p.DeleteAll {
		tags.DeleteAll()
	} else {
		for _, name := range p.Delete {
			tags.Delete(name)
		}
	}

	if p.SetAll {
		tags.Comments = slices.Clone(p.Replace)
	}

	for _, comment := range p.Add {
		tags.Add(comment)
	}
}

// Empty reports whether applying the plan can never change any tag set.
func (p *EditPlan) Empty() bool {
	return !p.DeleteAll && !p.SetAll && len(p.Delete) == 0 && len(p.Add) == 0
}
