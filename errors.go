package opustag

import (
	"github.com/simonhull/opustag/internal/types"
)

// MalformedPageError is an alias to types.MalformedPageError.
// Re-exporting from internal/types to keep the public API in one place.
type MalformedPageError = types.MalformedPageError

// CRCMismatchError is an alias to types.CRCMismatchError.
// Re-exporting from internal/types to keep the public API in one place.
type CRCMismatchError = types.CRCMismatchError

// TruncatedStreamError is an alias to types.TruncatedStreamError.
// Re-exporting from internal/types to keep the public API in one place.
type TruncatedStreamError = types.TruncatedStreamError

// InvalidHeaderError is an alias to types.InvalidHeaderError.
// Re-exporting from internal/types to keep the public API in one place.
type InvalidHeaderError = types.InvalidHeaderError

// InvalidTagsError is an alias to types.InvalidTagsError.
// Re-exporting from internal/types to keep the public API in one place.
type InvalidTagsError = types.InvalidTagsError

// TruncatedTagsError is an alias to types.TruncatedTagsError.
// Re-exporting from internal/types to keep the public API in one place.
type TruncatedTagsError = types.TruncatedTagsError

// IncompleteStreamError is an alias to types.IncompleteStreamError.
// Re-exporting from internal/types to keep the public API in one place.
type IncompleteStreamError = types.IncompleteStreamError

// DestinationExistsError is an alias to types.DestinationExistsError.
// Re-exporting from internal/types to keep the public API in one place.
type DestinationExistsError = types.DestinationExistsError
