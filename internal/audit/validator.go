// Package audit validates domain records and pipeline stage transitions
// before they are persisted, and keeps a bounded in-memory audit log.
package audit

import (
	"fmt"
	"strings"

	"github.com/alexr/huntboard/internal/types"
)

// TransitionResult is the outcome of validating a proposed stage transition.
// Valid is false only when one of the stages is outside the pipeline
// enumeration. Unusual-but-allowed transitions are valid with a Warning.
type TransitionResult struct {
	Valid   bool   `json:"valid"`
	Warning string `json:"warning,omitempty"`
}

// ValidateStageTransition checks whether moving an application from one
// stage to another is legal. Staying in place, moving forward any distance,
// and closing from anywhere are silently accepted. Reopening a closed
// application or moving backwards is accepted with a warning. The caller
// decides whether to reject outright (only on Valid=false) or proceed while
// surfacing the warning.
func ValidateStageTransition(from, to types.Stage) TransitionResult {
	if !from.Valid() || !to.Valid() {
		return TransitionResult{Valid: false}
	}

	if from == types.StageClosed && to != types.StageClosed {
		return TransitionResult{
			Valid:   true,
			Warning: "Reopening a closed application - this is unusual",
		}
	}

	if to.Order() < from.Order() && to != types.StageClosed {
		return TransitionResult{
			Valid:   true,
			Warning: fmt.Sprintf("Moving backwards from %s to %s - this is unusual", from, to),
		}
	}

	return TransitionResult{Valid: true}
}

// Record is an arbitrary field map headed for persistence. Values may be
// strings, numbers, booleans, nil (persisted as SQL NULL), nested maps or
// slices, or the Undefined sentinel for fields that were never supplied.
type Record map[string]any

// Undefined marks a field that was never supplied, as opposed to one
// explicitly set to nil. SanitizeForDatabase drops Undefined fields and
// keeps nil ones.
var Undefined = undefined{}

type undefined struct{}

func (undefined) String() string { return "<undefined>" }

// SanitizeForDatabase returns a copy of the record ready for persistence:
// Undefined fields are dropped, string values are trimmed (an all-whitespace
// string becomes the empty string, it is not dropped), and every other value
// passes through unchanged by reference. The input is never mutated.
func SanitizeForDatabase(rec Record) Record {
	sanitized := make(Record, len(rec))
	for key, value := range rec {
		if _, missing := value.(undefined); missing {
			continue
		}
		if s, ok := value.(string); ok {
			sanitized[key] = strings.TrimSpace(s)
			continue
		}
		sanitized[key] = value
	}
	return sanitized
}

// RequiredFieldsResult reports which fields of a record are missing.
type RequiredFieldsResult struct {
	Valid         bool     `json:"valid"`
	MissingFields []string `json:"missing_fields"`
}

// CheckRequiredFields treats every key of the record as required and reports
// the ones that are Undefined, nil, or blank strings.
func CheckRequiredFields(rec Record) RequiredFieldsResult {
	missing := make([]string, 0)
	for key, value := range rec {
		switch v := value.(type) {
		case undefined:
			missing = append(missing, key)
		case nil:
			missing = append(missing, key)
		case string:
			if strings.TrimSpace(v) == "" {
				missing = append(missing, key)
			}
		}
	}
	return RequiredFieldsResult{
		Valid:         len(missing) == 0,
		MissingFields: missing,
	}
}
