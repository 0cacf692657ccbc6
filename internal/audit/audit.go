package audit

import (
	"errors"
	"fmt"

	"github.com/alexr/huntboard/internal/schemas"
	"github.com/alexr/huntboard/internal/types"
)

// AuditResult is the outcome of auditing a record or action. Errors means
// the record must be rejected; Warnings accompany records that are accepted
// but look unusual.
type AuditResult struct {
	Passed   bool     `json:"passed"`
	Warnings []string `json:"warnings"`
	Errors   []string `json:"errors"`
}

// Auditor validates records against their schemas and logs the outcome.
type Auditor struct {
	log *Logger
}

// NewAuditor creates an Auditor that reports through the given logger.
func NewAuditor(log *Logger) *Auditor {
	if log == nil {
		log = NewLogger(nil)
	}
	return &Auditor{log: log}
}

// Log exposes the underlying audit logger.
func (a *Auditor) Log() *Logger {
	return a.log
}

// auditSchema validates a record against a named schema and logs the result.
func (a *Auditor) auditSchema(schema, entity string, record Record) AuditResult {
	result := AuditResult{Warnings: []string{}, Errors: []string{}}

	err := schemas.Validate(schema, map[string]any(record))
	if err != nil {
		var ve *schemas.ValidationError
		if errors.As(err, &ve) {
			result.Errors = append(result.Errors, ve.Messages()...)
		} else {
			result.Errors = append(result.Errors, err.Error())
		}
		a.log.Error(entity+" validation failed", map[string]any{"errors": result.Errors})
		return result
	}

	result.Passed = true
	return result
}

// AuditApplication validates an application record before persistence.
func (a *Auditor) AuditApplication(record Record) AuditResult {
	result := a.auditSchema(schemas.Application, "Application", record)
	if !result.Passed {
		return result
	}
	a.log.Info("Application data validated successfully", map[string]any{"application_id": record["id"]})
	return result
}

// AuditJob validates a job record before persistence. A stored match score
// outside [0,100] is accepted with a warning.
func (a *Auditor) AuditJob(record Record) AuditResult {
	result := a.auditSchema(schemas.Job, "Job", record)
	if !result.Passed {
		return result
	}

	if score, ok := numberField(record, "match_score"); ok {
		if score < 0 || score > 100 {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("Match score %g is out of valid range (0-100)", score))
		}
	}

	a.log.Info("Job data validated successfully", map[string]any{"job_id": record["id"]})
	return result
}

// AuditUser validates a user record before persistence.
func (a *Auditor) AuditUser(record Record) AuditResult {
	result := a.auditSchema(schemas.User, "User", record)
	if !result.Passed {
		return result
	}
	a.log.Info("User data validated successfully", map[string]any{"user_id": record["id"]})
	return result
}

// AuditStageChange validates a proposed application stage transition,
// logging invalid transitions as errors and unusual ones as warnings.
func (a *Auditor) AuditStageChange(applicationID string, from, to types.Stage) AuditResult {
	result := AuditResult{Warnings: []string{}, Errors: []string{}}

	transition := ValidateStageTransition(from, to)
	if !transition.Valid {
		result.Errors = append(result.Errors,
			fmt.Sprintf("Invalid stage transition from %s to %s", from, to))
		a.log.Error("Invalid stage transition", map[string]any{
			"application_id": applicationID,
			"from_stage":     string(from),
			"to_stage":       string(to),
		})
		return result
	}

	if transition.Warning != "" {
		result.Warnings = append(result.Warnings, transition.Warning)
		a.log.Warn("Stage transition warning", map[string]any{
			"application_id": applicationID,
			"from_stage":     string(from),
			"to_stage":       string(to),
			"warning":        transition.Warning,
		})
	}

	result.Passed = true
	a.log.Info("Stage transition validated", map[string]any{
		"application_id": applicationID,
		"from_stage":     string(from),
		"to_stage":       string(to),
	})
	return result
}

// numberField reads a numeric field from a record, tolerating the integer
// and float types JSON decoding and callers produce.
func numberField(record Record, key string) (float64, bool) {
	switch v := record[key].(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}
