// Package schemas validates and loads inbound candidate profiles. Profiles
// arrive as arbitrary JSON from the resume-parsing collaborator; validation
// happens at the boundary so the core can trust its inputs.
package schemas

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"github.com/jonathan/interview-coach/internal/types"
	"github.com/xeipuuv/gojsonschema"
)

//go:embed candidate_profile.schema.json
var candidateProfileSchema string

// FieldError represents a single validation error at a specific field
type FieldError struct {
	Field   string
	Message string
}

// ValidationError represents a schema validation failure with field paths
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 0 {
		return "profile validation failed"
	}
	return fmt.Sprintf("profile validation failed: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
}

// ValidateProfile checks raw profile JSON against the embedded schema.
func ValidateProfile(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(candidateProfileSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("failed to validate profile: %w", err)
	}

	if !result.Valid() {
		validationErr := &ValidationError{}
		for _, resultError := range result.Errors() {
			validationErr.Errors = append(validationErr.Errors, FieldError{
				Field:   resultError.Field(),
				Message: resultError.Description(),
			})
		}
		return validationErr
	}

	return nil
}

// ParseProfile validates raw profile JSON and unmarshals it with defaults
// applied: missing collections become empty, so downstream prompt building
// never distinguishes nil from absent.
func ParseProfile(data []byte) (*types.CandidateProfile, error) {
	if err := ValidateProfile(data); err != nil {
		return nil, err
	}

	var profile types.CandidateProfile
	if err := json.Unmarshal(data, &profile); err != nil {
		return nil, fmt.Errorf("failed to parse profile JSON: %w", err)
	}

	if profile.Skills == nil {
		profile.Skills = []string{}
	}
	if profile.Projects == nil {
		profile.Projects = []types.Project{}
	}
	if profile.PriorRoles == nil {
		profile.PriorRoles = []types.PriorRole{}
	}

	return &profile, nil
}
