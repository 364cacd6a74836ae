// Package types provides type definitions for structured data used throughout the interview-coach system.
//
//nolint:revive // types is a standard Go package name pattern
package types

// CandidateProfile is the resume-derived view of a candidate. It is supplied
// once by the resume-parsing collaborator and is immutable for the duration of
// one interview.
type CandidateProfile struct {
	Name            string      `json:"name"`
	TargetRole      string      `json:"target_role"`
	ExperienceLevel string      `json:"experience_level"`
	Skills          []string    `json:"skills"`
	Projects        []Project   `json:"projects"`
	PriorRoles      []PriorRole `json:"prior_roles"`
}

// Project represents a named project from the candidate's resume
type Project struct {
	Name         string   `json:"name"`
	Technologies []string `json:"technologies,omitempty"`
	Description  string   `json:"description,omitempty"`
}

// PriorRole represents a previous position from the candidate's resume
type PriorRole struct {
	Title            string   `json:"title"`
	Company          string   `json:"company"`
	Technologies     []string `json:"technologies,omitempty"`
	Responsibilities []string `json:"responsibilities,omitempty"`
}
