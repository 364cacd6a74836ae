// Package catalog provides the static, ordered interview section catalog and
// lookup operations over it. The catalog is fixed reference data: it is never
// user-supplied, so a failed lookup on a mandatory path is a configuration
// error for the caller.
package catalog

import (
	"fmt"

	"github.com/jonathan/interview-coach/internal/types"
)

// Catalog is an ordered, immutable sequence of interview sections. The first
// section is the interview entry point and the last is terminal.
type Catalog struct {
	sections []types.Section
}

// defaultSections is the standard interview structure
var defaultSections = []types.Section{
	{
		ID:           "greeting",
		DisplayName:  "Introduction & Welcome",
		MinQuestions: 1,
		MaxQuestions: 2,
		Topics:       []string{"introduction", "background_overview"},
	},
	{
		ID:           "resume",
		DisplayName:  "Resume Discussion",
		MinQuestions: 3,
		MaxQuestions: 6,
		Topics:       []string{"work_experience", "career_progression", "achievements", "skills_application"},
	},
	{
		ID:           "projects",
		DisplayName:  "Projects Deep-Dive",
		MinQuestions: 4,
		MaxQuestions: 8,
		Topics:       []string{"project_overview", "technical_challenges", "problem_solving", "architecture_decisions", "outcomes"},
	},
	{
		ID:           "behavioral",
		DisplayName:  "Behavioral Assessment",
		MinQuestions: 3,
		MaxQuestions: 6,
		Topics:       []string{"teamwork", "leadership", "conflict_resolution", "adaptability", "learning"},
	},
	{
		ID:           "technical",
		DisplayName:  "Technical Expertise",
		MinQuestions: 4,
		MaxQuestions: 8,
		Topics:       []string{"technical_knowledge", "best_practices", "system_design", "problem_solving", "code_quality"},
	},
	{
		ID:           "closing",
		DisplayName:  "Wrap-up & Questions",
		MinQuestions: 1,
		MaxQuestions: 2,
		Topics:       []string{"candidate_questions", "final_thoughts"},
	},
}

// Default returns the standard six-section interview catalog.
func Default() *Catalog {
	return &Catalog{sections: defaultSections}
}

// New builds a catalog from the given sections. Returns an error if the
// section list violates catalog invariants.
func New(sections []types.Section) (*Catalog, error) {
	c := &Catalog{sections: sections}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks catalog invariants: at least one section, unique ids,
// min <= max per section, and no duplicate topics within a section.
func (c *Catalog) Validate() error {
	if len(c.sections) == 0 {
		return fmt.Errorf("catalog has no sections")
	}

	seenIDs := make(map[string]bool)
	for _, section := range c.sections {
		if section.ID == "" {
			return fmt.Errorf("catalog section with empty id")
		}
		if seenIDs[section.ID] {
			return fmt.Errorf("duplicate section id %q", section.ID)
		}
		seenIDs[section.ID] = true

		if section.MinQuestions > section.MaxQuestions {
			return fmt.Errorf("section %q: min_questions %d exceeds max_questions %d",
				section.ID, section.MinQuestions, section.MaxQuestions)
		}
		if len(section.Topics) == 0 {
			return fmt.Errorf("section %q has no topics", section.ID)
		}

		seenTopics := make(map[string]bool)
		for _, topic := range section.Topics {
			if seenTopics[topic] {
				return fmt.Errorf("section %q: duplicate topic %q", section.ID, topic)
			}
			seenTopics[topic] = true
		}
	}

	return nil
}

// SectionByID looks up a section by id. The second return value reports
// whether the id exists in the catalog.
func (c *Catalog) SectionByID(id string) (*types.Section, bool) {
	for i := range c.sections {
		if c.sections[i].ID == id {
			return &c.sections[i], true
		}
	}
	return nil, false
}

// Index returns the ordinal position of a section id, or -1 if not found.
func (c *Catalog) Index(id string) int {
	for i := range c.sections {
		if c.sections[i].ID == id {
			return i
		}
	}
	return -1
}

// NextSection returns the section following the given id, or false when the
// id names the last section or is unknown.
func (c *Catalog) NextSection(id string) (*types.Section, bool) {
	idx := c.Index(id)
	if idx < 0 || idx+1 >= len(c.sections) {
		return nil, false
	}
	return &c.sections[idx+1], true
}

// First returns the entry-point section.
func (c *Catalog) First() *types.Section {
	return &c.sections[0]
}

// Len returns the number of sections in the catalog.
func (c *Catalog) Len() int {
	return len(c.sections)
}

// Sections returns the ordered section list.
func (c *Catalog) Sections() []types.Section {
	return c.sections
}
