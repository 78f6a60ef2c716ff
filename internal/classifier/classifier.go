// Package classifier maps prompt content to a task category and a
// recommended expert persona using keyword heuristics.
package classifier

import (
	"github.com/promptsmith/promptsmith/internal/rules"
)

// TaskType is a coarse category inferred from prompt content.
type TaskType string

const (
	TaskBusiness  TaskType = "business"
	TaskTechnical TaskType = "technical"
	TaskResearch  TaskType = "research"
	TaskCreative  TaskType = "creative"
	TaskGeneral   TaskType = "general"
)

// Detection is the result of a confident task-type match.
type Detection struct {
	Task            TaskType
	ExpertRoles     []rules.ExpertRole
	SuggestedStyles []string

	// Matches is the number of indicator keywords that fired
	Matches int
}

// Classifier detects task types and resolves expert roles.
type Classifier interface {
	DetectTask(text string) (Detection, bool)
	ExpertRole(task TaskType, styleID string) (rules.ExpertRole, bool)
}
