package taskboard

import (
	"strings"

	"grassroots-tasks/internal/model"
)

// Status label vocabulary on the issue tracker.
const (
	LabelUnclaimed  = "待领"
	LabelInProgress = "进行中"
	LabelCompleted  = "已完成"
)

// Pool issue labels.
const (
	LabelPeoplePool   = "人池"
	LabelResourcePool = "资源池"
)

// DeriveStatus projects the lifecycle state from a label set.
// 已完成 takes precedence over 进行中 when both are present; no status
// label means open.
func DeriveStatus(labels []string) model.Status {
	completed, inProgress := false, false
	for _, l := range labels {
		switch l {
		case LabelCompleted:
			completed = true
		case LabelInProgress:
			inProgress = true
		}
	}
	if completed {
		return model.StatusCompleted
	}
	if inProgress {
		return model.StatusInProgress
	}
	return model.StatusOpen
}

// DerivePriority projects the priority from a label set. The match is
// case-insensitive (P0 and p0 are the same label); the last priority
// label wins, mirroring a simple scan.
func DerivePriority(labels []string) model.Priority {
	priority := model.PriorityNone
	for _, l := range labels {
		switch strings.ToLower(l) {
		case "p0":
			priority = model.PriorityP0
		case "p1":
			priority = model.PriorityP1
		case "p2":
			priority = model.PriorityP2
		}
	}
	return priority
}

// SkillTags returns every label outside the priority and status
// vocabulary, in original order.
func SkillTags(labels []string) []string {
	skills := []string{}
	for _, l := range labels {
		switch strings.ToLower(l) {
		case "p0", "p1", "p2":
			continue
		}
		switch l {
		case LabelUnclaimed, LabelInProgress, LabelCompleted:
			continue
		}
		skills = append(skills, l)
	}
	return skills
}

// Decorate fills a task's derived fields from its label set.
func Decorate(t model.Task) model.Task {
	t.Status = DeriveStatus(t.Labels)
	t.Priority = DerivePriority(t.Labels)
	t.Skills = SkillTags(t.Labels)
	return t
}

// IsAssignee reports whether the viewer's handle appears in the task's
// assignee set.
func IsAssignee(viewer string, t model.Task) bool {
	if viewer == "" {
		return false
	}
	for _, a := range t.Assignees {
		if a == viewer {
			return true
		}
	}
	return false
}

// UpdateLabelSet computes (current − toRemove) ∪ (toAdd − current):
// remaining labels keep their original order, genuinely new labels are
// appended. The result is what gets written back as the full set.
func UpdateLabelSet(current, toRemove, toAdd []string) []string {
	removeSet := make(map[string]struct{}, len(toRemove))
	for _, l := range toRemove {
		removeSet[l] = struct{}{}
	}
	currentSet := make(map[string]struct{}, len(current))
	for _, l := range current {
		currentSet[l] = struct{}{}
	}

	next := make([]string, 0, len(current)+len(toAdd))
	for _, l := range current {
		if _, drop := removeSet[l]; !drop {
			next = append(next, l)
		}
	}
	for _, l := range toAdd {
		if _, exists := currentSet[l]; !exists {
			next = append(next, l)
		}
	}
	return next
}
