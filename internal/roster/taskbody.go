package roster

import (
	"strings"

	"grassroots-tasks/internal/model"
)

// Task body section titles.
const (
	sectionDescription = "任务描述"
	sectionSkills      = "技能要求"
	sectionTime        = "预期时间"
	sectionLinks       = "相关链接"
	sectionAssignee    = "领取"
)

// ParseTaskBody extracts the structured fields from a task body's
// "## " headed sections. The description keeps all its lines; the other
// sections keep the last non-blank line seen.
func ParseTaskBody(body string) model.TaskDetails {
	var details model.TaskDetails
	if body == "" {
		return details
	}

	var section string
	for _, line := range strings.Split(body, "\n") {
		if strings.HasPrefix(line, "## ") {
			section = strings.TrimSpace(strings.TrimPrefix(line, "## "))
			continue
		}
		if section == "" || strings.TrimSpace(line) == "" {
			continue
		}

		switch section {
		case sectionDescription:
			details.Description += line + "\n"
		case sectionSkills:
			details.Skills = strings.TrimSpace(line)
		case sectionTime:
			details.Time = strings.TrimSpace(line)
		case sectionLinks:
			details.Links = strings.TrimSpace(line)
		case sectionAssignee:
			details.Assignee = strings.TrimSpace(line)
		}
	}

	details.Description = strings.TrimSpace(details.Description)
	return details
}
