package roster

import (
	"strings"

	"grassroots-tasks/internal/model"
)

// RenderPerson emits the canonical record block for a person. Only the
// recognized field set is rendered; re-parsing the output yields the
// same record.
func RenderPerson(p model.Person) string {
	var sb strings.Builder
	sb.WriteString("### " + p.Name + "\n")
	writeField(&sb, keyGitHub, p.GitHub)
	writeField(&sb, keyJoined, p.Joined)
	writeField(&sb, keySkills, p.Skills)
	writeField(&sb, keyTime, p.Time)
	writeField(&sb, keyCurrent, p.Current)
	writeField(&sb, keyHistory, p.History)
	return sb.String()
}

// RenderResource emits the canonical record block for a resource.
// Sub-links are rendered as indented continuation items under 链接.
func RenderResource(r model.Resource) string {
	var sb strings.Builder
	sb.WriteString("### " + r.Name + "\n")
	writeField(&sb, keyResourceType, r.Type)
	writeField(&sb, keyDescription, r.Description)
	writeField(&sb, keyStatus, r.Status)
	writeField(&sb, keyOwner, r.Owner)
	writeField(&sb, keyInstructions, r.Instructions)

	if len(r.Links) > 0 {
		primary := r.Link
		if primary == r.Links[0].URL {
			// Primary was derived from the first sub-link; render the
			// placeholder so re-parsing derives it again.
			primary = "-"
		}
		sb.WriteString("- **" + keyLink + "**" + fullWidthColon + primary + "\n")
		for _, l := range r.Links {
			sb.WriteString("  - " + l.Label + fullWidthColon + l.URL + "\n")
		}
	} else {
		writeField(&sb, keyLink, r.Link)
	}
	return sb.String()
}

func writeField(sb *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	sb.WriteString("- **" + key + "**" + fullWidthColon + value + "\n")
}
