package roster

import (
	"strings"

	"grassroots-tasks/internal/model"
)

// The roster documents use "- **key**：value" lines with the full-width
// colon, grouped under "### name" headings inside a recognized section.
const fullWidthColon = "："

// Section titles recognized per document kind.
var (
	peopleSectionTitles   = []string{"成员", "现有成员"}
	resourceSectionTitles = []string{"资源列表"}
)

// People field keys.
const (
	keyGitHub  = "GitHub"
	keyJoined  = "加入时间"
	keySkills  = "技能标签"
	keyTime    = "时间承诺"
	keyCurrent = "当前任务"
	keyHistory = "历史贡献"
)

// Resource field keys.
const (
	keyResourceType    = "资源类型"
	keyTypeShort       = "类型"
	keyDescription     = "描述"
	keyStatus          = "当前状态"
	keyOwner           = "负责人"
	keyInstructions    = "使用说明"
	keyLink            = "链接"
	instructionsJoiner = "；"
)

// ParseOptions configures section matching.
// Strict: a missing recognized section yields an empty result.
// Permissive: a missing section falls back to scanning the whole document.
type ParseOptions struct {
	StrictSectionMatch bool
}

// ParsePeople extracts member records from a people roster document.
// Parsing is total: malformed input yields fewer (or zero) records,
// never an error.
func ParsePeople(markdown string, opt ParseOptions) []model.Person {
	lines, ok := sectionLines(markdown, peopleSectionTitles)
	if !ok {
		if opt.StrictSectionMatch {
			return []model.Person{}
		}
		lines = strings.Split(markdown, "\n")
	}

	people := []model.Person{}
	var current *model.Person

	for _, line := range lines {
		if name, ok := recordHeading(line); ok {
			if current != nil {
				people = append(people, *current)
			}
			current = &model.Person{Name: name}
			continue
		}
		if current == nil {
			continue
		}

		key, value, ok := splitField(line)
		if !ok {
			continue
		}
		switch key {
		case keyGitHub:
			current.GitHub = value
		case keyJoined:
			current.Joined = value
		case keySkills:
			current.Skills = value
		case keyTime:
			current.Time = value
		case keyCurrent:
			current.Current = value
		case keyHistory:
			current.History = value
		}
	}

	if current != nil {
		people = append(people, *current)
	}
	return people
}

// continuation identifies the field currently accepting indented
// sub-item lines.
type continuation int

const (
	contNone continuation = iota
	contLink
	contInstructions
)

// ParseResources extracts resource records from a resource roster
// document. The 链接 and 使用说明 fields accept indented sub-item
// continuations; links accumulate as (label, url) pairs and the first
// sub-link URL becomes the primary link when none is set.
func ParseResources(markdown string, opt ParseOptions) []model.Resource {
	lines, ok := sectionLines(markdown, resourceSectionTitles)
	if !ok {
		if opt.StrictSectionMatch {
			return []model.Resource{}
		}
		lines = strings.Split(markdown, "\n")
	}

	resources := []model.Resource{}
	var current *model.Resource
	cont := contNone

	for _, line := range lines {
		if name, ok := recordHeading(line); ok {
			if current != nil {
				resources = append(resources, *current)
			}
			current = &model.Resource{Name: name, Links: []model.ResourceLink{}}
			cont = contNone
			continue
		}
		if current == nil {
			continue
		}

		if isMainFieldLine(line) {
			key, value, ok := splitField(line)
			if !ok {
				cont = contNone
				continue
			}
			cont = contNone
			switch key {
			case keyResourceType, keyTypeShort:
				current.Type = value
			case keyDescription:
				current.Description = value
			case keyStatus:
				current.Status = value
			case keyOwner:
				current.Owner = value
			case keyInstructions:
				current.Instructions = value
				cont = contInstructions
			case keyLink:
				current.Link = value
				cont = contLink
			}
			continue
		}

		if cont != contNone && isSubItemLine(line) {
			label, value, ok := splitField(line)
			if !ok {
				cont = contNone
				continue
			}
			switch cont {
			case contLink:
				current.Links = append(current.Links, model.ResourceLink{Label: label, URL: value})
				if current.Link == "" || current.Link == "-" {
					current.Link = value
				}
			case contInstructions:
				if current.Instructions != "" {
					current.Instructions += instructionsJoiner
				}
				current.Instructions += label + fullWidthColon + value
			}
			continue
		}

		// Any other line closes continuation tracking but keeps the
		// record open.
		cont = contNone
	}

	if current != nil {
		resources = append(resources, *current)
	}
	return resources
}

// sectionLines narrows the document to the body of the first heading
// matching one of the accepted titles. The body runs until the next
// horizontal rule, the next same-or-higher heading, or end of text.
func sectionLines(markdown string, titles []string) ([]string, bool) {
	lines := strings.Split(markdown, "\n")

	start := -1
	for i, line := range lines {
		if !strings.HasPrefix(line, "## ") {
			continue
		}
		title := strings.TrimSpace(strings.TrimPrefix(line, "## "))
		for _, want := range titles {
			if title == want {
				start = i + 1
				break
			}
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return nil, false
	}

	end := len(lines)
	for i := start; i < len(lines); i++ {
		line := lines[i]
		if strings.HasPrefix(line, "---") {
			end = i
			break
		}
		if strings.HasPrefix(line, "## ") || strings.HasPrefix(line, "# ") {
			end = i
			break
		}
	}
	return lines[start:end], true
}

// recordHeading reports whether the line opens a new record and returns
// its name.
func recordHeading(line string) (string, bool) {
	if !strings.HasPrefix(line, "### ") {
		return "", false
	}
	return strings.TrimSpace(strings.TrimPrefix(line, "### ")), true
}

// splitField splits a line on the first full-width colon, stripping
// bold markers and the leading list dash from the key. Lines without
// the separator are not field assignments.
func splitField(line string) (key, value string, ok bool) {
	idx := strings.Index(line, fullWidthColon)
	if idx < 0 {
		return "", "", false
	}

	key = strings.TrimSpace(line[:idx])
	key = strings.ReplaceAll(key, "**", "")
	key = strings.TrimSpace(strings.TrimPrefix(key, "-"))

	value = strings.TrimSpace(line[idx+len(fullWidthColon):])
	return key, value, true
}

// isMainFieldLine matches "- **key**：..." top-level field lines.
func isMainFieldLine(line string) bool {
	trimmed := strings.TrimPrefix(line, "-")
	if trimmed == line {
		return false
	}
	return strings.HasPrefix(strings.TrimSpace(trimmed), "**") && strings.Contains(line, fullWidthColon)
}

// isSubItemLine matches indented "  - label：value" continuation lines.
func isSubItemLine(line string) bool {
	if len(line) == 0 || (line[0] != ' ' && line[0] != '\t') {
		return false
	}
	trimmed := strings.TrimSpace(line)
	return strings.HasPrefix(trimmed, "- ") && strings.Contains(line, fullWidthColon)
}
