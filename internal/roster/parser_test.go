package roster_test

import (
	"reflect"
	"strings"
	"testing"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/roster"
)

const peopleDoc = `# 人才库

## 现有成员

### Alice
- **GitHub**：@alice
- **加入时间**：2024-01
- **技能标签**：design, frontend
- **时间承诺**：5h/week
- **当前任务**：#12
- **历史贡献**：landing page

### Bob
- **GitHub**：@bob
- **技能标签**：backend

---

## 其他

### NotAMember
- **GitHub**：@ghost
`

func TestParsePeople(t *testing.T) {
	t.Run("Section", func(t *testing.T) {
		people := roster.ParsePeople(peopleDoc, roster.ParseOptions{})
		if len(people) != 2 {
			t.Fatalf("expected 2 people, got %d: %+v", len(people), people)
		}

		want := model.Person{
			Name:    "Alice",
			GitHub:  "@alice",
			Joined:  "2024-01",
			Skills:  "design, frontend",
			Time:    "5h/week",
			Current: "#12",
			History: "landing page",
		}
		if people[0] != want {
			t.Errorf("unexpected first person:\n got %+v\nwant %+v", people[0], want)
		}

		if people[1].Name != "Bob" || people[1].Joined != "" {
			t.Errorf("unexpected second person: %+v", people[1])
		}
	})

	t.Run("MinimalRecord", func(t *testing.T) {
		doc := "## 成员\n### Alice\n- **加入时间**：2024-01\n- **技能标签**：design\n"
		people := roster.ParsePeople(doc, roster.ParseOptions{})
		want := model.Person{Name: "Alice", Joined: "2024-01", Skills: "design"}
		if len(people) != 1 || people[0] != want {
			t.Errorf("unexpected result: %+v", people)
		}
	})

	t.Run("NoHeadingsInSection", func(t *testing.T) {
		doc := "## 成员\n\nsome prose\n- **GitHub**：@orphan\n"
		people := roster.ParsePeople(doc, roster.ParseOptions{})
		if len(people) != 0 {
			t.Errorf("expected empty result, got %+v", people)
		}
	})

	t.Run("MissingSectionPermissive", func(t *testing.T) {
		doc := "### Carol\n- **GitHub**：@carol\n"
		people := roster.ParsePeople(doc, roster.ParseOptions{StrictSectionMatch: false})
		if len(people) != 1 || people[0].GitHub != "@carol" {
			t.Errorf("permissive fallback failed: %+v", people)
		}
	})

	t.Run("MissingSectionStrict", func(t *testing.T) {
		doc := "### Carol\n- **GitHub**：@carol\n"
		people := roster.ParsePeople(doc, roster.ParseOptions{StrictSectionMatch: true})
		if len(people) != 0 {
			t.Errorf("strict mode should yield empty result, got %+v", people)
		}
	})

	t.Run("LastKeyWins", func(t *testing.T) {
		doc := "## 成员\n### Dup\n- **GitHub**：@first\n- **GitHub**：@second\n"
		people := roster.ParsePeople(doc, roster.ParseOptions{})
		if len(people) != 1 || people[0].GitHub != "@second" {
			t.Errorf("expected last occurrence to win: %+v", people)
		}
	})

	t.Run("UnknownKeysIgnored", func(t *testing.T) {
		doc := "## 成员\n### E\n- **星座**：双子\n- **GitHub**：@e\n"
		people := roster.ParsePeople(doc, roster.ParseOptions{})
		if len(people) != 1 || people[0].GitHub != "@e" {
			t.Errorf("unexpected result: %+v", people)
		}
	})
}

const resourceDoc = `## 资源列表

### 云服务器
- **资源类型**：服务器
- **描述**：2C4G 测试机
- **当前状态**：可用
- **负责人**：@alice
- **使用说明**：先申请
  - 登录：ssh root@host
  - 注意：别跑挖矿
- **链接**：-
  - 控制台：https://console.example.com
  - 文档：https://docs.example.com

### 设计素材
- **类型**：素材
- **链接**：https://figma.example.com

---
`

func TestParseResources(t *testing.T) {
	t.Run("Full", func(t *testing.T) {
		resources := roster.ParseResources(resourceDoc, roster.ParseOptions{StrictSectionMatch: true})
		if len(resources) != 2 {
			t.Fatalf("expected 2 resources, got %d: %+v", len(resources), resources)
		}

		r := resources[0]
		if r.Name != "云服务器" || r.Type != "服务器" || r.Status != "可用" || r.Owner != "@alice" {
			t.Errorf("unexpected fields: %+v", r)
		}
		if r.Instructions != "先申请；登录：ssh root@host；注意：别跑挖矿" {
			t.Errorf("unexpected instructions: %q", r.Instructions)
		}
		wantLinks := []model.ResourceLink{
			{Label: "控制台", URL: "https://console.example.com"},
			{Label: "文档", URL: "https://docs.example.com"},
		}
		if !reflect.DeepEqual(r.Links, wantLinks) {
			t.Errorf("unexpected links: %+v", r.Links)
		}
		// "-" placeholder means the first sub-link URL becomes primary.
		if r.Link != "https://console.example.com" {
			t.Errorf("unexpected primary link: %q", r.Link)
		}

		if resources[1].Link != "https://figma.example.com" || len(resources[1].Links) != 0 {
			t.Errorf("unexpected second resource: %+v", resources[1])
		}
	})

	t.Run("MissingSectionStrict", func(t *testing.T) {
		doc := "### Orphan\n- **类型**：东西\n"
		resources := roster.ParseResources(doc, roster.ParseOptions{StrictSectionMatch: true})
		if len(resources) != 0 {
			t.Errorf("expected empty result, got %+v", resources)
		}
	})

	t.Run("BlankLineClosesContinuation", func(t *testing.T) {
		doc := "## 资源列表\n### R\n- **链接**：-\n  - 甲：https://a.example.com\n\n  - 乙：https://b.example.com\n"
		resources := roster.ParseResources(doc, roster.ParseOptions{StrictSectionMatch: true})
		if len(resources) != 1 {
			t.Fatalf("expected 1 resource, got %d", len(resources))
		}
		// The blank line closed continuation: only the first sub-link counts.
		if len(resources[0].Links) != 1 || resources[0].Links[0].Label != "甲" {
			t.Errorf("unexpected links after blank line: %+v", resources[0].Links)
		}
	})

	t.Run("ExplicitPrimaryLinkKept", func(t *testing.T) {
		doc := "## 资源列表\n### R\n- **链接**：https://main.example.com\n  - 备：https://alt.example.com\n"
		resources := roster.ParseResources(doc, roster.ParseOptions{StrictSectionMatch: true})
		if resources[0].Link != "https://main.example.com" {
			t.Errorf("explicit primary link should be kept: %q", resources[0].Link)
		}
		if len(resources[0].Links) != 1 {
			t.Errorf("sub-links should still accumulate: %+v", resources[0].Links)
		}
	})
}

func TestParserTotality(t *testing.T) {
	inputs := []string{
		"",
		"\n\n\n",
		"random text with no structure",
		"## 成员",
		"## 资源列表\n：：：",
		"### only a heading",
		strings.Repeat("- **a**：b\n", 100),
		"## 成员\n###\n- ****：x",
		"---\n---\n## 成员\n---",
	}
	for _, in := range inputs {
		// Must not panic; worst case is an empty sequence.
		_ = roster.ParsePeople(in, roster.ParseOptions{})
		_ = roster.ParsePeople(in, roster.ParseOptions{StrictSectionMatch: true})
		_ = roster.ParseResources(in, roster.ParseOptions{})
		_ = roster.ParseResources(in, roster.ParseOptions{StrictSectionMatch: true})
	}

	if got := roster.ParsePeople("", roster.ParseOptions{StrictSectionMatch: true}); len(got) != 0 {
		t.Errorf("empty input must parse to empty sequence, got %+v", got)
	}
}

func TestRoundTrip(t *testing.T) {
	t.Run("Person", func(t *testing.T) {
		orig := model.Person{
			Name:    "Alice",
			GitHub:  "@alice",
			Joined:  "2024-01",
			Skills:  "design",
			Time:    "5h/week",
			Current: "#12",
			History: "docs",
		}
		doc := "## 成员\n" + roster.RenderPerson(orig)
		people := roster.ParsePeople(doc, roster.ParseOptions{StrictSectionMatch: true})
		if len(people) != 1 || people[0] != orig {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", people, orig)
		}
	})

	t.Run("Resource", func(t *testing.T) {
		orig := model.Resource{
			Name:         "云服务器",
			Type:         "服务器",
			Description:  "测试机",
			Status:       "可用",
			Owner:        "@alice",
			Instructions: "先申请",
			Link:         "https://console.example.com",
			Links: []model.ResourceLink{
				{Label: "控制台", URL: "https://console.example.com"},
			},
		}
		doc := "## 资源列表\n" + roster.RenderResource(orig)
		resources := roster.ParseResources(doc, roster.ParseOptions{StrictSectionMatch: true})
		if len(resources) != 1 || !reflect.DeepEqual(resources[0], orig) {
			t.Errorf("round trip mismatch:\n got %+v\nwant %+v", resources, orig)
		}
	})
}

func TestParseTaskBody(t *testing.T) {
	body := `## 任务描述
做一个落地页
支持移动端

## 技能要求
frontend

## 预期时间
3 天

## 领取
@alice
`
	details := roster.ParseTaskBody(body)
	if details.Description != "做一个落地页\n支持移动端" {
		t.Errorf("unexpected description: %q", details.Description)
	}
	if details.Skills != "frontend" || details.Time != "3 天" || details.Assignee != "@alice" {
		t.Errorf("unexpected details: %+v", details)
	}

	if got := roster.ParseTaskBody(""); got != (model.TaskDetails{}) {
		t.Errorf("empty body must yield zero details, got %+v", got)
	}
}
