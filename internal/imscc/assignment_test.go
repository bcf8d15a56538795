package imscc

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/course"
)

type assignmentSettings struct {
	Identifier     string `xml:"identifier,attr"`
	Title          string `xml:"title"`
	WorkflowState  string `xml:"workflow_state"`
	GroupRef       string `xml:"assignment_group_identifierref"`
	RubricRef      string `xml:"rubric_identifierref"`
	PointsPossible string `xml:"points_possible"`
	GradingType    string `xml:"grading_type"`
	Submissions    string `xml:"submission_types"`
}

func TestEncodeAssignmentLayout(t *testing.T) {
	ctx := newExportContext()
	item := course.Item{ID: "a1", Type: course.KindAssignment, Title: "Final Paper", Points: 40, Content: "<p>Write.</p>"}
	enc := encodeAssignment(item, "gasg", ctx)

	require.Len(t, enc.resources, 1)
	res := enc.resources[0]
	assert.Equal(t, typeLearningAppRes, res.Type)
	assert.Equal(t, "gasg/final-paper.html", res.Href)
	// HTML before settings, both inside the resource-id folder.
	assert.Equal(t, []string{"gasg/final-paper.html", "gasg/assignment_settings.xml"}, res.Files)

	require.Len(t, enc.files, 2)
	assert.Contains(t, string(enc.files[0].Data), "<p>Write.</p>")
	assert.Contains(t, string(enc.files[0].Data), "<h2>Instructions</h2>")

	var settings assignmentSettings
	require.NoError(t, xml.Unmarshal(enc.files[1].Data, &settings))
	assert.Equal(t, "gasg", settings.Identifier)
	assert.Equal(t, "Final Paper", settings.Title)
	assert.Equal(t, "published", settings.WorkflowState)
	assert.Equal(t, ctx.assignmentGroupID, settings.GroupRef)
	assert.Empty(t, settings.RubricRef, "no rubric registered, no rubric block")
	assert.Equal(t, "40.0", settings.PointsPossible)
	assert.Equal(t, "points", settings.GradingType)
	assert.Equal(t, "online_text_entry,online_upload", settings.Submissions)
}

func TestEncodeAssignmentRubricReference(t *testing.T) {
	ctx := newExportContext()
	rubricID := ctx.registerRubric("a1", course.Rubric{
		Title:    "Paper Rubric",
		Criteria: []course.Criterion{{Description: "Quality", Points: 40}},
	})

	item := course.Item{ID: "a1", Type: course.KindAssignment, Title: "Final Paper"}
	enc := encodeAssignment(item, "gasg", ctx)

	var settings assignmentSettings
	require.NoError(t, xml.Unmarshal(enc.files[1].Data, &settings))
	assert.Equal(t, rubricID, settings.RubricRef)
	// Points left unset fall back to the default.
	assert.Equal(t, "100.0", settings.PointsPossible)
}

func TestEncodeAssignmentEmptySlugFallsBackToResourceID(t *testing.T) {
	ctx := newExportContext()
	item := course.Item{ID: "a1", Type: course.KindAssignment, Title: "???"}
	enc := encodeAssignment(item, "gasg", ctx)
	assert.Equal(t, "gasg/gasg.html", enc.resources[0].Href)
}

func TestEncodePage(t *testing.T) {
	item := course.Item{ID: "p1", Type: course.KindPage, Title: "Syllabus & Schedule", Content: "<p>Read me</p>"}
	enc := encodePage(item, "gpage")

	require.Len(t, enc.resources, 1)
	res := enc.resources[0]
	assert.Equal(t, typeWebContent, res.Type)
	assert.Equal(t, "wiki_content/syllabus-schedule.html", res.Href)
	assert.Equal(t, res.Files, []string{res.Href})

	html := string(enc.files[0].Data)
	assert.Contains(t, html, "<title>Syllabus &amp; Schedule</title>")
	assert.Contains(t, html, `<meta name="identifier" content="gpage"/>`)
	assert.Contains(t, html, "<p>Read me</p>")
}

func TestEncodeDiscussionBodyFallbacks(t *testing.T) {
	tests := []struct {
		name string
		item course.Item
		want string
	}{
		{"content preferred", course.Item{Title: "D", Content: "<p>html</p>", Prompt: "plain"}, "&lt;p&gt;html&lt;/p&gt;"},
		{"prompt fallback", course.Item{Title: "D", Prompt: "plain prompt"}, "plain prompt"},
		{"generic placeholder", course.Item{Title: "D"}, "Share your thoughts on this topic."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enc := encodeDiscussion(tt.item, "gd")
			assert.Contains(t, string(enc.files[0].Data), tt.want)
		})
	}
}
