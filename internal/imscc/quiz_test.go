package imscc

import (
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/courseforge/courseforge/internal/course"
)

func TestEncodeQuizDualResources(t *testing.T) {
	ctx := newExportContext()
	item := course.Item{
		ID: "q1", Type: course.KindQuiz, Title: "Final",
		Questions: []course.QuizQuestion{{Type: course.QuestionEssay, Text: "Reflect."}},
	}
	enc := encodeQuiz(item, "gquiz", ctx)

	require.Len(t, enc.resources, 2)
	primary, meta := enc.resources[0], enc.resources[1]

	assert.Equal(t, "gquiz", primary.ID)
	assert.Equal(t, typeAssessment, primary.Type)
	assert.Empty(t, primary.Href)
	assert.Equal(t, []string{"gquiz/assessment_qti.xml"}, primary.Files)
	assert.Equal(t, meta.ID, primary.Dependency, "primary quiz resource must depend on the meta resource")

	assert.Equal(t, typeLearningAppRes, meta.Type)
	assert.Equal(t, "gquiz/assessment_meta.xml", meta.Href)
	assert.Equal(t, []string{"gquiz/assessment_meta.xml", "non_cc_assessments/gquiz.xml.qti"}, meta.Files)
	assert.Empty(t, meta.Dependency)

	require.Len(t, enc.files, 3)
	assert.Equal(t, "gquiz/assessment_meta.xml", enc.files[0].Path)
	assert.Equal(t, "gquiz/assessment_qti.xml", enc.files[1].Path)
	assert.Equal(t, "non_cc_assessments/gquiz.xml.qti", enc.files[2].Path)
}

func TestQuizPointsFallbackChain(t *testing.T) {
	q := func(p float64) course.QuizQuestion {
		return course.QuizQuestion{Type: course.QuestionEssay, Text: "x", Points: p}
	}
	tests := []struct {
		name string
		item course.Item
		want float64
	}{
		{"explicit points win", course.Item{Points: 25, Questions: []course.QuizQuestion{q(2)}}, 25},
		{"sum of question points", course.Item{Questions: []course.QuizQuestion{q(2), q(3)}}, 5},
		{"unset question points default to 1", course.Item{Questions: []course.QuizQuestion{q(0), q(0)}}, 2},
		{"no questions at all", course.Item{}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, quizPoints(tt.item))
		})
	}
}

func TestQuizMetaReferencesSharedAssignmentGroup(t *testing.T) {
	ctx := newExportContext()
	item := course.Item{ID: "q", Type: course.KindQuiz, Title: "Midterm", Points: 50}

	var doc struct {
		Identifier     string `xml:"identifier,attr"`
		PointsPossible string `xml:"points_possible"`
		Assignment     struct {
			Identifier    string `xml:"identifier,attr"`
			GroupRef      string `xml:"assignment_group_identifierref"`
			QuizRef       string `xml:"quiz_identifierref"`
			Points        string `xml:"points_possible"`
			WorkflowState string `xml:"workflow_state"`
		} `xml:"assignment"`
	}
	require.NoError(t, xml.Unmarshal([]byte(quizMetaXML(item, "gq", ctx)), &doc))

	assert.Equal(t, "gq", doc.Identifier)
	assert.Equal(t, "50.0", doc.PointsPossible)
	assert.Equal(t, ctx.assignmentGroupID, doc.Assignment.GroupRef)
	assert.Equal(t, "gq", doc.Assignment.QuizRef)
	assert.Equal(t, "50.0", doc.Assignment.Points)
	assert.Equal(t, "unpublished", doc.Assignment.WorkflowState)
	assert.NotEmpty(t, doc.Assignment.Identifier)
	assert.NotEqual(t, "gq", doc.Assignment.Identifier, "nested assignment gets its own identifier")
}

func TestCanvasQTIQuestionTypes(t *testing.T) {
	questions := []course.QuizQuestion{
		{Type: course.QuestionMultipleChoice, Text: "mc", Points: 2, Answers: []course.Answer{{Text: "a"}, {Text: "b", Correct: true}}},
		{Type: course.QuestionShortAnswer, Text: "sa"},
		{Type: course.QuestionEssay, Text: "es", Points: 2.5},
	}
	doc := canvasQTI("T", questions, "gq")

	assert.Contains(t, doc, "<fieldentry>multiple_choice_question</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>short_answer_question</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>essay_question</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>2.0</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>1.0</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>2.5</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>1000,1001</fieldentry>")
	assert.Contains(t, doc, `<varequal respident="response1">1001</varequal>`)

	// Must stay parseable.
	var parsed struct {
		Assessment struct {
			Section struct {
				Items []struct {
					Ident string `xml:"ident,attr"`
				} `xml:"item"`
			} `xml:"section"`
		} `xml:"assessment"`
	}
	require.NoError(t, xml.Unmarshal([]byte(doc), &parsed))
	assert.Len(t, parsed.Assessment.Section.Items, 3)
}

func TestCCProfileQTIDialect(t *testing.T) {
	questions := []course.QuizQuestion{
		{Type: course.QuestionMultipleChoice, Text: "mc?", Answers: []course.Answer{{Text: "a", Correct: true}, {Text: "b"}}},
		{Type: course.QuestionShortAnswer, Text: "sa?"},
	}
	doc := ccProfileQTI("Exam & More", questions, "gq")

	assert.Contains(t, doc, "http://www.imsglobal.org/profile/cc/ccv1p1/ccv1p1_qtiasiv1p2p1_v1p0.xsd")
	assert.Contains(t, doc, "<fieldentry>cc.exam.v0p1</fieldentry>")
	assert.Contains(t, doc, "<fieldentry>cc.multiple_choice.v0p1</fieldentry>")
	// Short answer degrades to the ungraded essay profile in the CC dialect.
	assert.Contains(t, doc, "<fieldentry>cc.essay.v0p1</fieldentry>")
	assert.NotContains(t, doc, "question_type")
	assert.Contains(t, doc, `title="Exam &amp; More"`)
	assert.Contains(t, doc, `<varequal respident="response1">1000</varequal>`)
}

func TestFormatPoints(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{4, "4.0"},
		{100, "100.0"},
		{0, "0.0"},
		{2.5, "2.5"},
		{0.25, "0.25"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatPoints(tt.in))
	}
}
