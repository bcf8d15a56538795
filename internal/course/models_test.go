package course

import (
	"encoding/json"
	"testing"
)

func TestRubricTotalPoints(t *testing.T) {
	r := Rubric{Criteria: []Criterion{
		{Description: "a", Points: 2.5},
		{Description: "b", Points: 7},
		{Description: "c", Points: 0.5},
	}}
	if got := r.TotalPoints(); got != 10 {
		t.Errorf("TotalPoints() = %v, want 10", got)
	}
	if got := (Rubric{}).TotalPoints(); got != 0 {
		t.Errorf("empty rubric TotalPoints() = %v, want 0", got)
	}
}

func TestCourseDecodesAuthoringPayload(t *testing.T) {
	payload := `{
		"title": "Data 101",
		"description": "Intro",
		"welcome_message": "<h1>Hi</h1>",
		"modules": [{
			"id": "m1", "name": "Week 1", "position": 1,
			"items": [
				{"id": "i1", "type": "page", "title": "Syllabus", "content": "<p>x</p>", "position": 1},
				{"id": "i2", "type": "assignment", "title": "HW", "points": 20,
				 "rubric": {"title": "HW Rubric", "criteria": [
					{"description": "Effort", "points": 20, "ratings": [
						{"description": "Full", "points": 20}, {"description": "None", "points": 0}
					]}
				 ]}},
				{"id": "i3", "type": "quiz", "title": "Quiz", "questions": [
					{"type": "multiple_choice", "text": "?", "points": 2,
					 "answers": [{"text": "a", "correct": false}, {"text": "b", "correct": true}]}
				]}
			]
		}]
	}`
	var c Course
	if err := json.Unmarshal([]byte(payload), &c); err != nil {
		t.Fatal(err)
	}
	if len(c.Modules) != 1 || len(c.Modules[0].Items) != 3 {
		t.Fatalf("unexpected shape: %+v", c)
	}
	hw := c.Modules[0].Items[1]
	if hw.Rubric == nil || hw.Rubric.TotalPoints() != 20 {
		t.Errorf("rubric not decoded: %+v", hw.Rubric)
	}
	quiz := c.Modules[0].Items[2]
	if len(quiz.Questions) != 1 || !quiz.Questions[0].Answers[1].Correct {
		t.Errorf("quiz not decoded: %+v", quiz)
	}
}
