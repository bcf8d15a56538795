package imscc

import (
	"fmt"

	"github.com/courseforge/courseforge/internal/course"
)

const (
	defaultQuizPoints      = 4
	defaultQuizDescription = "<p>Please answer the following questions.</p>"
)

// encodeQuiz emits everything a Canvas classic quiz needs: a quiz folder
// with assessment_meta.xml and the Common-Cartridge QTI, plus the
// Canvas-proprietary QTI under non_cc_assessments/. Canvas's importer only
// recognizes the quiz when both halves are registered as separate
// resources linked through a dependency on the meta resource.
func encodeQuiz(item course.Item, resourceID string, ctx *exportContext) encoded {
	metaResourceID := newIdentifier()

	metaPath := resourceID + "/assessment_meta.xml"
	qtiPath := resourceID + "/assessment_qti.xml"
	nonCCPath := "non_cc_assessments/" + resourceID + ".xml.qti"

	return encoded{
		files: []archiveFile{
			{Path: metaPath, Data: []byte(quizMetaXML(item, resourceID, ctx))},
			{Path: qtiPath, Data: []byte(ccProfileQTI(item.Title, item.Questions, resourceID))},
			{Path: nonCCPath, Data: []byte(canvasQTI(item.Title, item.Questions, resourceID))},
		},
		resources: []resource{
			{
				ID:         resourceID,
				Type:       typeAssessment,
				Files:      []string{qtiPath},
				Dependency: metaResourceID,
			},
			{
				ID:    metaResourceID,
				Type:  typeLearningAppRes,
				Href:  metaPath,
				Files: []string{metaPath, nonCCPath},
			},
		},
	}
}

func quizPoints(item course.Item) float64 {
	if item.Points > 0 {
		return item.Points
	}
	var sum float64
	for _, q := range item.Questions {
		sum += questionPoints(q)
	}
	if sum > 0 {
		return sum
	}
	return defaultQuizPoints
}

func questionPoints(q course.QuizQuestion) float64 {
	if q.Points > 0 {
		return q.Points
	}
	return 1
}

// correctAnswerIndex applies the single-correct invariant: the first answer
// flagged correct wins, and if none is flagged the first answer is treated
// as correct rather than failing the export.
func correctAnswerIndex(answers []course.Answer) int {
	for i, a := range answers {
		if a.Correct {
			return i
		}
	}
	return 0
}

func quizMetaXML(item course.Item, resourceID string, ctx *exportContext) string {
	points := formatPoints(quizPoints(item))
	description := item.Content
	if description == "" {
		description = defaultQuizDescription
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<quiz identifier="%s" xmlns="http://canvas.instructure.com/xsd/cccv1p0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://canvas.instructure.com/xsd/cccv1p0 https://canvas.instructure.com/xsd/cccv1p0.xsd">
  <title>%s</title>
  <description>%s</description>
  <shuffle_answers>false</shuffle_answers>
  <scoring_policy>keep_highest</scoring_policy>
  <hide_results></hide_results>
  <quiz_type>assignment</quiz_type>
  <points_possible>%s</points_possible>
  <require_lockdown_browser>false</require_lockdown_browser>
  <require_lockdown_browser_for_results>false</require_lockdown_browser_for_results>
  <require_lockdown_browser_monitor>false</require_lockdown_browser_monitor>
  <lockdown_browser_monitor_data/>
  <show_correct_answers>true</show_correct_answers>
  <anonymous_submissions>false</anonymous_submissions>
  <could_be_locked>false</could_be_locked>
  <disable_timer_autosubmission>false</disable_timer_autosubmission>
  <allowed_attempts>1</allowed_attempts>
  <one_question_at_a_time>false</one_question_at_a_time>
  <cant_go_back>false</cant_go_back>
  <available>false</available>
  <one_time_results>false</one_time_results>
  <show_correct_answers_last_attempt>false</show_correct_answers_last_attempt>
  <only_visible_to_overrides>false</only_visible_to_overrides>
  <module_locked>false</module_locked>
  <assignment identifier="%s">
    <title>%s</title>
    <due_at/>
    <lock_at/>
    <unlock_at/>
    <module_locked>false</module_locked>
    <assignment_group_identifierref>%s</assignment_group_identifierref>
    <workflow_state>unpublished</workflow_state>
    <assignment_overrides>
    </assignment_overrides>
    <quiz_identifierref>%s</quiz_identifierref>
    <allowed_extensions></allowed_extensions>
    <has_group_category>false</has_group_category>
    <points_possible>%s</points_possible>
    <grading_type>points</grading_type>
    <all_day>false</all_day>
    <submission_types>online_quiz</submission_types>
    <position>1</position>
    <turnitin_enabled>false</turnitin_enabled>
    <vericite_enabled>false</vericite_enabled>
    <peer_review_count>0</peer_review_count>
    <peer_reviews>false</peer_reviews>
    <automatic_peer_reviews>false</automatic_peer_reviews>
    <anonymous_peer_reviews>false</anonymous_peer_reviews>
    <grade_group_students_individually>false</grade_group_students_individually>
    <freeze_on_copy>false</freeze_on_copy>
    <omit_from_final_grade>false</omit_from_final_grade>
    <hide_in_gradebook>false</hide_in_gradebook>
    <intra_group_peer_reviews>false</intra_group_peer_reviews>
    <only_visible_to_overrides>false</only_visible_to_overrides>
    <post_to_sis>false</post_to_sis>
    <moderated_grading>false</moderated_grading>
    <grader_count>0</grader_count>
    <grader_comments_visible_to_graders>true</grader_comments_visible_to_graders>
    <anonymous_grading>false</anonymous_grading>
    <graders_anonymous_to_graders>false</graders_anonymous_to_graders>
    <grader_names_visible_to_final_grader>true</grader_names_visible_to_final_grader>
    <anonymous_instructor_annotations>false</anonymous_instructor_annotations>
    <post_policy>
      <post_manually>false</post_manually>
    </post_policy>
  </assignment>
  <assignment_group_identifierref>%s</assignment_group_identifierref>
  <assignment_overrides>
  </assignment_overrides>
</quiz>`,
		resourceID, escapeXML(item.Title), escapeXML(description), points,
		newIdentifier(), escapeXML(item.Title), ctx.assignmentGroupID, resourceID, points,
		ctx.assignmentGroupID)
}
