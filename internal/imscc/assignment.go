package imscc

import (
	"fmt"

	"github.com/courseforge/courseforge/internal/course"
)

const (
	defaultAssignmentPoints = 100
	defaultAssignmentBody   = "<p>Complete this assignment according to the guidelines provided.</p>"
)

// encodeAssignment emits an assignment folder named after the resource id,
// holding the instructional HTML and assignment_settings.xml. The HTML file
// is the primary href and must be listed before the settings file.
func encodeAssignment(item course.Item, resourceID string, ctx *exportContext) encoded {
	name := slugify(item.Title)
	if name == "" {
		name = resourceID
	}
	htmlPath := resourceID + "/" + name + ".html"
	settingsPath := resourceID + "/assignment_settings.xml"

	return encoded{
		files: []archiveFile{
			{Path: htmlPath, Data: []byte(assignmentHTML(item))},
			{Path: settingsPath, Data: []byte(assignmentSettingsXML(item, resourceID, ctx))},
		},
		resources: []resource{{
			ID:    resourceID,
			Type:  typeLearningAppRes,
			Href:  htmlPath,
			Files: []string{htmlPath, settingsPath},
		}},
	}
}

func assignmentHTML(item course.Item) string {
	body := escapeAmpersands(item.Content)
	if body == "" {
		body = defaultAssignmentBody
	}
	return fmt.Sprintf(`<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8">
<title>%s</title>
</head>
<body>
<h2>Instructions</h2>
%s
</body>
</html>`, escapeXML(item.Title), body)
}

func assignmentSettingsXML(item course.Item, resourceID string, ctx *exportContext) string {
	points := item.Points
	if points == 0 {
		points = defaultAssignmentPoints
	}

	rubricRef := ""
	if reg, ok := ctx.lookupRubric(item.ID); ok {
		rubricRef = fmt.Sprintf(`
  <rubric_identifierref>%s</rubric_identifierref>
  <rubric_use_for_grading>true</rubric_use_for_grading>
  <rubric_hide_points>false</rubric_hide_points>
  <rubric_hide_outcome_results>false</rubric_hide_outcome_results>
  <rubric_hide_score_total>false</rubric_hide_score_total>`, reg.id)
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<assignment identifier="%s" xmlns="http://canvas.instructure.com/xsd/cccv1p0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://canvas.instructure.com/xsd/cccv1p0 https://canvas.instructure.com/xsd/cccv1p0.xsd">
  <title>%s</title>
  <due_at/>
  <lock_at/>
  <unlock_at/>
  <module_locked>false</module_locked>
  <workflow_state>published</workflow_state>
  <assignment_group_identifierref>%s</assignment_group_identifierref>%s
  <assignment_overrides/>
  <allowed_extensions/>
  <has_group_category>false</has_group_category>
  <points_possible>%s</points_possible>
  <grading_type>points</grading_type>
  <all_day>false</all_day>
  <submission_types>online_text_entry,online_upload</submission_types>
  <position>1</position>
  <peer_review_count>0</peer_review_count>
  <peer_reviews>false</peer_reviews>
  <automatic_peer_reviews>false</automatic_peer_reviews>
  <anonymous_peer_reviews>false</anonymous_peer_reviews>
  <grade_group_students_individually>false</grade_group_students_individually>
  <freeze_on_copy>false</freeze_on_copy>
  <omit_from_final_grade>false</omit_from_final_grade>
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
</assignment>`, resourceID, escapeXML(item.Title), ctx.assignmentGroupID, rubricRef, formatPoints(points))
}
