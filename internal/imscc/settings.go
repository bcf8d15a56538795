package imscc

import (
	"fmt"
	"strings"

	"github.com/courseforge/courseforge/internal/course"
)

// Course-settings documents share the Canvas cccv1p0 schema.
const canvasSchemaAttrs = `xmlns="http://canvas.instructure.com/xsd/cccv1p0" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://canvas.instructure.com/xsd/cccv1p0 https://canvas.instructure.com/xsd/cccv1p0.xsd"`

// moduleMetaXML renders course_settings/module_meta.xml: the module
// hierarchy with each item pointing back at its registered resource.
func moduleMetaXML(c course.Course, resourceIDs map[string]string) string {
	var modules strings.Builder
	for pos, mod := range c.Modules {
		var items strings.Builder
		for itemPos, item := range mod.Items {
			items.WriteString(fmt.Sprintf(`
      <item identifier="%s">
        <content_type>%s</content_type>
        <workflow_state>active</workflow_state>
        <title>%s</title>
        <identifierref>%s</identifierref>
        <position>%d</position>
        <new_tab>false</new_tab>
        <indent>0</indent>
      </item>`,
				moduleItemIdentifier(mod, item), canvasContentType(item.Type),
				escapeXML(item.Title), resourceIDs[item.ID], itemPos+1))
		}
		modules.WriteString(fmt.Sprintf(`
  <module identifier="%s">
    <title>%s</title>
    <workflow_state>active</workflow_state>
    <position>%d</position>
    <require_sequential_progress>false</require_sequential_progress>
    <locked>false</locked>
    <items>%s
    </items>
  </module>`, moduleIdentifier(mod), escapeXML(mod.Name), pos+1, items.String()))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<modules %s>%s
</modules>`, canvasSchemaAttrs, modules.String())
}

func moduleIdentifier(mod course.Module) string {
	return "mod_" + mod.ID
}

func moduleItemIdentifier(mod course.Module, item course.Item) string {
	return "item_" + mod.ID + "_" + item.ID
}

func canvasContentType(kind string) string {
	switch kind {
	case course.KindQuiz:
		return "Quizzes::Quiz"
	case course.KindAssignment:
		return "Assignment"
	case course.KindDiscussion:
		return "DiscussionTopic"
	default:
		return "WikiPage"
	}
}

// rubricsXML renders the rubric bank. An export with no rubrics still gets
// a well-formed empty document; Canvas expects the file to exist.
func rubricsXML(ctx *exportContext) string {
	var rubrics strings.Builder
	for _, itemID := range ctx.rubricOrder {
		reg := ctx.rubrics[itemID]

		var criteria strings.Builder
		for _, criterion := range reg.rubric.Criteria {
			criterionID := newIdentifier()

			var ratings strings.Builder
			for _, rating := range criterion.Ratings {
				ratings.WriteString(fmt.Sprintf(`
          <rating>
            <description>%s</description>
            <points>%s</points>
            <criterion_id>%s</criterion_id>
            <id>%s</id>
          </rating>`, escapeXML(rating.Description), formatPoints(rating.Points), criterionID, newIdentifier()))
			}

			criteria.WriteString(fmt.Sprintf(`
      <criterion>
        <criterion_id>%s</criterion_id>
        <points>%s</points>
        <description>%s</description>
        <ratings>%s
        </ratings>
      </criterion>`, criterionID, formatPoints(criterion.Points), escapeXML(criterion.Description), ratings.String()))
		}

		rubrics.WriteString(fmt.Sprintf(`
  <rubric identifier="%s">
    <read_only>false</read_only>
    <title>%s</title>
    <reusable>false</reusable>
    <public>false</public>
    <points_possible>%s</points_possible>
    <hide_score_total>false</hide_score_total>
    <free_form_criterion_comments>false</free_form_criterion_comments>
    <criteria>%s
    </criteria>
  </rubric>`, reg.id, escapeXML(reg.rubric.Title), formatPoints(reg.rubric.TotalPoints()), criteria.String()))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rubrics %s>%s
</rubrics>`, canvasSchemaAttrs, rubrics.String())
}

// assignmentGroupsXML renders the single shared assignment group every
// gradable item references.
func assignmentGroupsXML(ctx *exportContext) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<assignmentGroups %s>
  <assignmentGroup identifier="%s">
    <title>Assignments</title>
    <position>1</position>
    <group_weight>100.0</group_weight>
  </assignmentGroup>
</assignmentGroups>`, canvasSchemaAttrs, ctx.assignmentGroupID)
}

func courseSettingsXML(c course.Course) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<course %s identifier="course_settings">
  <title>%s</title>
  <course_code>%s</course_code>
  <default_view>modules</default_view>
  <hide_final_grade>false</hide_final_grade>
</course>`, canvasSchemaAttrs, escapeXML(c.Title), escapeXML(c.Title))
}
