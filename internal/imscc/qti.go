package imscc

import (
	"fmt"
	"strings"

	"github.com/courseforge/courseforge/internal/course"
)

// Canvas's classic-quiz import needs the same questions serialized twice:
// once as Common-Cartridge-profile QTI 1.2 (assessment_qti.xml, portable)
// and once in Canvas's own QTI dialect (non_cc_assessments/*.xml.qti,
// which carries point values and question_type tags the CC profile has no
// field for). The two encoders are deliberately independent; only the
// question list is shared. Answer option identifiers are 1000+index within
// each question.

func ccProfileQTI(title string, questions []course.QuizQuestion, assessmentID string) string {
	var items strings.Builder
	for _, q := range questions {
		if q.Type == course.QuestionMultipleChoice && len(q.Answers) > 0 {
			items.WriteString(ccChoiceItem(q))
		} else {
			items.WriteString(ccEssayItem(q))
		}
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<questestinterop xmlns="http://www.imsglobal.org/xsd/ims_qtiasiv1p2" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.imsglobal.org/xsd/ims_qtiasiv1p2 http://www.imsglobal.org/profile/cc/ccv1p1/ccv1p1_qtiasiv1p2p1_v1p0.xsd">
  <assessment ident="%s" title="%s">
    <qtimetadata>
      <qtimetadatafield>
        <fieldlabel>cc_profile</fieldlabel>
        <fieldentry>cc.exam.v0p1</fieldentry>
      </qtimetadatafield>
      <qtimetadatafield>
        <fieldlabel>qmd_assessmenttype</fieldlabel>
        <fieldentry>Examination</fieldentry>
      </qtimetadatafield>
      <qtimetadatafield>
        <fieldlabel>qmd_scoretype</fieldlabel>
        <fieldentry>Percentage</fieldentry>
      </qtimetadatafield>
      <qtimetadatafield>
        <fieldlabel>cc_maxattempts</fieldlabel>
        <fieldentry>1</fieldentry>
      </qtimetadatafield>
    </qtimetadata>
    <section ident="root_section">%s
    </section>
  </assessment>
</questestinterop>`, assessmentID, escapeXML(title), items.String())
}

func ccChoiceItem(q course.QuizQuestion) string {
	return fmt.Sprintf(`
      <item ident="%s" title="Question">
        <itemmetadata>
          <qtimetadata>
            <qtimetadatafield>
              <fieldlabel>cc_profile</fieldlabel>
              <fieldentry>cc.multiple_choice.v0p1</fieldentry>
            </qtimetadatafield>
          </qtimetadata>
        </itemmetadata>
        <presentation>
          <material>
            <mattext texttype="text/html">&lt;div&gt;&lt;p&gt;%s&lt;/p&gt;&lt;/div&gt;</mattext>
          </material>
          <response_lid ident="response1" rcardinality="Single">
            <render_choice>
%s
            </render_choice>
          </response_lid>
        </presentation>
        <resprocessing>
          <outcomes>
            <decvar maxvalue="100" minvalue="0" varname="SCORE" vartype="Decimal"/>
          </outcomes>
          <respcondition continue="No">
            <conditionvar>
              <varequal respident="response1">%d</varequal>
            </conditionvar>
            <setvar action="Set" varname="SCORE">100</setvar>
          </respcondition>
        </resprocessing>
      </item>`,
		newIdentifier(), escapeXML(q.Text), responseLabels(q.Answers),
		1000+correctAnswerIndex(q.Answers))
}

func ccEssayItem(q course.QuizQuestion) string {
	return fmt.Sprintf(`
      <item ident="%s" title="Question">
        <itemmetadata>
          <qtimetadata>
            <qtimetadatafield>
              <fieldlabel>cc_profile</fieldlabel>
              <fieldentry>cc.essay.v0p1</fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>qmd_computerscored</fieldlabel>
              <fieldentry>No</fieldentry>
            </qtimetadatafield>
          </qtimetadata>
        </itemmetadata>
        <presentation>
          <material>
            <mattext texttype="text/html">&lt;div&gt;&lt;p&gt;%s&lt;/p&gt;&lt;/div&gt;</mattext>
          </material>
          <response_str ident="response1" rcardinality="Single">
            <render_fib>
              <response_label ident="answer1" rshuffle="No"/>
            </render_fib>
          </response_str>
        </presentation>
        <resprocessing>
          <outcomes>
            <decvar maxvalue="100" minvalue="0" varname="SCORE" vartype="Decimal"/>
          </outcomes>
          <respcondition continue="No">
            <conditionvar>
              <other/>
            </conditionvar>
          </respcondition>
        </resprocessing>
      </item>`, newIdentifier(), escapeXML(q.Text))
}

func canvasQTI(title string, questions []course.QuizQuestion, assessmentID string) string {
	var items strings.Builder
	for _, q := range questions {
		if q.Type == course.QuestionMultipleChoice && len(q.Answers) > 0 {
			items.WriteString(canvasChoiceItem(q))
		} else {
			items.WriteString(canvasTextItem(q))
		}
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<questestinterop xmlns="http://www.imsglobal.org/xsd/ims_qtiasiv1p2" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.imsglobal.org/xsd/ims_qtiasiv1p2 http://www.imsglobal.org/xsd/ims_qtiasiv1p2p1.xsd">
  <assessment ident="%s" title="%s">
    <qtimetadata>
      <qtimetadatafield>
        <fieldlabel>cc_maxattempts</fieldlabel>
        <fieldentry>1</fieldentry>
      </qtimetadatafield>
    </qtimetadata>
    <section ident="root_section">%s
    </section>
  </assessment>
</questestinterop>`, assessmentID, escapeXML(title), items.String())
}

func canvasChoiceItem(q course.QuizQuestion) string {
	questionID := newIdentifier()
	answerIDs := make([]string, len(q.Answers))
	for i := range q.Answers {
		answerIDs[i] = fmt.Sprintf("%d", 1000+i)
	}

	return fmt.Sprintf(`
      <item ident="%s" title="Question">
        <itemmetadata>
          <qtimetadata>
            <qtimetadatafield>
              <fieldlabel>question_type</fieldlabel>
              <fieldentry>multiple_choice_question</fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>points_possible</fieldlabel>
              <fieldentry>%s</fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>original_answer_ids</fieldlabel>
              <fieldentry>%s</fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>assessment_question_identifierref</fieldlabel>
              <fieldentry>%s</fieldentry>
            </qtimetadatafield>
          </qtimetadata>
        </itemmetadata>
        <presentation>
          <material>
            <mattext texttype="text/html">&lt;div&gt;&lt;p&gt;%s&lt;/p&gt;&lt;/div&gt;</mattext>
          </material>
          <response_lid ident="response1" rcardinality="Single">
            <render_choice>
%s
            </render_choice>
          </response_lid>
        </presentation>
        <resprocessing>
          <outcomes>
            <decvar maxvalue="100" minvalue="0" varname="SCORE" vartype="Decimal"/>
          </outcomes>
          <respcondition continue="No">
            <conditionvar>
              <varequal respident="response1">%d</varequal>
            </conditionvar>
            <setvar action="Set" varname="SCORE">100</setvar>
          </respcondition>
        </resprocessing>
      </item>`,
		questionID, formatPoints(questionPoints(q)), strings.Join(answerIDs, ","),
		questionID, escapeXML(q.Text), responseLabels(q.Answers),
		1000+correctAnswerIndex(q.Answers))
}

func canvasTextItem(q course.QuizQuestion) string {
	questionID := newIdentifier()
	questionType := "short_answer_question"
	if q.Type == course.QuestionEssay {
		questionType = "essay_question"
	}

	return fmt.Sprintf(`
      <item ident="%s" title="Question">
        <itemmetadata>
          <qtimetadata>
            <qtimetadatafield>
              <fieldlabel>question_type</fieldlabel>
              <fieldentry>%s</fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>points_possible</fieldlabel>
              <fieldentry>%s</fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>original_answer_ids</fieldlabel>
              <fieldentry></fieldentry>
            </qtimetadatafield>
            <qtimetadatafield>
              <fieldlabel>assessment_question_identifierref</fieldlabel>
              <fieldentry>%s</fieldentry>
            </qtimetadatafield>
          </qtimetadata>
        </itemmetadata>
        <presentation>
          <material>
            <mattext texttype="text/html">&lt;div&gt;&lt;p&gt;%s&lt;/p&gt;&lt;/div&gt;</mattext>
          </material>
          <response_str ident="response1" rcardinality="Single">
            <render_fib>
              <response_label ident="answer1" rshuffle="No"/>
            </render_fib>
          </response_str>
        </presentation>
        <resprocessing>
          <outcomes>
            <decvar maxvalue="100" minvalue="0" varname="SCORE" vartype="Decimal"/>
          </outcomes>
          <respcondition continue="No">
            <conditionvar>
              <other/>
            </conditionvar>
          </respcondition>
        </resprocessing>
      </item>`,
		questionID, questionType, formatPoints(questionPoints(q)), questionID, escapeXML(q.Text))
}

func responseLabels(answers []course.Answer) string {
	labels := make([]string, len(answers))
	for i, a := range answers {
		labels[i] = fmt.Sprintf(`              <response_label ident="%d">
                <material>
                  <mattext texttype="text/plain">%s</mattext>
                </material>
              </response_label>`, 1000+i, escapeXML(a.Text))
	}
	return strings.Join(labels, "\n")
}
