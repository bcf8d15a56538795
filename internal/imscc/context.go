package imscc

import "github.com/courseforge/courseforge/internal/course"

// exportContext tracks identifiers that must agree across documents within
// a single export: the rubric id each assignment references and the one
// assignment group shared by every gradable item. One context per
// BuildPackage call; never reused.
type exportContext struct {
	rubrics           map[string]registeredRubric // keyed by item id
	rubricOrder       []string                    // item ids in registration order
	assignmentGroupID string
}

type registeredRubric struct {
	id     string
	rubric course.Rubric
}

func newExportContext() *exportContext {
	return &exportContext{
		rubrics:           map[string]registeredRubric{},
		assignmentGroupID: newIdentifier(),
	}
}

// registerRubric allocates an identifier for an assignment's rubric. Must
// run before that assignment is encoded, since assignment_settings.xml
// cross-references the rubric id.
func (ctx *exportContext) registerRubric(itemID string, r course.Rubric) string {
	if reg, ok := ctx.rubrics[itemID]; ok {
		return reg.id
	}
	id := newIdentifier()
	ctx.rubrics[itemID] = registeredRubric{id: id, rubric: r}
	ctx.rubricOrder = append(ctx.rubricOrder, itemID)
	return id
}

func (ctx *exportContext) lookupRubric(itemID string) (registeredRubric, bool) {
	reg, ok := ctx.rubrics[itemID]
	return reg, ok
}
