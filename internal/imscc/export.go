// Package imscc serializes an authored course into an IMS Common Cartridge
// archive importable by the Canvas LMS. One call, one self-contained zip:
// manifest, course settings, and per-item dialect documents whose generated
// identifiers all cross-reference each other.
package imscc

import (
	"fmt"
	"time"

	"github.com/courseforge/courseforge/internal/course"
)

const defaultWelcomeHTML = "<h1>Welcome to the Course!</h1><p>Get started by exploring the modules below.</p>"

// BuildPackage exports the course as a .imscc (zip) blob. Any failure
// aborts the whole export; there is no partial cartridge.
func BuildPackage(c course.Course) ([]byte, error) {
	return buildPackageAt(c, time.Now())
}

func buildPackageAt(c course.Course, exportDate time.Time) ([]byte, error) {
	ctx := newExportContext()
	ar := &archive{}
	var resources []resource
	resourceIDs := map[string]string{} // item id -> resource id

	// Rubrics first: assignment_settings.xml needs to know whether a
	// rubric reference exists before the assignment is encoded.
	for _, mod := range c.Modules {
		for _, item := range mod.Items {
			if item.Type == course.KindAssignment && item.Rubric != nil {
				ctx.registerRubric(item.ID, *item.Rubric)
			}
		}
	}

	for _, mod := range c.Modules {
		for _, item := range mod.Items {
			resourceID := newIdentifier()
			resourceIDs[item.ID] = resourceID

			var enc encoded
			switch item.Type {
			case course.KindAssignment:
				enc = encodeAssignment(item, resourceID, ctx)
			case course.KindDiscussion:
				enc = encodeDiscussion(item, resourceID)
			case course.KindQuiz:
				enc = encodeQuiz(item, resourceID, ctx)
			default: // page, and any kind we don't recognize
				enc = encodePage(item, resourceID)
			}

			for _, f := range enc.files {
				ar.add(f.Path, f.Data)
			}
			resources = append(resources, enc.resources...)
		}
	}

	welcome := escapeAmpersands(c.WelcomeMessage)
	if welcome == "" {
		welcome = defaultWelcomeHTML
	}
	ar.addString("wiki_content/course-welcome.html", fmt.Sprintf(`<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8">
<title>Welcome</title>
</head>
<body>
%s
</body>
</html>`, welcome))

	ar.addString("course_settings/course_settings.xml", courseSettingsXML(c))
	ar.addString("course_settings/module_meta.xml", moduleMetaXML(c, resourceIDs))
	ar.addString("course_settings/assignment_groups.xml", assignmentGroupsXML(ctx))
	ar.addString("course_settings/rubrics.xml", rubricsXML(ctx))
	ar.addString("course_settings/canvas_export.txt",
		fmt.Sprintf("Canvas course export\nGenerated: %s\n", exportDate.UTC().Format(time.RFC3339)))

	// The settings bundle must be the first resource in the manifest;
	// some Canvas import paths resolve it before anything else.
	resources = append([]resource{{
		ID:   newIdentifier(),
		Type: typeLearningAppRes,
		Href: "course_settings/canvas_export.txt",
		Files: []string{
			"course_settings/course_settings.xml",
			"course_settings/module_meta.xml",
			"course_settings/assignment_groups.xml",
			"course_settings/rubrics.xml",
			"course_settings/canvas_export.txt",
		},
	}}, resources...)

	ar.addString("imsmanifest.xml", manifestXML(c, resources, resourceIDs, exportDate))

	blob, err := ar.zipBytes()
	if err != nil {
		return nil, fmt.Errorf("imscc export: %w", err)
	}
	return blob, nil
}

// Filename returns a download name for the course's archive, falling back
// to a generic name when the title has no slug-safe characters.
func Filename(c course.Course) string {
	if slug := slugify(c.Title); slug != "" {
		return slug + ".imscc"
	}
	return "course.imscc"
}
