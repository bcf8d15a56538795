package imscc

import (
	"fmt"
	"strings"
	"time"

	"github.com/courseforge/courseforge/internal/course"
)

// manifestXML renders imsmanifest.xml: course metadata, the organization
// tree mirroring the module/item hierarchy, and the flat resource list.
// Resource order is preserved as registered; the course-settings bundle is
// already first by the time this runs.
func manifestXML(c course.Course, resources []resource, resourceIDs map[string]string, exportDate time.Time) string {
	var orgItems strings.Builder
	for _, mod := range c.Modules {
		var modItems strings.Builder
		for _, item := range mod.Items {
			modItems.WriteString(fmt.Sprintf(`
          <item identifier="%s" identifierref="%s">
            <title>%s</title>
          </item>`, moduleItemIdentifier(mod, item), resourceIDs[item.ID], escapeXML(item.Title)))
		}
		orgItems.WriteString(fmt.Sprintf(`
        <item identifier="%s">
          <title>%s</title>%s
        </item>`, moduleIdentifier(mod), escapeXML(mod.Name), modItems.String()))
	}

	var resourcesXML strings.Builder
	for _, r := range resources {
		var files strings.Builder
		for _, f := range r.Files {
			files.WriteString(fmt.Sprintf("\n      <file href=\"%s\"/>", f))
		}
		href := ""
		if r.Href != "" {
			href = fmt.Sprintf(" href=%q", r.Href)
		}
		dep := ""
		if r.Dependency != "" {
			dep = fmt.Sprintf("\n      <dependency identifierref=%q/>", r.Dependency)
		}
		resourcesXML.WriteString(fmt.Sprintf(`
    <resource identifier="%s" type="%s"%s>%s%s
    </resource>`, r.ID, r.Type, href, files.String(), dep))
	}

	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<manifest identifier="course_%s"
  xmlns="http://www.imsglobal.org/xsd/imsccv1p1/imscp_v1p1"
  xmlns:lom="http://ltsc.ieee.org/xsd/imsccv1p1/LOM/resource"
  xmlns:lomimscc="http://ltsc.ieee.org/xsd/imsccv1p1/LOM/manifest"
  xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
  xsi:schemaLocation="http://www.imsglobal.org/xsd/imsccv1p1/imscp_v1p1 http://www.imsglobal.org/profile/cc/ccv1p1/ccv1p1_imscp_v1p2_v1p0.xsd http://ltsc.ieee.org/xsd/imsccv1p1/LOM/resource http://www.imsglobal.org/profile/cc/ccv1p1/LOM/ccv1p1_lomresource_v1p0.xsd http://ltsc.ieee.org/xsd/imsccv1p1/LOM/manifest http://www.imsglobal.org/profile/cc/ccv1p1/LOM/ccv1p1_lommanifest_v1p0.xsd">
  <metadata>
    <schema>IMS Common Cartridge</schema>
    <schemaversion>1.1.0</schemaversion>
    <lomimscc:lom>
      <lomimscc:general>
        <lomimscc:title>
          <lomimscc:string>%s</lomimscc:string>
        </lomimscc:title>
        <lomimscc:description>
          <lomimscc:string>%s</lomimscc:string>
        </lomimscc:description>
      </lomimscc:general>
      <lomimscc:lifeCycle>
        <lomimscc:contribute>
          <lomimscc:date>
            <lomimscc:dateTime>%s</lomimscc:dateTime>
          </lomimscc:date>
        </lomimscc:contribute>
      </lomimscc:lifeCycle>
    </lomimscc:lom>
  </metadata>
  <organizations>
    <organization identifier="org_1" structure="rooted-hierarchy">
      <item identifier="LearningModules">%s
      </item>
    </organization>
  </organizations>
  <resources>%s
  </resources>
</manifest>`,
		newIdentifier(), escapeXML(c.Title), escapeXML(c.Description),
		exportDate.UTC().Format("2006-01-02"), orgItems.String(), resourcesXML.String())
}
