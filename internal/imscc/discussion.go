package imscc

import (
	"fmt"

	"github.com/courseforge/courseforge/internal/course"
)

const defaultDiscussionBody = "<p>Share your thoughts on this topic.</p>"

// encodeDiscussion emits one discussion-topic XML document at the archive
// root. The resource intentionally carries no href: Canvas rejects an href
// on the imsdt resource type, addressing it through its file instead.
func encodeDiscussion(item course.Item, resourceID string) encoded {
	body := item.Content
	if body == "" {
		body = item.Prompt
	}
	if body == "" {
		body = defaultDiscussionBody
	}

	doc := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<topic xmlns="http://www.imsglobal.org/xsd/imsccv1p1/imsdt_v1p1" xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance" xsi:schemaLocation="http://www.imsglobal.org/xsd/imsccv1p1/imsdt_v1p1 http://www.imsglobal.org/profile/cc/ccv1p1/ccv1p1_imsdt_v1p1.xsd">
  <title>%s</title>
  <text texttype="text/html">%s</text>
</topic>`, escapeXML(item.Title), escapeXML(body))

	path := resourceID + ".xml"
	return encoded{
		files: []archiveFile{{Path: path, Data: []byte(doc)}},
		resources: []resource{{
			ID:    resourceID,
			Type:  typeDiscussionTopic,
			Files: []string{path},
		}},
	}
}
