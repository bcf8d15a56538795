package imscc

import (
	"fmt"

	"github.com/courseforge/courseforge/internal/course"
)

const defaultPageBody = "<p>Content coming soon.</p>"

// encodePage emits a wiki page under wiki_content/. Also the fallback for
// any item kind the exporter does not recognize.
func encodePage(item course.Item, resourceID string) encoded {
	name := slugify(item.Title)
	if name == "" {
		name = resourceID
	}
	path := "wiki_content/" + name + ".html"

	body := escapeAmpersands(item.Content)
	if body == "" {
		body = defaultPageBody
	}

	html := fmt.Sprintf(`<html>
<head>
<meta http-equiv="Content-Type" content="text/html; charset=utf-8"/>
<title>%s</title>
<meta name="identifier" content="%s"/>
<meta name="editing_roles" content="teachers"/>
<meta name="workflow_state" content="active"/>
</head>
<body>
%s
</body>
</html>`, escapeXML(item.Title), resourceID, body)

	return encoded{
		files: []archiveFile{{Path: path, Data: []byte(html)}},
		resources: []resource{{
			ID:    resourceID,
			Type:  typeWebContent,
			Href:  path,
			Files: []string{path},
		}},
	}
}
