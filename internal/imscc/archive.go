package imscc

import (
	"archive/zip"
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// resource is one manifest-level resource descriptor: the identifier other
// documents reference, Canvas's resource type string, an optional primary
// href, the archive paths belonging to the resource, and an optional
// dependency on another resource.
type resource struct {
	ID         string
	Type       string
	Href       string // empty means no href attribute (discussions)
	Files      []string
	Dependency string // identifier of the depended-on resource, if any
}

// Canvas resource type vocabulary.
const (
	typeWebContent      = "webcontent"
	typeLearningAppRes  = "associatedcontent/imscc_xmlv1p1/learning-application-resource"
	typeDiscussionTopic = "imsdt_xmlv1p1"
	typeAssessment      = "imsqti_xmlv1p2/imscc_xmlv1p1/assessment"
)

type archiveFile struct {
	Path string
	Data []byte
}

// archive is the in-memory package tree, kept as an ordered file list so
// the zip layout is reproducible.
type archive struct {
	files []archiveFile
}

func (a *archive) add(path string, data []byte) {
	a.files = append(a.files, archiveFile{Path: path, Data: data})
}

func (a *archive) addString(path, data string) {
	a.add(path, []byte(data))
}

// zipBytes serializes the tree into a single zip blob.
func (a *archive) zipBytes() ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, f := range a.files {
		w, err := zw.Create(f.Path)
		if err != nil {
			return nil, fmt.Errorf("archive entry %s: %w", f.Path, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("archive entry %s: %w", f.Path, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}
	return buf.Bytes(), nil
}

// encoded is what a dialect encoder hands back to the orchestrator.
type encoded struct {
	files     []archiveFile
	resources []resource
}

// formatPoints renders point values for Canvas's decimal-typed fields:
// whole numbers get one decimal place ("4.0"), everything else renders
// as-is.
func formatPoints(p float64) string {
	if p == math.Trunc(p) {
		return strconv.FormatFloat(p, 'f', 1, 64)
	}
	return strconv.FormatFloat(p, 'f', -1, 64)
}
