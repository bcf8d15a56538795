package course

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("course not found")

type ListOpts struct {
	Q      string // optional title filter
	Limit  int
	Offset int
}

type Summary struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	ModuleCount int    `json:"module_count"`
	CreatedAt   int64  `json:"created_at"`
}

// ExportRecord tracks one finished archive in the blob store.
type ExportRecord struct {
	ID        string `json:"id"`
	CourseID  string `json:"course_id"`
	BlobKey   string `json:"blob_key"`
	SizeBytes int64  `json:"size_bytes"`
	CreatedAt int64  `json:"created_at"`
}

type Store interface {
	PutCourse(ctx context.Context, c Course) error
	GetCourse(ctx context.Context, id string) (Course, error)
	ListCourses(ctx context.Context, opts ListOpts) ([]Summary, error)
	DeleteCourse(ctx context.Context, id string) error

	RecordExport(ctx context.Context, rec ExportRecord) error
	ListExports(ctx context.Context, courseID string) ([]ExportRecord, error)
}
