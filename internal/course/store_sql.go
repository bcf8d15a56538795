package course

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

type SQLStore struct {
	db     *sql.DB
	driver string // "sqlite" or "postgres"
}

func NewSQLStore(db *sql.DB, driver string) *SQLStore {
	return &SQLStore{db: db, driver: driver}
}

func (s *SQLStore) PutCourse(ctx context.Context, c Course) error {
	mj, err := json.Marshal(c.Modules)
	if err != nil {
		return fmt.Errorf("marshal modules: %w", err)
	}
	createdAt := c.CreatedAt
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}
	_, err = s.db.ExecContext(ctx, `INSERT INTO courses (id,title,description,welcome_message,modules_json,created_at)
		VALUES ($1,$2,$3,$4,$5,$6)
		ON CONFLICT (id) DO UPDATE SET title=EXCLUDED.title, description=EXCLUDED.description,
			welcome_message=EXCLUDED.welcome_message, modules_json=EXCLUDED.modules_json`,
		c.ID, c.Title, c.Description, c.WelcomeMessage, string(mj), createdAt)
	return err
}

func (s *SQLStore) GetCourse(ctx context.Context, id string) (Course, error) {
	row := s.db.QueryRowContext(ctx, `SELECT id,title,description,welcome_message,modules_json,created_at FROM courses WHERE id=$1`, id)
	var c Course
	var mjson string
	if err := row.Scan(&c.ID, &c.Title, &c.Description, &c.WelcomeMessage, &mjson, &c.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Course{}, ErrNotFound
		}
		return Course{}, err
	}
	if err := json.Unmarshal([]byte(mjson), &c.Modules); err != nil {
		return Course{}, fmt.Errorf("course %s: corrupt modules_json: %w", id, err)
	}
	return c, nil
}

func (s *SQLStore) ListCourses(ctx context.Context, opts ListOpts) ([]Summary, error) {
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	q := `SELECT id,title,description,modules_json,created_at FROM courses`
	args := []any{}
	if opts.Q != "" {
		q += ` WHERE title LIKE $1`
		args = append(args, "%"+opts.Q+"%")
	}
	q += fmt.Sprintf(` ORDER BY created_at DESC LIMIT %d OFFSET %d`, limit, max(opts.Offset, 0))

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []Summary{}
	for rows.Next() {
		var sum Summary
		var mjson string
		if err := rows.Scan(&sum.ID, &sum.Title, &sum.Description, &mjson, &sum.CreatedAt); err != nil {
			return nil, err
		}
		var modules []Module
		if err := json.Unmarshal([]byte(mjson), &modules); err == nil {
			sum.ModuleCount = len(modules)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

func (s *SQLStore) DeleteCourse(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM courses WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLStore) RecordExport(ctx context.Context, rec ExportRecord) error {
	_, err := s.db.ExecContext(ctx, `INSERT INTO exports (id,course_id,blob_key,size_bytes,created_at)
		VALUES ($1,$2,$3,$4,$5)`,
		rec.ID, rec.CourseID, rec.BlobKey, rec.SizeBytes, rec.CreatedAt)
	return err
}

func (s *SQLStore) ListExports(ctx context.Context, courseID string) ([]ExportRecord, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT id,course_id,blob_key,size_bytes,created_at FROM exports
		WHERE course_id=$1 ORDER BY created_at DESC`, courseID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []ExportRecord{}
	for rows.Next() {
		var rec ExportRecord
		if err := rows.Scan(&rec.ID, &rec.CourseID, &rec.BlobKey, &rec.SizeBytes, &rec.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
