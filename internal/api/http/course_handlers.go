// Package http holds the chi handlers. Routes are wired in cmd/courseforged.
package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/courseforge/courseforge/internal/course"
)

// POST /courses — store an authored course. The body is the full course
// JSON the content producer emits; an id is assigned when absent.
func CreateCourseHandler(store course.Store, log *zap.Logger) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var c course.Course
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		if strings.TrimSpace(c.Title) == "" {
			nethttp.Error(w, "title required", nethttp.StatusBadRequest)
			return
		}
		if c.ID == "" {
			c.ID = "c-" + strings.ToLower(ulid.Make().String())
		}
		if err := store.PutCourse(r.Context(), c); err != nil {
			log.Error("put course", zap.String("course_id", c.ID), zap.Error(err))
			nethttp.Error(w, "db error", nethttp.StatusInternalServerError)
			return
		}
		w.WriteHeader(nethttp.StatusCreated)
		_ = json.NewEncoder(w).Encode(map[string]string{"id": c.ID})
	}
}

// GET /courses?q=&limit=&offset=
func ListCoursesHandler(store course.Store, log *zap.Logger) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))
		out, err := store.ListCourses(r.Context(), course.ListOpts{
			Q:      r.URL.Query().Get("q"),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			log.Error("list courses", zap.Error(err))
			nethttp.Error(w, "db error", nethttp.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

// GET /courses/{id}
func GetCourseHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		c, err := store.GetCourse(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			if errors.Is(err, course.ErrNotFound) {
				nethttp.Error(w, "not found", nethttp.StatusNotFound)
				return
			}
			nethttp.Error(w, "db error", nethttp.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(c)
	}
}

// DELETE /courses/{id}
func DeleteCourseHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if err := store.DeleteCourse(r.Context(), chi.URLParam(r, "id")); err != nil {
			if errors.Is(err, course.ErrNotFound) {
				nethttp.Error(w, "not found", nethttp.StatusNotFound)
				return
			}
			nethttp.Error(w, "db error", nethttp.StatusInternalServerError)
			return
		}
		w.WriteHeader(nethttp.StatusNoContent)
	}
}
