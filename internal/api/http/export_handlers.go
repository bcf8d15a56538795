package http

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"

	"github.com/courseforge/courseforge/internal/course"
	"github.com/courseforge/courseforge/internal/imscc"
	"github.com/courseforge/courseforge/internal/storage"
)

// GET /courses/{id}/export — build the Canvas cartridge for a stored
// course, keep a copy in the blob store, and stream it back.
func ExportCourseHandler(store course.Store, bs storage.BlobStore, log *zap.Logger) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		id := chi.URLParam(r, "id")
		c, err := store.GetCourse(r.Context(), id)
		if err != nil {
			if errors.Is(err, course.ErrNotFound) {
				nethttp.Error(w, "not found", nethttp.StatusNotFound)
				return
			}
			nethttp.Error(w, "db error", nethttp.StatusInternalServerError)
			return
		}

		blob, err := imscc.BuildPackage(c)
		if err != nil {
			log.Error("imscc export", zap.String("course_id", id), zap.Error(err))
			nethttp.Error(w, "export failed", nethttp.StatusInternalServerError)
			return
		}

		exportID := strings.ToLower(ulid.Make().String())
		blobKey := "exports/" + id + "/" + exportID + ".imscc"
		if _, err := storage.PutBytes(bs, blobKey, blob); err != nil {
			log.Warn("keep export copy", zap.String("blob_key", blobKey), zap.Error(err))
		} else {
			_ = store.RecordExport(r.Context(), course.ExportRecord{
				ID:        exportID,
				CourseID:  id,
				BlobKey:   blobKey,
				SizeBytes: int64(len(blob)),
				CreatedAt: time.Now().Unix(),
			})
		}

		log.Info("course exported",
			zap.String("course_id", id),
			zap.String("export_id", exportID),
			zap.Int("size_bytes", len(blob)))
		serveArchive(w, imscc.Filename(c), blob)
	}
}

// POST /export — stateless: full course JSON in, cartridge out. Nothing is
// stored; this is the path a client-side authoring flow uses.
func ExportInlineHandler(log *zap.Logger) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		var c course.Course
		if err := json.NewDecoder(r.Body).Decode(&c); err != nil {
			nethttp.Error(w, "bad json", nethttp.StatusBadRequest)
			return
		}
		blob, err := imscc.BuildPackage(c)
		if err != nil {
			log.Error("imscc export", zap.Error(err))
			nethttp.Error(w, "export failed", nethttp.StatusInternalServerError)
			return
		}
		serveArchive(w, imscc.Filename(c), blob)
	}
}

// GET /courses/{id}/exports — past exports for a course.
func ListExportsHandler(store course.Store) nethttp.HandlerFunc {
	return func(w nethttp.ResponseWriter, r *nethttp.Request) {
		out, err := store.ListExports(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			nethttp.Error(w, "db error", nethttp.StatusInternalServerError)
			return
		}
		_ = json.NewEncoder(w).Encode(out)
	}
}

func serveArchive(w nethttp.ResponseWriter, filename string, blob []byte) {
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	_, _ = w.Write(blob)
}
