package http

import (
	"mime/multipart"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/heavymart/backend/internal/logger"
	"github.com/heavymart/backend/internal/service"
	"github.com/heavymart/backend/internal/utils"
	"github.com/heavymart/backend/models"
)

// multipartMemoryLimit bounds how much of a parsed form stays in memory
// before spilling to temp files.
const multipartMemoryLimit = 32 << 20

func (h *Handler) uploadSingle(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, service.ErrMissingFields)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing file field")
		writeError(w, service.ErrMissingFields)
		return
	}
	defer file.Close()

	record, err := h.saveOne(r, file, header)
	if err != nil {
		log.Err(err).Str("name", header.Filename).Msg("upload failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, record, http.StatusCreated)
}

func (h *Handler) uploadMultiple(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(multipartMemoryLimit); err != nil {
		log.Err(err).Msg("invalid multipart form")
		writeError(w, service.ErrMissingFields)
		return
	}

	headers := r.MultipartForm.File["files"]
	if len(headers) == 0 {
		writeError(w, service.ErrMissingFields)
		return
	}

	records := make([]models.MediaFile, 0, len(headers))
	for _, header := range headers {
		file, err := header.Open()
		if err != nil {
			log.Err(err).Str("name", header.Filename).Msg("failed to open multipart file")
			writeError(w, service.ErrMissingFields)
			return
		}

		record, err := h.saveOne(r, file, header)
		file.Close()
		if err != nil {
			log.Err(err).Str("name", header.Filename).Msg("upload failed")
			writeError(w, err)
			return
		}
		records = append(records, record)
	}

	utils.WriteJSON(w, records, http.StatusCreated)
}

func (h *Handler) saveOne(r *http.Request, file multipart.File, header *multipart.FileHeader) (models.MediaFile, error) {
	var uploadedBy *int64
	if user, ok := utils.GetUserFromContext(r.Context()); ok {
		id := user.ID
		uploadedBy = &id
	}

	return h.services.Media.SaveUpload(r.Context(), service.UploadInput{
		OriginalName: header.Filename,
		MimeType:     header.Header.Get("Content-Type"),
		Size:         header.Size,
		Content:      file,
		UploadedBy:   uploadedBy,
	})
}

func (h *Handler) listUploads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	files, err := h.services.Media.ListFiles(ctx)
	if err != nil {
		log.Err(err).Msg("upload listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, files, http.StatusOK)
}

func (h *Handler) deleteUpload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filename := chi.URLParam(r, "filename")
	if err := h.services.Media.DeleteFile(ctx, filename); err != nil {
		log.Err(err).Str("filename", filename).Msg("upload deletion failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, map[string]string{"status": "deleted"}, http.StatusOK)
}
