package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/clipforge/clipforge/internal/ingest/models"
	"github.com/clipforge/clipforge/internal/ingest/service"
)

// maxUploadBytes caps one video upload, matching the client-side limit.
const maxUploadBytes = 70 << 20

// accountHeader carries the external subject id set by the upstream
// authenticating proxy. Auth itself is out of scope here.
const accountHeader = "X-Account-ID"

type IngestService interface {
	Ingest(ctx context.Context, externalAccountID string, req service.IngestRequest) (*models.IngestResult, error)
	ListMedia(ctx context.Context, externalAccountID string) (*service.Library, error)
	GetMedium(ctx context.Context, externalAccountID string, mediumID uuid.UUID) (*models.Medium, error)
	GeneratePost(ctx context.Context, externalAccountID string, mediumID uuid.UUID, platform string) (string, error)
}

type Handler struct {
	svc      IngestService
	validate *validator.Validate
}

func New(svc IngestService) *Handler {
	return &Handler{
		svc:      svc,
		validate: validator.New(),
	}
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Media dispatches /media: POST uploads, GET lists.
func (h *Handler) Media(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.upload(w, r)
	case http.MethodGet:
		h.list(w, r)
	default:
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

// MediaByID dispatches /media/{id} and /media/{id}/post.
func (h *Handler) MediaByID(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/media/")
	if rest == "" || rest == r.URL.Path {
		writeErrorJSON(w, http.StatusBadRequest, "missing id")
		return
	}

	if idStr, ok := strings.CutSuffix(rest, "/post"); ok {
		if r.Method != http.MethodPost {
			writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		h.generatePost(w, r, idStr)
		return
	}

	if r.Method != http.MethodGet {
		writeErrorJSON(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	h.get(w, r, rest)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}
	defer r.Body.Close()

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "failed to read file")
		return
	}

	// The declared original size is advisory; fall back to what was
	// actually received when the form omits it.
	declared := int64(len(data))
	if v := r.FormValue("originalsize"); v != "" {
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil || parsed <= 0 {
			writeErrorJSON(w, http.StatusBadRequest, "invalid originalsize")
			return
		}
		declared = parsed
	}

	req := service.IngestRequest{
		Data:              data,
		Filename:          header.Filename,
		Title:             r.FormValue("title"),
		Description:       r.FormValue("description"),
		DeclaredBytes:     declared,
		CaptionsRequested: parseBool(r.FormValue("captions")),
	}

	result, err := h.svc.Ingest(r.Context(), accountID, req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, IngestResponse{
		Medium:         toMediumResponse(result.Medium),
		CaptionWarning: result.CaptionWarning,
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	library, err := h.svc.ListMedia(r.Context(), accountID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toLibraryResponse(library))
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request, idStr string) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	m, err := h.svc.GetMedium(r.Context(), accountID, id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toMediumResponse(m))
}

func (h *Handler) generatePost(w http.ResponseWriter, r *http.Request, idStr string) {
	accountID, ok := requireAccount(w, r)
	if !ok {
		return
	}
	defer r.Body.Close()

	id, err := uuid.Parse(idStr)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req GeneratePostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		writeErrorJSON(w, http.StatusUnprocessableEntity, "platform must be one of twitter, linkedin, instagram")
		return
	}

	text, err := h.svc.GeneratePost(r.Context(), accountID, id, req.Platform)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, PostResponse{Text: text})
}

func requireAccount(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := r.Header.Get(accountHeader)
	if id == "" {
		writeErrorJSON(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	return id, true
}

func parseBool(v string) bool {
	switch strings.ToLower(v) {
	case "1", "true", "on", "yes":
		return true
	default:
		return false
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidArgument):
		writeErrorJSON(w, http.StatusBadRequest, "invalid argument")
	case errors.Is(err, models.ErrQuotaExceeded):
		writeErrorJSON(w, http.StatusTooManyRequests, "upload quota exceeded")
	case errors.Is(err, models.ErrNotFound):
		writeErrorJSON(w, http.StatusNotFound, "not found")
	case errors.Is(err, models.ErrTranscodeFailed):
		writeErrorJSON(w, http.StatusBadGateway, "video processing failed, please retry")
	case errors.Is(err, models.ErrNoCaptions):
		writeErrorJSON(w, http.StatusUnprocessableEntity, "no captions available for this video")
	case errors.Is(err, models.ErrUnsupportedPlatform):
		writeErrorJSON(w, http.StatusUnprocessableEntity, "unsupported platform")
	case errors.Is(err, models.ErrConflict):
		writeErrorJSON(w, http.StatusConflict, "conflict")
	default:
		writeErrorJSON(w, http.StatusInternalServerError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
