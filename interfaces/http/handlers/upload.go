package handlers

import (
	"encoding/json"
	"io"
	"net/http"

	"go.uber.org/zap"

	"medialib-backend/application/services"
)

// UploadHandler accepts multipart file uploads and feeds them into the
// upload service. The response shape mirrors what the GraphQL UploadResult
// type exposes so clients can share handling code.
type UploadHandler struct {
	uploadSvc   *services.UploadService
	maxFileSize int64
	logger      *zap.Logger
}

func NewUploadHandler(uploadSvc *services.UploadService, maxFileSize int64, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		uploadSvc:   uploadSvc,
		maxFileSize: maxFileSize,
		logger:      logger,
	}
}

type uploadResponse struct {
	Success bool   `json:"success"`
	Result  string `json:"result"`
	AssetID string `json:"assetId,omitempty"`
}

// ServeHTTP handles POST /upload. One file per request under the "file"
// form field.
func (h *UploadHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		h.logger.Warn("upload rejected", zap.Error(err))
		writeJSON(w, http.StatusRequestEntityTooLarge, uploadResponse{
			Success: false,
			Result:  services.UploadResultError,
		})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, uploadResponse{
			Success: false,
			Result:  services.UploadResultError,
		})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("failed to read upload body", zap.Error(err))
		writeJSON(w, http.StatusInternalServerError, uploadResponse{
			Success: false,
			Result:  services.UploadResultError,
		})
		return
	}

	result, err := h.uploadSvc.Upload(r.Context(), header.Filename, content)
	if err != nil {
		h.logger.Error("upload failed",
			zap.String("filename", header.Filename),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, uploadResponse{
			Success: false,
			Result:  services.UploadResultError,
		})
		return
	}

	resp := uploadResponse{
		Success: result.Success,
		Result:  result.Result,
	}
	if result.Asset != nil {
		resp.AssetID = result.Asset.Identity().AssetID()
	}
	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
