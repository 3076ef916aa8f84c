package media

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/bulatminnakhmetov/cloudmedia/internal/service/media"
)

// VideoHandler serves the /api/Video route group. Every body is JSON and
// provider failures are returned as the full normalized payload.
type VideoHandler struct {
	gateway       MediaGateway
	maxUploadSize int64
}

// NewVideoHandler creates a new instance of VideoHandler
func NewVideoHandler(gateway MediaGateway, maxUploadSize int64) *VideoHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &VideoHandler{
		gateway:       gateway,
		maxUploadSize: maxUploadSize,
	}
}

// Routes mounts the video endpoints on r.
func (h *VideoHandler) Routes(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Post("/upload/{folderName}", h.UploadToFolder)
	r.Get("/folder/{folderName}", h.ListFolder)
	r.Delete("/{publicId}", h.Delete)
	r.Put("/{publicId}", h.Update)
	r.Get("/{publicId}", h.Get)
}

func (h *VideoHandler) message(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(r.Context(), w, status, MessageResponse{Message: msg})
}

func (h *VideoHandler) fileError(w http.ResponseWriter, r *http.Request, err error, msg string) {
	if errors.Is(err, errFileTooLarge) {
		h.message(w, r, http.StatusRequestEntityTooLarge, "File too large.")
		return
	}
	h.message(w, r, http.StatusBadRequest, msg)
}

func (h *VideoHandler) failure(w http.ResponseWriter, r *http.Request, err error) {
	status, f := failureStatus(err)
	writeJSON(r.Context(), w, status, VideoResult{
		StatusCode: status,
		Error:      &ErrorBody{Message: f.Message},
	})
}

// @Summary      Upload video
// @Description  Uploads a video into the "default_videos" folder
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Video to upload"
// @Success      200   {object}  VideoResult
// @Failure      400   {object}  MessageResponse
// @Failure      500   {object}  VideoResult
// @Router       /api/Video/upload [post]
func (h *VideoHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, cleanup, err := readFile(w, r, h.maxUploadSize, "file")
	defer cleanup()
	if err != nil {
		h.fileError(w, r, err, "Please provide a video file.")
		return
	}

	asset, err := h.gateway.Upload(r.Context(), media.UploadRequest{
		File:      file,
		Placement: media.PlacementDefault,
	})
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toVideoResult(asset))
}

// @Summary      Upload video to folder
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        folderName  path      string  true  "Target folder"
// @Param        file        formData  file    true  "Video to upload"
// @Success      200         {object}  VideoResult
// @Failure      400         {object}  MessageResponse
// @Failure      500         {object}  VideoResult
// @Router       /api/Video/upload/{folderName} [post]
func (h *VideoHandler) UploadToFolder(w http.ResponseWriter, r *http.Request) {
	file, cleanup, err := readFile(w, r, h.maxUploadSize, "file")
	defer cleanup()
	if err != nil {
		h.fileError(w, r, err, "Please provide a video file.")
		return
	}

	folder := pathParam(r, "folderName")
	if folder == "" {
		h.message(w, r, http.StatusBadRequest, "Folder name must not be empty.")
		return
	}

	asset, err := h.gateway.Upload(r.Context(), media.UploadRequest{
		File:      file,
		Placement: media.PlacementFolder,
		Folder:    folder,
	})
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toVideoResult(asset))
}

// @Summary      Delete video
// @Tags         videos
// @Produce      json
// @Param        publicId  path      string  true  "Public ID (URL-encoded)"
// @Success      200       {object}  DeletionResult
// @Failure      400       {object}  DeletionResult
// @Failure      404       {object}  DeletionResult
// @Failure      500       {object}  DeletionResult
// @Router       /api/Video/{publicId} [delete]
func (h *VideoHandler) Delete(w http.ResponseWriter, r *http.Request) {
	publicID := pathParam(r, "publicId")
	if publicID == "" {
		h.message(w, r, http.StatusBadRequest, "PublicId must not be empty.")
		return
	}

	if err := h.gateway.Delete(r.Context(), publicID); err != nil {
		status, f := failureStatus(err)
		result := "error"
		if status == http.StatusNotFound {
			result = "not found"
		}
		writeJSON(r.Context(), w, status, DeletionResult{
			StatusCode: status,
			Result:     result,
			Error:      &ErrorBody{Message: f.Message},
		})
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, DeletionResult{StatusCode: http.StatusOK, Result: "ok"})
}

// @Summary      Update video
// @Description  Replaces the content of an existing video (overwrite). Accepts the "file" or "newFile" form field.
// @Tags         videos
// @Accept       multipart/form-data
// @Produce      json
// @Param        publicId  path      string  true  "Public ID (URL-encoded)"
// @Param        file      formData  file    true  "New video content"
// @Success      200       {object}  VideoResult
// @Failure      400       {object}  MessageResponse
// @Failure      404       {object}  VideoResult
// @Router       /api/Video/{publicId} [put]
func (h *VideoHandler) Update(w http.ResponseWriter, r *http.Request) {
	publicID := pathParam(r, "publicId")
	if publicID == "" {
		h.message(w, r, http.StatusBadRequest, "PublicId must not be empty.")
		return
	}

	file, cleanup, err := readFile(w, r, h.maxUploadSize, "file", "newFile")
	defer cleanup()
	if err != nil {
		h.fileError(w, r, err, "Please provide a new video file.")
		return
	}

	asset, err := h.gateway.Update(r.Context(), publicID, file)
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toVideoResult(asset))
}

// @Summary      Get video
// @Tags         videos
// @Produce      json
// @Param        publicId  path      string  true  "Public ID (URL-encoded)"
// @Success      200       {object}  VideoResult
// @Failure      400       {object}  MessageResponse
// @Failure      404       {object}  VideoResult
// @Router       /api/Video/{publicId} [get]
func (h *VideoHandler) Get(w http.ResponseWriter, r *http.Request) {
	publicID := pathParam(r, "publicId")
	if publicID == "" {
		h.message(w, r, http.StatusBadRequest, "PublicId must not be empty.")
		return
	}

	asset, err := h.gateway.Get(r.Context(), publicID)
	if err != nil {
		h.failure(w, r, err)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toVideoResult(asset))
}

// @Summary      List videos in a folder
// @Description  Lists up to 500 videos whose identifier starts with the folder name. Empty folders return 200.
// @Tags         videos
// @Produce      json
// @Param        folderName  path      string  true  "Folder or prefix"
// @Success      200         {object}  VideoListResult
// @Failure      400         {object}  MessageResponse
// @Failure      500         {object}  VideoListResult
// @Router       /api/Video/folder/{folderName} [get]
func (h *VideoHandler) ListFolder(w http.ResponseWriter, r *http.Request) {
	folder := pathParam(r, "folderName")
	if folder == "" {
		h.message(w, r, http.StatusBadRequest, "Folder name must not be empty.")
		return
	}

	assets, err := h.gateway.List(r.Context(), folder)
	if err != nil {
		status, f := failureStatus(err)
		writeJSON(r.Context(), w, status, VideoListResult{
			StatusCode: status,
			Resources:  []AssetListItem{},
			Error:      &ErrorBody{Message: f.Message},
		})
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, VideoListResult{
		StatusCode: http.StatusOK,
		Resources:  toListItems(assets),
	})
}
