package media

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/bulatminnakhmetov/cloudmedia/internal/service/media"
)

// CloudInfoFolder is the folder served by the fixed gallery endpoint.
const CloudInfoFolder = "cloudInfo"

// ImageHandler serves the /api/CloudinaryApi route group. Errors are plain text.
type ImageHandler struct {
	gateway       MediaGateway
	maxUploadSize int64
}

// NewImageHandler creates a new instance of ImageHandler
func NewImageHandler(gateway MediaGateway, maxUploadSize int64) *ImageHandler {
	if maxUploadSize <= 0 {
		maxUploadSize = DefaultMaxUploadSize
	}
	return &ImageHandler{
		gateway:       gateway,
		maxUploadSize: maxUploadSize,
	}
}

// Routes mounts the image endpoints on r.
func (h *ImageHandler) Routes(r chi.Router) {
	r.Post("/upload", h.Upload)
	r.Get("/get/{publicId}", h.Get)
	r.Post("/test", h.Test)
	r.Put("/update/{publicId}", h.Update)
	r.Delete("/delete/{publicId}", h.Delete)
	r.Get("/folder/"+CloudInfoFolder, h.ListCloudInfo)
	r.Get("/folder/{folderName}", h.ListFolder)
	r.Post("/upload_to_folder", h.UploadToFolder)
}

func (h *ImageHandler) fileError(w http.ResponseWriter, err error) {
	if errors.Is(err, errFileTooLarge) {
		writeText(w, http.StatusRequestEntityTooLarge, "File too large")
		return
	}
	writeText(w, http.StatusBadRequest, "No file uploaded")
}

// @Summary      Upload image
// @Description  Uploads an image under a generated "uploads/{token}" identifier
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "Image to upload"
// @Success      200   {object}  ImageResponse
// @Failure      400   {string}  string  "No file uploaded"
// @Failure      413   {string}  string  "File too large"
// @Failure      500   {string}  string  "Provider error"
// @Router       /api/CloudinaryApi/upload [post]
func (h *ImageHandler) Upload(w http.ResponseWriter, r *http.Request) {
	file, cleanup, err := readFile(w, r, h.maxUploadSize, "file")
	defer cleanup()
	if err != nil {
		h.fileError(w, err)
		return
	}

	asset, err := h.gateway.Upload(r.Context(), media.UploadRequest{
		File:      file,
		Placement: media.PlacementDefault,
	})
	if err != nil {
		status, f := failureStatus(err)
		writeText(w, status, "Upload failed: "+f.Message)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toImageResponse(asset))
}

// @Summary      Get image
// @Description  Returns an uploaded image by its public identifier
// @Tags         images
// @Produce      json
// @Param        publicId  path      string  true  "Public ID (URL-encoded)"
// @Success      200       {object}  ImageResponse
// @Failure      400       {string}  string  "PublicId is required"
// @Failure      404       {string}  string  "Image not found"
// @Router       /api/CloudinaryApi/get/{publicId} [get]
func (h *ImageHandler) Get(w http.ResponseWriter, r *http.Request) {
	publicID := pathParam(r, "publicId")
	if publicID == "" {
		writeText(w, http.StatusBadRequest, "PublicId is required")
		return
	}

	asset, err := h.gateway.Get(r.Context(), publicID)
	if err != nil {
		status, f := failureStatus(err)
		if status == http.StatusNotFound {
			writeText(w, status, "Image not found")
			return
		}
		writeText(w, status, "Failed to get image: "+f.Message)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toImageResponse(asset))
}

// @Summary      Health probe
// @Tags         images
// @Produce      plain
// @Success      200  {string}  string  "API is working"
// @Router       /api/CloudinaryApi/test [post]
func (h *ImageHandler) Test(w http.ResponseWriter, r *http.Request) {
	writeText(w, http.StatusOK, "API is working")
}

// @Summary      Update image
// @Description  Replaces the content of an existing image (overwrite)
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        publicId  path      string  true  "Public ID (URL-encoded)"
// @Param        file      formData  file    true  "New image content"
// @Success      200       {object}  ImageResponse
// @Failure      400       {string}  string  "Update failed"
// @Router       /api/CloudinaryApi/update/{publicId} [put]
func (h *ImageHandler) Update(w http.ResponseWriter, r *http.Request) {
	publicID := pathParam(r, "publicId")
	if publicID == "" {
		writeText(w, http.StatusBadRequest, "PublicId is required")
		return
	}

	file, cleanup, err := readFile(w, r, h.maxUploadSize, "file")
	defer cleanup()
	if err != nil {
		h.fileError(w, err)
		return
	}

	asset, err := h.gateway.Update(r.Context(), publicID, file)
	if err != nil {
		status, f := failureStatus(err)
		writeText(w, status, "Update failed: "+f.Message)
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toImageResponse(asset))
}

// @Summary      Delete image
// @Tags         images
// @Produce      plain
// @Param        publicId  path      string  true  "Public ID (URL-encoded)"
// @Success      200       {string}  string  "Image deleted successfully"
// @Failure      400       {string}  string  "Delete failed"
// @Failure      404       {string}  string  "Image not found"
// @Router       /api/CloudinaryApi/delete/{publicId} [delete]
func (h *ImageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	publicID := pathParam(r, "publicId")
	if publicID == "" {
		writeText(w, http.StatusBadRequest, "PublicId is required")
		return
	}

	if err := h.gateway.Delete(r.Context(), publicID); err != nil {
		status, f := failureStatus(err)
		if status == http.StatusNotFound {
			writeText(w, status, "Image not found")
			return
		}
		writeText(w, status, "Delete failed: "+f.Message)
		return
	}

	writeText(w, http.StatusOK, "Image deleted successfully")
}

// @Summary      List the cloudInfo gallery
// @Description  Lists images in the "cloudInfo" folder. Unlike the generic listing, an empty folder is a 404.
// @Tags         images
// @Produce      json
// @Success      200  {array}   AssetListItem
// @Failure      404  {string}  string  "No images found"
// @Failure      500  {string}  string  "Provider error"
// @Router       /api/CloudinaryApi/folder/cloudInfo [get]
func (h *ImageHandler) ListCloudInfo(w http.ResponseWriter, r *http.Request) {
	assets, err := h.gateway.List(r.Context(), CloudInfoFolder)
	if err != nil {
		_, f := failureStatus(err)
		writeText(w, http.StatusInternalServerError,
			fmt.Sprintf("Failed to retrieve images from folder '%s'. Error: %s", CloudInfoFolder, f.Message))
		return
	}

	if len(assets) == 0 {
		writeText(w, http.StatusNotFound, fmt.Sprintf("No images found in folder '%s'.", CloudInfoFolder))
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toListItems(assets))
}

// @Summary      List images in a folder
// @Description  Lists up to 500 images whose identifier starts with the folder name
// @Tags         images
// @Produce      json
// @Param        folderName  path      string  true  "Folder or prefix"
// @Success      200         {array}   AssetListItem
// @Failure      400         {string}  string  "Folder name is required"
// @Router       /api/CloudinaryApi/folder/{folderName} [get]
func (h *ImageHandler) ListFolder(w http.ResponseWriter, r *http.Request) {
	folder := pathParam(r, "folderName")
	if folder == "" {
		writeText(w, http.StatusBadRequest, "Folder name is required")
		return
	}

	assets, err := h.gateway.List(r.Context(), folder)
	if err != nil {
		status, f := failureStatus(err)
		writeText(w, status, fmt.Sprintf("Failed to retrieve images from folder '%s'. Error: %s", folder, f.Message))
		return
	}

	writeJSON(r.Context(), w, http.StatusOK, toListItems(assets))
}

// @Summary      Upload image to folder
// @Description  Uploads an image into a folder; a blank folder falls back to "default_folder"
// @Tags         images
// @Accept       multipart/form-data
// @Produce      json
// @Param        file    formData  file    true   "Image to upload"
// @Param        folder  formData  string  false  "Target folder"
// @Success      200     {object}  FolderImageResponse
// @Failure      400     {string}  string  "No file uploaded"
// @Router       /api/CloudinaryApi/upload_to_folder [post]
func (h *ImageHandler) UploadToFolder(w http.ResponseWriter, r *http.Request) {
	file, cleanup, err := readFile(w, r, h.maxUploadSize, "file")
	defer cleanup()
	if err != nil {
		h.fileError(w, err)
		return
	}

	folder := strings.TrimSpace(r.FormValue("folder"))
	asset, err := h.gateway.Upload(r.Context(), media.UploadRequest{
		File:      file,
		Placement: media.PlacementFolder,
		Folder:    folder,
	})
	if err != nil {
		status, f := failureStatus(err)
		writeText(w, status, fmt.Sprintf("Upload to folder '%s' failed: %s", folder, f.Message))
		return
	}

	resolved := asset.Folder
	if resolved == "" {
		resolved = folder
	}

	writeJSON(r.Context(), w, http.StatusOK, FolderImageResponse{
		PublicID:  asset.PublicID,
		SecureURL: asset.SecureURL,
		Format:    asset.Format,
		Folder:    resolved,
	})
}
