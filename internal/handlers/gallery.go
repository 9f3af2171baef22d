package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"hostel-listing-portal/internal/imagehost"
	"hostel-listing-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// GalleryHandler handles gallery CRUD and the binary upload flow
type GalleryHandler struct {
	store    GalleryStore
	branches BranchStore
	images   imagehost.Host
}

func NewGalleryHandler(store GalleryStore, branches BranchStore, images imagehost.Host) *GalleryHandler {
	return &GalleryHandler{store: store, branches: branches, images: images}
}

type galleryPayload struct {
	BranchID     *int     `json:"branch_id"`
	ImageURL     *string  `json:"image_url"`
	Title        *string  `json:"title"`
	Description  *string  `json:"description"`
	Tags         []string `json:"tags"`
	DisplayOrder *int     `json:"display_order"`
}

// toUpdates maps supplied fields to columns. Branch-scoped updates pass
// allowBranch=false so ownership cannot be reassigned through that path.
func (p *galleryPayload) toUpdates(allowBranch bool) map[string]interface{} {
	updates := map[string]interface{}{}
	if allowBranch && p.BranchID != nil {
		updates["branch_id"] = *p.BranchID
	}
	if p.ImageURL != nil {
		updates["image_url"] = *p.ImageURL
	}
	if p.Title != nil {
		updates["title"] = *p.Title
	}
	if p.Description != nil {
		updates["description"] = *p.Description
	}
	if p.Tags != nil {
		updates["tags"] = pq.StringArray(p.Tags)
	}
	if p.DisplayOrder != nil {
		updates["display_order"] = *p.DisplayOrder
	}
	return updates
}

// Create stores a row for an already-hosted image; no upload happens here
func (h *GalleryHandler) Create(c *gin.Context) {
	var p galleryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}

	if p.BranchID == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "branch_id is required"})
		return
	}
	if p.ImageURL == nil || *p.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image_url is required"})
		return
	}

	image := h.rowFromPayload(&p)
	if err := h.store.CreateGalleryImage(image); err != nil {
		log.Printf("Error creating gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": image, "message": "Gallery image created successfully"})
}

// Upload accepts a binary file plus branch_id or branch_name, pushes the file
// to the image host and stores the returned URL. Any host failure aborts
// before a row is written.
func (h *GalleryHandler) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "No file uploaded (field name: file)"})
		return
	}
	defer file.Close()

	// Resolve the owning branch before any bytes leave the server, so a bad
	// reference cannot strand an orphaned binary on the host.
	branchID, ok := h.resolveBranch(c)
	if !ok {
		return
	}

	tags := splitTags(c.PostFormArray("tags"))
	displayOrder, err := intFormField(c, "display_order")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	if h.images == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Image hosting credentials are missing on server"})
		return
	}

	result, err := h.images.Upload(c.Request.Context(), file, header.Size, imagehost.UploadOptions{
		Folder:      "gallery",
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		respondHostError(c, err, "Image upload failed")
		return
	}

	image := &models.GalleryImage{
		BranchID:    branchID,
		ImageURL:    result.URL,
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Tags:        pq.StringArray(tags),
	}
	if displayOrder != nil {
		image.DisplayOrder = *displayOrder
	}

	if err := h.store.CreateGalleryImage(image); err != nil {
		log.Printf("Error saving uploaded image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to save uploaded image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": image, "message": "Image uploaded and saved to gallery"})
}

// resolveBranch finds the owning branch from form fields: branch_id first,
// then exact-name lookup on branch_name (first match wins). Writes the error
// response itself when neither resolves.
func (h *GalleryHandler) resolveBranch(c *gin.Context) (int, bool) {
	if raw, ok := formValue(c, "branch_id"); ok {
		if id, err := strconv.Atoi(raw); err == nil {
			if _, err := h.branches.GetBranch(id); err == nil {
				return id, true
			}
		}
	}
	if name, ok := formValue(c, "branch_name"); ok && name != "" {
		if branch, err := h.branches.GetBranchByName(name); err == nil {
			return branch.ID, true
		}
	}
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "branch_id or branch_name is required and must exist"})
	return 0, false
}

// List returns all gallery images, optionally filtered by branch
func (h *GalleryHandler) List(c *gin.Context) {
	var branchID *int
	if raw := c.Query("branch_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
			return
		}
		branchID = &id
	}

	images, err := h.store.ListGalleryImages(branchID)
	if err != nil {
		log.Printf("Error fetching gallery images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch gallery images", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": images, "count": len(images)})
}

// Get returns a single gallery image by ID
func (h *GalleryHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid gallery ID"})
		return
	}

	image, err := h.store.GetGalleryImage(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Gallery image not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": image})
}

// Update patches a gallery image by ID
func (h *GalleryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid gallery ID"})
		return
	}

	var p galleryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}

	image, err := h.store.UpdateGalleryImage(id, p.toUpdates(true))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Gallery image not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": image, "message": "Gallery image updated successfully"})
}

// Delete removes a gallery row by ID. The hosted binary is untouched; use
// DeleteFromHost to remove it.
func (h *GalleryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid gallery ID"})
		return
	}

	image, err := h.store.DeleteGalleryImage(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Gallery image not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": image, "message": "Gallery image deleted successfully"})
}

// ListForBranch returns a branch's images in display order
func (h *GalleryHandler) ListForBranch(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("branchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
		return
	}

	images, err := h.store.ListBranchGallery(branchID)
	if err != nil {
		log.Printf("Error fetching branch gallery images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch branch gallery images", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": images, "count": len(images)})
}

// CreateForBranch adds an already-hosted image to the branch in the path
func (h *GalleryHandler) CreateForBranch(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("branchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
		return
	}

	var p galleryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}
	if p.ImageURL == nil || *p.ImageURL == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image_url is required"})
		return
	}

	p.BranchID = &branchID
	image := h.rowFromPayload(&p)
	if err := h.store.CreateGalleryImage(image); err != nil {
		log.Printf("Error adding gallery image to branch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to add gallery image to branch", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": image, "message": "Gallery image added to branch successfully"})
}

// UpdateForBranch patches an image addressed by (branch, image). A caller
// supplied branch_id is discarded.
func (h *GalleryHandler) UpdateForBranch(c *gin.Context) {
	branchID, err1 := strconv.Atoi(c.Param("branchId"))
	imageID, err2 := strconv.Atoi(c.Param("imageId"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID or image ID"})
		return
	}

	var p galleryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}

	image, err := h.store.UpdateBranchGalleryImage(branchID, imageID, p.toUpdates(false))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Gallery image not found for this branch"})
		return
	}
	if err != nil {
		log.Printf("Error updating branch gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update branch gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": image, "message": "Branch gallery image updated successfully"})
}

// DeleteForBranch removes an image only when both IDs match
func (h *GalleryHandler) DeleteForBranch(c *gin.Context) {
	branchID, err1 := strconv.Atoi(c.Param("branchId"))
	imageID, err2 := strconv.Atoi(c.Param("imageId"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID or image ID"})
		return
	}

	image, err := h.store.DeleteBranchGalleryImage(branchID, imageID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Gallery image not found for this branch"})
		return
	}
	if err != nil {
		log.Printf("Error deleting branch gallery image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete branch gallery image", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": image, "message": "Gallery image removed from branch successfully"})
}

// DeleteAllForBranch removes every image row for a branch. Zero matches is
// still a success, with count 0.
func (h *GalleryHandler) DeleteAllForBranch(c *gin.Context) {
	branchID, err := strconv.Atoi(c.Param("branchId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
		return
	}

	count, err := h.store.DeleteBranchGallery(branchID)
	if err != nil {
		log.Printf("Error deleting all branch gallery images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete all branch gallery images", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   count,
		"message": fmt.Sprintf("All gallery images (%d) removed from branch successfully", count),
	})
}

// DeleteFromHost asks the image host to remove a binary. This never touches
// gallery rows; callers wanting full cleanup must delete the row separately.
func (h *GalleryHandler) DeleteFromHost(c *gin.Context) {
	var req struct {
		ImageURL     string `json:"image_url"`
		DeleteHandle string `json:"delete_handle"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}

	ref := req.DeleteHandle
	if ref == "" {
		ref = req.ImageURL
	}
	if ref == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "image_url or delete_handle is required"})
		return
	}

	if h.images == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Image hosting credentials are missing on server"})
		return
	}

	if err := h.images.Delete(c.Request.Context(), ref); err != nil {
		respondHostError(c, err, "Failed to delete image from host")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Image deleted from host"})
}

func (h *GalleryHandler) rowFromPayload(p *galleryPayload) *models.GalleryImage {
	image := &models.GalleryImage{
		BranchID: *p.BranchID,
		Tags:     pq.StringArray(p.Tags),
	}
	if p.ImageURL != nil {
		image.ImageURL = *p.ImageURL
	}
	if p.Title != nil {
		image.Title = *p.Title
	}
	if p.Description != nil {
		image.Description = *p.Description
	}
	if p.DisplayOrder != nil {
		image.DisplayOrder = *p.DisplayOrder
	}
	return image
}

// respondHostError translates adapter failures: missing credentials are a
// server configuration error, provider rejections keep the provider's status,
// anything unusable from upstream is a bad gateway.
func respondHostError(c *gin.Context, err error, msg string) {
	if errors.Is(err, imagehost.ErrNotConfigured) {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Image hosting credentials are missing on server"})
		return
	}
	var hostErr *imagehost.HostError
	if errors.As(err, &hostErr) {
		status := hostErr.Status
		if status < http.StatusBadRequest {
			status = http.StatusBadGateway
		}
		c.JSON(status, gin.H{"success": false, "error": msg, "details": hostErr.Detail})
		return
	}
	c.JSON(http.StatusBadGateway, gin.H{"success": false, "error": msg, "details": err.Error()})
}
