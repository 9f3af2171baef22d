package handlers

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-listing-portal/internal/imagehost"
	"hostel-listing-portal/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BranchHandler handles branch CRUD requests
type BranchHandler struct {
	store  BranchStore
	images imagehost.Host
}

func NewBranchHandler(store BranchStore, images imagehost.Host) *BranchHandler {
	return &BranchHandler{store: store, images: images}
}

// branchPayload covers both create and update. Pointer and nil-slice fields
// distinguish "absent" from "zero" so updates stay strictly partial.
type branchPayload struct {
	Name               *string               `json:"name"`
	ContactNo          []string              `json:"contact_no"`
	Address            *string               `json:"address"`
	GmapLink           *string               `json:"gmap_link"`
	RoomRate           []models.RoomRate     `json:"room_rate"`
	PrimeLocationPerks []models.LocationPerk `json:"prime_location_perks"`
	Amenities          []string              `json:"amenities"`
	PropertyFeatures   []string              `json:"property_features"`
	RegFee             *int                  `json:"reg_fee"`
	IsMessAvailable    *bool                 `json:"is_mess_available"`
	IsLadiesOnly       *bool                 `json:"is_ladies_only"`
	IsCookingAllowed   *bool                 `json:"is_cooking_allowed"`
	CookingPrice       *int                  `json:"cooking_price"`
	Thumbnail          *string               `json:"thumbnail"`
	DisplayOrder       *int                  `json:"display_order"`
}

// branchPayloadFromForm applies the multipart coercion rules. An optional
// "file" field becomes the thumbnail via the image host.
func (h *BranchHandler) branchPayloadFromForm(c *gin.Context) (*branchPayload, error) {
	p := &branchPayload{}

	if v, ok := formValue(c, "name"); ok {
		p.Name = &v
	}
	if v, ok := formValue(c, "address"); ok {
		p.Address = &v
	}
	if v, ok := formValue(c, "gmap_link"); ok {
		p.GmapLink = &v
	}
	if v, ok := formValue(c, "thumbnail"); ok {
		p.Thumbnail = &v
	}

	if _, err := jsonFormField(c, "contact_no", &p.ContactNo); err != nil {
		return nil, err
	}
	if _, err := jsonFormField(c, "room_rate", &p.RoomRate); err != nil {
		return nil, err
	}
	if _, err := jsonFormField(c, "prime_location_perks", &p.PrimeLocationPerks); err != nil {
		return nil, err
	}
	if _, err := jsonFormField(c, "amenities", &p.Amenities); err != nil {
		return nil, err
	}
	if _, err := jsonFormField(c, "property_features", &p.PropertyFeatures); err != nil {
		return nil, err
	}

	var err error
	if p.RegFee, err = intFormField(c, "reg_fee"); err != nil {
		return nil, err
	}
	if p.CookingPrice, err = intFormField(c, "cooking_price"); err != nil {
		return nil, err
	}
	if p.DisplayOrder, err = intFormField(c, "display_order"); err != nil {
		return nil, err
	}
	if p.IsMessAvailable, err = boolFormField(c, "is_mess_available"); err != nil {
		return nil, err
	}
	if p.IsLadiesOnly, err = boolFormField(c, "is_ladies_only"); err != nil {
		return nil, err
	}
	if p.IsCookingAllowed, err = boolFormField(c, "is_cooking_allowed"); err != nil {
		return nil, err
	}

	return p, nil
}

// uploadThumbnail pushes the optional form file to the image host and returns
// its hosted URL; "" means no file was attached. An unreadable file part is a
// client error, not an absent file. Writes the error response itself.
func (h *BranchHandler) uploadThumbnail(c *gin.Context) (string, bool) {
	file, header, err := c.Request.FormFile("file")
	if errors.Is(err, http.ErrMissingFile) {
		return "", true
	}
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Malformed file upload (field name: file)"})
		return "", false
	}
	defer file.Close()

	if h.images == nil {
		respondHostError(c, imagehost.ErrNotConfigured, "Thumbnail upload failed")
		return "", false
	}

	result, err := h.images.Upload(c.Request.Context(), file, header.Size, imagehost.UploadOptions{
		Folder:      "branch-thumbnails",
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
	})
	if err != nil {
		respondHostError(c, err, "Thumbnail upload failed")
		return "", false
	}
	return result.URL, true
}

// Create adds a new branch from a JSON body or a multipart form
func (h *BranchHandler) Create(c *gin.Context) {
	var p *branchPayload
	if isMultipart(c) {
		var err error
		p, err = h.branchPayloadFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		thumbnail, ok := h.uploadThumbnail(c)
		if !ok {
			return
		}
		if thumbnail != "" {
			p.Thumbnail = &thumbnail
		}
	} else {
		p = &branchPayload{}
		if err := c.ShouldBindJSON(p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	if p.Name == nil || *p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Branch name is required"})
		return
	}

	branch := models.Branch{
		Name:               *p.Name,
		ContactNo:          pq.StringArray(p.ContactNo),
		RoomRate:           datatypes.NewJSONSlice(p.RoomRate),
		PrimeLocationPerks: datatypes.NewJSONSlice(p.PrimeLocationPerks),
		Amenities:          pq.StringArray(p.Amenities),
		PropertyFeatures:   pq.StringArray(p.PropertyFeatures),
	}
	if p.Address != nil {
		branch.Address = *p.Address
	}
	if p.GmapLink != nil {
		branch.GmapLink = *p.GmapLink
	}
	if p.RegFee != nil {
		branch.RegFee = *p.RegFee
	}
	if p.IsMessAvailable != nil {
		branch.IsMessAvailable = *p.IsMessAvailable
	}
	if p.IsLadiesOnly != nil {
		branch.IsLadiesOnly = *p.IsLadiesOnly
	}
	if p.IsCookingAllowed != nil {
		branch.IsCookingAllowed = *p.IsCookingAllowed
	}
	if p.CookingPrice != nil {
		branch.CookingPrice = *p.CookingPrice
	}
	if p.Thumbnail != nil {
		branch.Thumbnail = *p.Thumbnail
	}
	if p.DisplayOrder != nil {
		branch.DisplayOrder = *p.DisplayOrder
	}

	if err := h.store.CreateBranch(&branch); err != nil {
		log.Printf("Error creating branch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to create branch", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": branch, "message": "Branch created successfully"})
}

// List returns all branches sorted by display order
func (h *BranchHandler) List(c *gin.Context) {
	branches, err := h.store.ListBranches()
	if err != nil {
		log.Printf("Error fetching branches: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch branches", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": branches, "count": len(branches)})
}

// Get returns a single branch by ID
func (h *BranchHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
		return
	}

	branch, err := h.store.GetBranch(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Branch not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching branch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch branch", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": branch})
}

// Update applies a partial patch to a branch
func (h *BranchHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
		return
	}

	var p *branchPayload
	if isMultipart(c) {
		p, err = h.branchPayloadFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
			return
		}

		thumbnail, ok := h.uploadThumbnail(c)
		if !ok {
			return
		}
		if thumbnail != "" {
			p.Thumbnail = &thumbnail
		}
	} else {
		p = &branchPayload{}
		if err := c.ShouldBindJSON(p); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
			return
		}
	}

	updates := p.toUpdates()

	branch, err := h.store.UpdateBranch(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Branch not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating branch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update branch", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": branch, "message": "Branch updated successfully"})
}

// Delete removes a branch; gallery rows cascade, enquiry references are nulled
func (h *BranchHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
		return
	}

	branch, err := h.store.DeleteBranch(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Branch not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting branch: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete branch", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": branch, "message": "Branch deleted successfully"})
}

// toUpdates maps only the supplied fields to their columns.
func (p *branchPayload) toUpdates() map[string]interface{} {
	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.ContactNo != nil {
		updates["contact_no"] = pq.StringArray(p.ContactNo)
	}
	if p.Address != nil {
		updates["address"] = *p.Address
	}
	if p.GmapLink != nil {
		updates["gmap_link"] = *p.GmapLink
	}
	if p.RoomRate != nil {
		updates["room_rate"] = datatypes.NewJSONSlice(p.RoomRate)
	}
	if p.PrimeLocationPerks != nil {
		updates["prime_location_perks"] = datatypes.NewJSONSlice(p.PrimeLocationPerks)
	}
	if p.Amenities != nil {
		updates["amenities"] = pq.StringArray(p.Amenities)
	}
	if p.PropertyFeatures != nil {
		updates["property_features"] = pq.StringArray(p.PropertyFeatures)
	}
	if p.RegFee != nil {
		updates["reg_fee"] = *p.RegFee
	}
	if p.IsMessAvailable != nil {
		updates["is_mess_available"] = *p.IsMessAvailable
	}
	if p.IsLadiesOnly != nil {
		updates["is_ladies_only"] = *p.IsLadiesOnly
	}
	if p.IsCookingAllowed != nil {
		updates["is_cooking_allowed"] = *p.IsCookingAllowed
	}
	if p.CookingPrice != nil {
		updates["cooking_price"] = *p.CookingPrice
	}
	if p.Thumbnail != nil {
		updates["thumbnail"] = *p.Thumbnail
	}
	if p.DisplayOrder != nil {
		updates["display_order"] = *p.DisplayOrder
	}
	return updates
}
