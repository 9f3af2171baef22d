package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"hostel-listing-portal/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// EnquiryHandler handles user enquiry CRUD requests
type EnquiryHandler struct {
	store EnquiryStore
}

func NewEnquiryHandler(store EnquiryStore) *EnquiryHandler {
	return &EnquiryHandler{store: store}
}

type enquiryPayload struct {
	Name     *string    `json:"name"`
	Email    *string    `json:"email"`
	Phone    *string    `json:"phone"`
	Message  *string    `json:"message"`
	BranchID nullableID `json:"branch_id"`
	Source   *string    `json:"source"`
}

// nullableID tells an explicit JSON null apart from an absent field, so an
// update can detach an enquiry from its branch.
type nullableID struct {
	Present bool
	Value   *int
}

func (n *nullableID) UnmarshalJSON(b []byte) error {
	n.Present = true
	if string(b) == "null" {
		n.Value = nil
		return nil
	}
	return json.Unmarshal(b, &n.Value)
}

// Create records a contact-form submission
func (h *EnquiryHandler) Create(c *gin.Context) {
	var p enquiryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}

	if p.Name == nil || *p.Name == "" || p.Email == nil || *p.Email == "" || p.Phone == nil || *p.Phone == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "name, email and phone are required"})
		return
	}

	enquiry := models.UserEnquiry{
		Name:     *p.Name,
		Email:    *p.Email,
		Phone:    *p.Phone,
		BranchID: p.BranchID.Value,
		Source:   models.EnquirySourceDefault,
	}
	if p.Message != nil {
		enquiry.Message = *p.Message
	}
	if p.Source != nil && *p.Source != "" {
		enquiry.Source = *p.Source
	}

	if err := h.store.CreateEnquiry(&enquiry); err != nil {
		log.Printf("Error creating enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to submit enquiry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": enquiry, "message": "Enquiry submitted successfully"})
}

// List returns enquiries, filterable by branch_id and/or source tag
func (h *EnquiryHandler) List(c *gin.Context) {
	var branchID *int
	if raw := c.Query("branch_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid branch ID"})
			return
		}
		branchID = &id
	}
	source := c.Query("source")

	enquiries, err := h.store.ListEnquiries(branchID, source)
	if err != nil {
		log.Printf("Error fetching enquiries: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch enquiries", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": enquiries, "count": len(enquiries)})
}

// Get returns a single enquiry by ID
func (h *EnquiryHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid enquiry ID"})
		return
	}

	enquiry, err := h.store.GetEnquiry(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Enquiry not found"})
		return
	}
	if err != nil {
		log.Printf("Error fetching enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to fetch enquiry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": enquiry})
}

// Update applies a partial patch to an enquiry
func (h *EnquiryHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid enquiry ID"})
		return
	}

	var p enquiryPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid request body", "details": err.Error()})
		return
	}

	updates := map[string]interface{}{}
	if p.Name != nil {
		updates["name"] = *p.Name
	}
	if p.Email != nil {
		updates["email"] = *p.Email
	}
	if p.Phone != nil {
		updates["phone"] = *p.Phone
	}
	if p.Message != nil {
		updates["message"] = *p.Message
	}
	if p.BranchID.Present {
		// A nil value writes SQL NULL, detaching the enquiry.
		updates["branch_id"] = p.BranchID.Value
	}
	if p.Source != nil {
		updates["source"] = *p.Source
	}

	enquiry, err := h.store.UpdateEnquiry(id, updates)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Enquiry not found"})
		return
	}
	if err != nil {
		log.Printf("Error updating enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update enquiry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": enquiry, "message": "Enquiry updated successfully"})
}

// Delete removes an enquiry by ID
func (h *EnquiryHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Invalid enquiry ID"})
		return
	}

	enquiry, err := h.store.DeleteEnquiry(id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Enquiry not found"})
		return
	}
	if err != nil {
		log.Printf("Error deleting enquiry: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to delete enquiry", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": enquiry, "message": "Enquiry deleted successfully"})
}
