package handlers

import (
	"hostel-listing-portal/internal/models"
)

// Store interfaces are satisfied by *database.DB; handler tests swap in fakes.

type BranchStore interface {
	CreateBranch(b *models.Branch) error
	ListBranches() ([]models.Branch, error)
	GetBranch(id int) (*models.Branch, error)
	GetBranchByName(name string) (*models.Branch, error)
	UpdateBranch(id int, fields map[string]interface{}) (*models.Branch, error)
	DeleteBranch(id int) (*models.Branch, error)
}

type GalleryStore interface {
	CreateGalleryImage(g *models.GalleryImage) error
	ListGalleryImages(branchID *int) ([]models.GalleryImage, error)
	ListBranchGallery(branchID int) ([]models.GalleryImage, error)
	GetGalleryImage(id int) (*models.GalleryImage, error)
	UpdateGalleryImage(id int, fields map[string]interface{}) (*models.GalleryImage, error)
	UpdateBranchGalleryImage(branchID, imageID int, fields map[string]interface{}) (*models.GalleryImage, error)
	DeleteGalleryImage(id int) (*models.GalleryImage, error)
	DeleteBranchGalleryImage(branchID, imageID int) (*models.GalleryImage, error)
	DeleteBranchGallery(branchID int) (int64, error)
}

type EnquiryStore interface {
	CreateEnquiry(e *models.UserEnquiry) error
	ListEnquiries(branchID *int, source string) ([]models.UserEnquiry, error)
	GetEnquiry(id int) (*models.UserEnquiry, error)
	UpdateEnquiry(id int, fields map[string]interface{}) (*models.UserEnquiry, error)
	DeleteEnquiry(id int) (*models.UserEnquiry, error)
}
