package database

import (
	"hostel-listing-portal/internal/models"
)

func (d *DB) CreateGalleryImage(g *models.GalleryImage) error {
	return d.db.Create(g).Error
}

// ListGalleryImages returns all gallery rows, optionally filtered by branch.
func (d *DB) ListGalleryImages(branchID *int) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	q := d.db
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	err := q.Find(&images).Error
	return images, err
}

// ListBranchGallery returns a branch's images in display order.
func (d *DB) ListBranchGallery(branchID int) ([]models.GalleryImage, error) {
	var images []models.GalleryImage
	err := d.db.Where("branch_id = ?", branchID).
		Order("display_order ASC, id ASC").
		Find(&images).Error
	return images, err
}

func (d *DB) GetGalleryImage(id int) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := d.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (d *DB) UpdateGalleryImage(id int, fields map[string]interface{}) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := d.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := d.db.Model(&g).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	if err := d.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// UpdateBranchGalleryImage patches an image addressed by the compound
// (branch, image) key. Rows owned by another branch are not found.
func (d *DB) UpdateBranchGalleryImage(branchID, imageID int, fields map[string]interface{}) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := d.db.Where("id = ? AND branch_id = ?", imageID, branchID).First(&g).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := d.db.Model(&g).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	if err := d.db.First(&g, imageID).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (d *DB) DeleteGalleryImage(id int) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := d.db.First(&g, id).Error; err != nil {
		return nil, err
	}
	if err := d.db.Delete(&models.GalleryImage{}, id).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

func (d *DB) DeleteBranchGalleryImage(branchID, imageID int) (*models.GalleryImage, error) {
	var g models.GalleryImage
	if err := d.db.Where("id = ? AND branch_id = ?", imageID, branchID).First(&g).Error; err != nil {
		return nil, err
	}
	if err := d.db.Where("id = ? AND branch_id = ?", imageID, branchID).
		Delete(&models.GalleryImage{}).Error; err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteBranchGallery removes every image for a branch and returns how many
// rows went away. Zero matches is not an error.
func (d *DB) DeleteBranchGallery(branchID int) (int64, error) {
	res := d.db.Where("branch_id = ?", branchID).Delete(&models.GalleryImage{})
	return res.RowsAffected, res.Error
}
