package database

import (
	"time"

	"hostel-listing-portal/internal/models"
)

// CreateBranch inserts a new branch and fills in its generated ID.
func (d *DB) CreateBranch(b *models.Branch) error {
	return d.db.Create(b).Error
}

// ListBranches returns all branches sorted by display_order, ties broken by ID.
func (d *DB) ListBranches() ([]models.Branch, error) {
	var branches []models.Branch
	err := d.db.Order("display_order ASC, id ASC").Find(&branches).Error
	return branches, err
}

func (d *DB) GetBranch(id int) (*models.Branch, error) {
	var b models.Branch
	if err := d.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// GetBranchByName resolves a branch by exact name, first match wins.
func (d *DB) GetBranchByName(name string) (*models.Branch, error) {
	var b models.Branch
	if err := d.db.Where("name = ?", name).Order("id ASC").First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// UpdateBranch applies a partial patch: only keys present in fields change.
// updated_at is always refreshed, even for an empty patch.
func (d *DB) UpdateBranch(id int, fields map[string]interface{}) (*models.Branch, error) {
	var b models.Branch
	if err := d.db.First(&b, id).Error; err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()
	if err := d.db.Model(&b).Updates(fields).Error; err != nil {
		return nil, err
	}

	// Reload so array/jsonb columns reflect what was persisted
	if err := d.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

// DeleteBranch removes a branch and returns the deleted record. Gallery rows
// cascade and enquiry references are nulled by the database constraints.
func (d *DB) DeleteBranch(id int) (*models.Branch, error) {
	var b models.Branch
	if err := d.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	if err := d.db.Delete(&models.Branch{}, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}
