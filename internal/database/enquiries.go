package database

import (
	"hostel-listing-portal/internal/models"
)

func (d *DB) CreateEnquiry(e *models.UserEnquiry) error {
	return d.db.Create(e).Error
}

// ListEnquiries returns enquiries, optionally narrowed by branch and/or
// exact source tag.
func (d *DB) ListEnquiries(branchID *int, source string) ([]models.UserEnquiry, error) {
	var enquiries []models.UserEnquiry
	q := d.db
	if branchID != nil {
		q = q.Where("branch_id = ?", *branchID)
	}
	if source != "" {
		q = q.Where("source = ?", source)
	}
	err := q.Find(&enquiries).Error
	return enquiries, err
}

func (d *DB) GetEnquiry(id int) (*models.UserEnquiry, error) {
	var e models.UserEnquiry
	if err := d.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *DB) UpdateEnquiry(id int, fields map[string]interface{}) (*models.UserEnquiry, error) {
	var e models.UserEnquiry
	if err := d.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		if err := d.db.Model(&e).Updates(fields).Error; err != nil {
			return nil, err
		}
	}
	if err := d.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}

func (d *DB) DeleteEnquiry(id int) (*models.UserEnquiry, error) {
	var e models.UserEnquiry
	if err := d.db.First(&e, id).Error; err != nil {
		return nil, err
	}
	if err := d.db.Delete(&models.UserEnquiry{}, id).Error; err != nil {
		return nil, err
	}
	return &e, nil
}
