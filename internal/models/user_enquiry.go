package models

import "time"

// EnquirySourceDefault is stored when a submission carries no source tag.
const EnquirySourceDefault = "website"

// UserEnquiry is a contact-form submission. BranchID is nullable: a general
// enquiry is not tied to any branch, and branch deletion nulls the reference.
type UserEnquiry struct {
	ID        int       `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	Email     string    `gorm:"type:text;not null" json:"email"`
	Phone     string    `gorm:"type:text;not null" json:"phone"`
	Message   string    `gorm:"type:text" json:"message"`
	BranchID  *int      `gorm:"index" json:"branch_id"`
	Source    string    `gorm:"type:text" json:"source"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

func (UserEnquiry) TableName() string {
	return "user_enquiries"
}
