package models

import (
	"time"

	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// RoomRate is one pricing tier offered by a branch.
type RoomRate struct {
	Title        string `json:"title"`
	RatePerMonth int    `json:"rate_per_month"`
}

// LocationPerk is a nearby point of interest (college, bus stop, ...).
type LocationPerk struct {
	Title       string `json:"title"`
	Distance    string `json:"distance"`
	TimeToReach string `json:"time_to_reach"`
}

type Branch struct {
	ID   int    `gorm:"primaryKey" json:"id"`
	Name string `gorm:"type:text;not null" json:"name"`

	// Contact and location
	ContactNo pq.StringArray `gorm:"type:text[]" json:"contact_no"`
	Address   string         `gorm:"type:text" json:"address"`
	GmapLink  string         `gorm:"type:text" json:"gmap_link"`

	// Pricing and features
	RoomRate           datatypes.JSONSlice[RoomRate]     `gorm:"type:jsonb" json:"room_rate"`
	PrimeLocationPerks datatypes.JSONSlice[LocationPerk] `gorm:"type:jsonb" json:"prime_location_perks"`
	Amenities          pq.StringArray                    `gorm:"type:text[]" json:"amenities"`
	PropertyFeatures   pq.StringArray                    `gorm:"type:text[]" json:"property_features"`
	RegFee             int                               `gorm:"type:int" json:"reg_fee"`
	IsMessAvailable    bool                              `gorm:"not null;default:false" json:"is_mess_available"`
	IsLadiesOnly       bool                              `gorm:"not null;default:false" json:"is_ladies_only"`
	IsCookingAllowed   bool                              `gorm:"not null;default:false" json:"is_cooking_allowed"`
	CookingPrice       int                               `gorm:"type:int" json:"cooking_price"`

	// Presentation
	Thumbnail    string `gorm:"type:text" json:"thumbnail"`
	DisplayOrder int    `gorm:"not null;default:0" json:"display_order"`

	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`

	// Associations drive the FK constraints created by AutoMigrate.
	Galleries []GalleryImage `gorm:"foreignKey:BranchID;constraint:OnDelete:CASCADE" json:"-"`
	Enquiries []UserEnquiry  `gorm:"foreignKey:BranchID;constraint:OnDelete:SET NULL" json:"-"`
}

func (Branch) TableName() string {
	return "branch"
}
