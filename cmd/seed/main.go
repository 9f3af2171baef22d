package main

import (
	"log"
	"os"

	"hostel-listing-portal/internal/config"
	"hostel-listing-portal/internal/database"
	"hostel-listing-portal/internal/models"

	"github.com/joho/godotenv"
	"github.com/lib/pq"
	"gorm.io/datatypes"
)

// Seeds a development database with a couple of branches, their gallery rows
// and sample enquiries.
func main() {
	_ = godotenv.Load()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewDB(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.InitSchema(); err != nil {
		log.Fatalf("Failed to initialize schema: %v", err)
	}

	log.Println("Seeding database...")

	branches := []models.Branch{
		{
			Name:      "Nyxta Downtown Branch",
			ContactNo: pq.StringArray{"+91-9876543210", "+91-9876543211"},
			Address:   "123 MG Road, Bangalore, Karnataka 560001",
			GmapLink:  "https://maps.google.com/?q=12.9716,77.5946",
			RoomRate: datatypes.NewJSONSlice([]models.RoomRate{
				{Title: "Single Occupancy", RatePerMonth: 8000},
				{Title: "Double Occupancy", RatePerMonth: 6000},
				{Title: "Triple Occupancy", RatePerMonth: 5000},
			}),
			PrimeLocationPerks: datatypes.NewJSONSlice([]models.LocationPerk{
				{Title: "Metro Station", Distance: "500m", TimeToReach: "5 mins"},
				{Title: "Shopping Mall", Distance: "1km", TimeToReach: "10 mins"},
				{Title: "Tech Park", Distance: "2km", TimeToReach: "15 mins"},
			}),
			Amenities:        pq.StringArray{"WiFi", "AC Rooms", "Laundry", "Gym", "Power Backup", "CCTV"},
			PropertyFeatures: pq.StringArray{"Attached Bathroom", "Study Table", "Wardrobe", "Security Guard", "Parking"},
			RegFee:           2000,
			IsMessAvailable:  true,
			DisplayOrder:     1,
		},
		{
			Name:      "Nyxta Tech Park Branch",
			ContactNo: pq.StringArray{"+91-9876543220"},
			Address:   "456 Whitefield Road, Bangalore, Karnataka 560066",
			GmapLink:  "https://maps.google.com/?q=12.9698,77.7499",
			RoomRate: datatypes.NewJSONSlice([]models.RoomRate{
				{Title: "Single Occupancy", RatePerMonth: 9000},
				{Title: "Double Occupancy", RatePerMonth: 7000},
			}),
			PrimeLocationPerks: datatypes.NewJSONSlice([]models.LocationPerk{
				{Title: "IT Companies", Distance: "800m", TimeToReach: "8 mins"},
				{Title: "Food Court", Distance: "300m", TimeToReach: "3 mins"},
			}),
			Amenities:        pq.StringArray{"WiFi", "AC Rooms", "Laundry", "Power Backup", "Common Room"},
			PropertyFeatures: pq.StringArray{"Attached Bathroom", "Study Table", "Wardrobe", "Security Guard"},
			RegFee:           2500,
			IsMessAvailable:  false,
			IsLadiesOnly:     true,
			DisplayOrder:     2,
		},
	}

	for i := range branches {
		if err := db.CreateBranch(&branches[i]); err != nil {
			log.Fatalf("Failed to insert branch %q: %v", branches[i].Name, err)
		}
	}
	log.Printf("Inserted %d branches", len(branches))

	images := []models.GalleryImage{
		{
			BranchID:     branches[0].ID,
			ImageURL:     "https://images.example.com/nyxta/downtown-front.jpg",
			Title:        "Building front",
			Tags:         pq.StringArray{"exterior", "building"},
			DisplayOrder: 1,
		},
		{
			BranchID:     branches[0].ID,
			ImageURL:     "https://images.example.com/nyxta/downtown-room.jpg",
			Title:        "Single room",
			Description:  "Single occupancy room with study table",
			Tags:         pq.StringArray{"room", "interior"},
			DisplayOrder: 2,
		},
		{
			BranchID:     branches[1].ID,
			ImageURL:     "https://images.example.com/nyxta/techpark-common.jpg",
			Title:        "Common room",
			Tags:         pq.StringArray{"interior"},
			DisplayOrder: 1,
		},
	}
	for i := range images {
		if err := db.CreateGalleryImage(&images[i]); err != nil {
			log.Fatalf("Failed to insert gallery image: %v", err)
		}
	}
	log.Printf("Inserted %d gallery images", len(images))

	enquiries := []models.UserEnquiry{
		{
			Name:     "Rahul Sharma",
			Email:    "rahul@example.com",
			Phone:    "+91-9000000001",
			Message:  "Looking for a single room near the metro.",
			BranchID: &branches[0].ID,
			Source:   "website",
		},
		{
			Name:   "Priya Nair",
			Email:  "priya@example.com",
			Phone:  "+91-9000000002",
			Source: "cta",
		},
	}
	for i := range enquiries {
		if err := db.CreateEnquiry(&enquiries[i]); err != nil {
			log.Fatalf("Failed to insert enquiry: %v", err)
		}
	}
	log.Printf("Inserted %d enquiries", len(enquiries))

	log.Println("Seeding complete")
}
