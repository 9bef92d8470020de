// Package catalog is the product and service data source. Today it serves
// fixed in-memory data; the fetch functions are the seam where a real
// backing service would go.
package catalog

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/Kirtan82004/VisionCare/models"
)

// ErrNotFound is returned when a requested product or service does not exist.
var ErrNotFound = errors.New("not found")

var products = []models.Product{
	{
		ID:            "1",
		Name:          "Classic Aviator",
		Brand:         "RayBan",
		Price:         decimal.NewFromInt(199),
		OriginalPrice: decimal.NewFromInt(249),
		Image:         "/images/classic-aviator.jpg",
		Category:      models.CategorySunglasses,
		FrameShape:    "aviator",
		Color:         "gold",
		Rating:        4.8,
		Reviews:       124,
		Description:   "Timeless aviator sunglasses with premium UV protection",
		Specifications: map[string]string{
			"Frame Material": "Metal",
			"Lens Material":  "Glass",
			"UV Protection":  "100%",
			"Frame Width":    "140mm",
		},
		IsBestseller: true,
	},
	{
		ID:            "2",
		Name:          "Modern Rectangle",
		Brand:         "Oakley",
		Price:         decimal.NewFromInt(159),
		OriginalPrice: decimal.NewFromInt(199),
		Image:         "/images/modern-rectangle.jpg",
		Category:      models.CategoryGlasses,
		FrameShape:    "rectangle",
		Color:         "black",
		Rating:        4.9,
		Reviews:       89,
		Description:   "Contemporary rectangle frames for everyday wear",
		Specifications: map[string]string{
			"Frame Material": "Acetate",
			"Lens Material":  "Polycarbonate",
			"Frame Width":    "135mm",
			"Temple Length":  "145mm",
		},
		IsNew: true,
	},
	{
		ID:            "3",
		Name:          "Round Tortoise",
		Brand:         "Warby",
		Price:         decimal.NewFromInt(129),
		OriginalPrice: decimal.NewFromInt(149),
		Image:         "/images/round-tortoise.jpg",
		Category:      models.CategoryGlasses,
		FrameShape:    "round",
		Color:         "tortoise",
		Rating:        4.6,
		Reviews:       57,
		Description:   "Vintage-inspired round frames in a warm tortoise finish",
		Specifications: map[string]string{
			"Frame Material": "Acetate",
			"Lens Material":  "CR-39",
			"Frame Width":    "132mm",
		},
	},
	{
		ID:            "4",
		Name:          "Sport Wrap",
		Brand:         "Oakley",
		Price:         decimal.NewFromInt(219),
		OriginalPrice: decimal.NewFromInt(259),
		Image:         "/images/sport-wrap.jpg",
		Category:      models.CategorySunglasses,
		FrameShape:    "wrap",
		Color:         "blue",
		Rating:        4.7,
		Reviews:       142,
		Description:   "Wraparound sport sunglasses with impact-resistant lenses",
		Specifications: map[string]string{
			"Frame Material": "O Matter",
			"Lens Material":  "Plutonite",
			"UV Protection":  "100%",
		},
		IsBestseller: true,
	},
	{
		ID:            "5",
		Name:          "Cat Eye Chic",
		Brand:         "Prada",
		Price:         decimal.NewFromInt(289),
		OriginalPrice: decimal.NewFromInt(329),
		Image:         "/images/cat-eye-chic.jpg",
		Category:      models.CategoryGlasses,
		FrameShape:    "cat-eye",
		Color:         "burgundy",
		Rating:        4.5,
		Reviews:       38,
		Description:   "Statement cat-eye frames with a polished finish",
		Specifications: map[string]string{
			"Frame Material": "Acetate",
			"Frame Width":    "138mm",
			"Temple Length":  "140mm",
		},
		IsNew: true,
	},
	{
		ID:            "6",
		Name:          "Daily Comfort 30-Pack",
		Brand:         "Acuvue",
		Price:         decimal.NewFromInt(35),
		OriginalPrice: decimal.NewFromInt(42),
		Image:         "/images/daily-comfort.jpg",
		Category:      models.CategoryLenses,
		FrameShape:    "n/a",
		Color:         "clear",
		Rating:        4.9,
		Reviews:       301,
		Description:   "Daily disposable contact lenses with UV blocking",
		Specifications: map[string]string{
			"Wear Schedule": "Daily",
			"Pack Size":     "30 lenses",
			"Material":      "Etafilcon A",
		},
		IsBestseller: true,
	},
	{
		ID:            "7",
		Name:          "Polarized Navigator",
		Brand:         "RayBan",
		Price:         decimal.NewFromInt(239),
		OriginalPrice: decimal.NewFromInt(279),
		Image:         "/images/polarized-navigator.jpg",
		Category:      models.CategorySunglasses,
		FrameShape:    "navigator",
		Color:         "gunmetal",
		Rating:        4.4,
		Reviews:       76,
		Description:   "Polarized navigator sunglasses that cut glare on the road",
		Specifications: map[string]string{
			"Frame Material": "Metal",
			"Lens Material":  "Polarized Glass",
			"UV Protection":  "100%",
		},
	},
	{
		ID:            "8",
		Name:          "Featherlight Titanium",
		Brand:         "Lindberg",
		Price:         decimal.NewFromInt(349),
		OriginalPrice: decimal.NewFromInt(399),
		Image:         "/images/featherlight-titanium.jpg",
		Category:      models.CategoryGlasses,
		FrameShape:    "oval",
		Color:         "silver",
		Rating:        4.8,
		Reviews:       64,
		Description:   "Ultra-light rimless titanium frames you forget you are wearing",
		Specifications: map[string]string{
			"Frame Material": "Titanium",
			"Weight":         "4.5g",
			"Frame Width":    "134mm",
		},
		IsNew: true,
	},
}

var services = []models.Service{
	{
		ID:          "eye-exam",
		Name:        "Comprehensive Eye Exam",
		Duration:    "60 minutes",
		Price:       decimal.NewFromInt(89),
		Description: "Complete eye health assessment including vision testing and retinal imaging",
	},
	{
		ID:          "contact-fitting",
		Name:        "Contact Lens Fitting",
		Duration:    "45 minutes",
		Price:       decimal.NewFromInt(75),
		Description: "Professional contact lens fitting and training session",
	},
	{
		ID:          "frame-consultation",
		Name:        "Frame Style Consultation",
		Duration:    "30 minutes",
		Price:       decimal.Zero,
		Description: "Personalized frame selection based on your face shape and style",
	},
	{
		ID:          "prescription-update",
		Name:        "Prescription Update",
		Duration:    "30 minutes",
		Price:       decimal.NewFromInt(45),
		Description: "Quick prescription check and update for existing patients",
	},
}

var timeSlots = []string{
	"9:00 AM", "9:30 AM", "10:00 AM", "10:30 AM", "11:00 AM", "11:30 AM",
	"1:00 PM", "1:30 PM", "2:00 PM", "2:30 PM", "3:00 PM", "3:30 PM",
	"4:00 PM", "4:30 PM", "5:00 PM", "5:30 PM", "6:00 PM", "6:30 PM",
}

// FetchProducts returns the full product listing in catalog order.
func FetchProducts() []models.Product {
	return append([]models.Product{}, products...)
}

// FetchProduct looks a product up by id.
func FetchProduct(id string) (models.Product, error) {
	for _, p := range products {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, ErrNotFound
}

// FetchServices returns the bookable services.
func FetchServices() []models.Service {
	return append([]models.Service{}, services...)
}

// FetchService looks a service up by id.
func FetchService(id string) (models.Service, error) {
	for _, s := range services {
		if s.ID == id {
			return s, nil
		}
	}
	return models.Service{}, ErrNotFound
}

// FetchTimeSlots returns the appointment slot labels for a day.
func FetchTimeSlots() []string {
	return append([]string{}, timeSlots...)
}

// ValidTimeSlot reports whether a slot label is one this store offers.
func ValidTimeSlot(slot string) bool {
	for _, s := range timeSlots {
		if s == slot {
			return true
		}
	}
	return false
}
