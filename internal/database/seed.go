package database

import (
	"context"

	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"glamourstudio/internal/domain"
	"glamourstudio/internal/repository"
)

var seedServices = []domain.Service{
	{
		Name:        "Bridal Makeup",
		Description: "Your wedding day deserves nothing but perfection. Our expert bridal makeup artists create stunning looks that photograph beautifully and last all day.",
		Price:       "Starting ₹25,000",
		Category:    "bridal",
		Icon:        "Crown",
		Features:    []string{"HD Airbrush Makeup", "Traditional & Contemporary Styles", "Pre-Bridal Packages", "Groom Grooming"},
		IsActive:    true,
	},
	{
		Name:        "Skin Care Treatments",
		Description: "Rejuvenate your skin with our premium treatments. From deep cleansing facials to advanced anti-aging therapies.",
		Price:       "Starting ₹2,500",
		Category:    "skincare",
		Icon:        "Sparkles",
		Features:    []string{"Hydrafacials", "Chemical Peels", "Anti-Aging Treatments", "Acne Treatment"},
		IsActive:    true,
	},
	{
		Name:        "Nail Art & Manicure",
		Description: "Express yourself through beautiful nail designs. From elegant French tips to intricate nail art.",
		Price:       "Starting ₹1,200",
		Category:    "nails",
		Icon:        "Hand",
		Features:    []string{"Gel Extensions", "Nail Art", "Spa Manicure", "Pedicure"},
		IsActive:    true,
	},
	{
		Name:        "Baby Shower Makeup",
		Description: "Celebrate the joy of motherhood looking radiant with our gentle makeup services.",
		Price:       "Starting ₹8,000",
		Category:    "special",
		Icon:        "Baby",
		Features:    []string{"Pregnancy-Safe Products", "Soft Glam Looks", "Hair Styling", "Photography Ready"},
		IsActive:    true,
	},
	{
		Name:        "Party & Event Makeup",
		Description: "Stand out at every celebration with our party makeup services.",
		Price:       "Starting ₹5,000",
		Category:    "party",
		Icon:        "PartyPopper",
		Features:    []string{"Evening Glam", "Festival Looks", "Sangeet Makeup", "Reception Styling"},
		IsActive:    true,
	},
	{
		Name:        "Hair Services",
		Description: "Complete hair care from styling to treatments.",
		Price:       "Starting ₹1,500",
		Category:    "hair",
		Icon:        "Scissors",
		Features:    []string{"Hair Styling", "Treatments", "Color & Highlights", "Bridal Hairstyles"},
		IsActive:    true,
	},
	{
		Name:        "Mehendi",
		Description: "Traditional henna artistry for all occasions.",
		Price:       "Starting ₹3,000",
		Category:    "additional",
		Icon:        "Heart",
		Features:    []string{"Bridal Mehendi", "Arabic Designs", "Indo-Arabic", "Tattoo Mehendi"},
		IsActive:    true,
	},
	{
		Name:        "Pre-Bridal Package",
		Description: "Complete pre-wedding beauty regime for the bride-to-be.",
		Price:       "Starting ₹15,000",
		Category:    "bridal",
		Icon:        "Flower2",
		Features:    []string{"Facial Treatments", "Body Polishing", "Hair Spa", "Skin Consultation"},
		IsActive:    true,
	},
}

var seedTestimonials = []domain.Testimonial{
	{
		Name:     "Priya Sharma",
		Role:     "Bride",
		Content:  "Glamour Studio made my wedding day absolutely magical. The bridal makeup was flawless and lasted throughout the entire ceremony and reception. The team understood exactly what I wanted and exceeded my expectations.",
		Rating:   5,
		IsActive: true,
	},
	{
		Name:     "Anjali Patel",
		Role:     "Regular Client",
		Content:  "I have been coming to Glamour Studio for over 3 years now. Their skin care treatments have transformed my skin completely. The staff is always friendly, professional, and makes every visit a relaxing experience.",
		Rating:   5,
		IsActive: true,
	},
	{
		Name:     "Meera Kapoor",
		Role:     "Baby Shower Client",
		Content:  "The team did an amazing job with my baby shower makeup. I felt so beautiful and confident. They were patient and understanding, making the whole experience stress-free and enjoyable.",
		Rating:   5,
		IsActive: true,
	},
	{
		Name:     "Ritu Agarwal",
		Role:     "Bride",
		Content:  "I cannot thank Glamour Studio enough for making me feel like a princess on my wedding day. The attention to detail was incredible, and they made sure I looked perfect in every photo.",
		Rating:   5,
		IsActive: true,
	},
	{
		Name:     "Sneha Reddy",
		Role:     "Party Client",
		Content:  "Booked their services for a family function and was blown away by the results. The makeup artist listened to all my preferences and created exactly the look I wanted.",
		Rating:   5,
		IsActive: true,
	},
}

var seedGallery = []domain.GalleryItem{
	{Title: "Royal Bridal Look", Category: "Bridal", ImageURL: "/assets/bridal-portrait.jpg", IsActive: true},
	{Title: "Traditional Bride", Category: "Bridal", ImageURL: "/assets/hero-bridal.jpg", IsActive: true},
	{Title: "Radiant Mother-to-be", Category: "Baby Shower", ImageURL: "/assets/baby-shower.jpg", IsActive: true},
	{Title: "Gold Accent Nails", Category: "Nail Art", ImageURL: "/assets/nail-art.jpg", IsActive: true},
	{Title: "Facial Treatment", Category: "Skin Care", ImageURL: "/assets/skincare-treatment.jpg", IsActive: true},
	{Title: "Our Salon", Category: "Skin Care", ImageURL: "/assets/salon-interior.jpg", IsActive: true},
	{Title: "Contemporary Bride", Category: "Bridal", ImageURL: "/assets/bridal-portrait.jpg", IsActive: true},
	{Title: "Bridal Makeup Session", Category: "Bridal", ImageURL: "/assets/hero-bridal.jpg", IsActive: true},
	{Title: "Bridal Nail Design", Category: "Nail Art", ImageURL: "/assets/nail-art.jpg", IsActive: true},
	{Title: "Soft Glam Look", Category: "Baby Shower", ImageURL: "/assets/baby-shower.jpg", IsActive: true},
	{Title: "Spa Day", Category: "Skin Care", ImageURL: "/assets/skincare-treatment.jpg", IsActive: true},
	{Title: "South Indian Bride", Category: "Bridal", ImageURL: "/assets/bridal-portrait.jpg", IsActive: true},
}

// Seed inserts the reference rows for any reference table that is still
// empty. The check is "zero rows", not content matching, so a table with
// any data at all is left alone.
func Seed(db *gorm.DB) error {
	ctx := context.Background()

	serviceRepo := repository.NewServiceRepository(db)
	n, err := serviceRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for i := range seedServices {
			s := seedServices[i]
			if err := serviceRepo.Create(ctx, &s); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(seedServices)).Msg("seeded services")
	}

	testimonialRepo := repository.NewTestimonialRepository(db)
	n, err = testimonialRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for i := range seedTestimonials {
			t := seedTestimonials[i]
			if err := testimonialRepo.Create(ctx, &t); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(seedTestimonials)).Msg("seeded testimonials")
	}

	galleryRepo := repository.NewGalleryRepository(db)
	n, err = galleryRepo.Count(ctx)
	if err != nil {
		return err
	}
	if n == 0 {
		for i := range seedGallery {
			g := seedGallery[i]
			if err := galleryRepo.Create(ctx, &g); err != nil {
				return err
			}
		}
		log.Info().Int("count", len(seedGallery)).Msg("seeded gallery")
	}

	return nil
}
