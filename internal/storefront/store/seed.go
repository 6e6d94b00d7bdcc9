package store

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/luxecuffs/storefront/internal/storefront/domain"
)

// Seed loads the default admin account and the sample catalog into an empty
// store. Intended for local development and first boot; a production
// deployment would import its catalog instead.
func Seed(s Store) error {
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed: hash admin password: %w", err)
	}
	if _, err := s.CreateUser(domain.User{
		Username:     "admin",
		PasswordHash: string(hash),
		Email:        "admin@luxecuffs.com",
		IsAdmin:      true,
	}); err != nil {
		return fmt.Errorf("seed: create admin user: %w", err)
	}

	samples := []domain.Product{
		{
			Name:        "Classic Gold Heritage",
			Description: "Timeless 18k gold cufflinks with intricate vintage engravings",
			Price:       decimal.RequireFromString("299.00"),
			ImageURL:    "https://images.unsplash.com/photo-1588444650700-7be9fd5c8db2?w=400",
			Material:    "Gold",
			Stock:       10,
			Featured:    true,
		},
		{
			Name:        "Modern Silver Edge",
			Description: "Contemporary sterling silver with geometric patterns",
			Price:       decimal.RequireFromString("199.00"),
			ImageURL:    "https://images.unsplash.com/photo-1590736969955-71cc94901144?w=400",
			Material:    "Silver",
			Stock:       15,
			Featured:    true,
		},
		{
			Name:        "Diamond Prestige",
			Description: "Exquisite white gold with genuine diamonds",
			Price:       decimal.RequireFromString("899.00"),
			ImageURL:    "https://images.unsplash.com/photo-1515562141207-7a88fb7ce338?w=400",
			Material:    "Platinum",
			Stock:       5,
			Featured:    true,
		},
		{
			Name:        "Vintage Brass Collection",
			Description: "Antique-inspired brass with ornate detailing",
			Price:       decimal.RequireFromString("149.00"),
			ImageURL:    "https://images.unsplash.com/photo-1611652022419-a9419f74343d?w=400",
			Material:    "Brass",
			Stock:       20,
		},
		{
			Name:        "Titanium Minimalist",
			Description: "Ultra-lightweight titanium with brushed finish",
			Price:       decimal.RequireFromString("249.00"),
			ImageURL:    "https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=400",
			Material:    "Titanium",
			Stock:       12,
		},
		{
			Name:        "Pearl Elegance",
			Description: "Mother-of-pearl with gold accent details",
			Price:       decimal.RequireFromString("399.00"),
			ImageURL:    "https://images.unsplash.com/photo-1539874754764-5a96559165b0?w=400",
			Material:    "Gold",
			Stock:       8,
		},
	}

	for _, p := range samples {
		if _, err := s.CreateProduct(p); err != nil {
			return fmt.Errorf("seed: create product %q: %w", p.Name, err)
		}
	}
	return nil
}
