package entity

import "time"

// Product is a sellable item in the catalog. It is created, updated and
// deleted exclusively through the back-office; the storefront treats it as
// read-only. The identifier is assigned by the remote store.
type Product struct {
	ID            string    // Document identifier assigned by the remote store.
	Name          string    // Primary (Arabic) display name.
	NameEn        string    // Optional secondary English name; empty when absent.
	Price         float64   // Current unit price, non-negative.
	OriginalPrice *float64  // Optional pre-discount price, shown struck through.
	Category      Category  // One of the fixed category set.
	Description   string    // Free-form description.
	Image         string    // Public image URL.
	Available     bool      // Unavailable products are hidden from the storefront.
	Featured      bool      // Promotional flag.
	Bestseller    bool      // Promotional flag.
	Discount      *int      // Optional discount percent.
	Rating        *float64  // Optional rating in [0, 5].
	Reviews       *int      // Optional review count.
	CreatedAt     time.Time // Set by the back-office on create.
	UpdatedAt     time.Time // Set by the back-office on update.
}

// DisplayName returns the product name in the given storefront language,
// falling back to the primary name when no English name exists.
func (p *Product) DisplayName(lang Language) string {
	if lang == LanguageEnglish && p.NameEn != "" {
		return p.NameEn
	}

	return p.Name
}

// RatingOrZero returns the rating, treating a missing rating as 0.
func (p *Product) RatingOrZero() float64 {
	if p.Rating == nil {
		return 0
	}

	return *p.Rating
}
