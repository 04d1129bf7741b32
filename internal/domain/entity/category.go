// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Category is the fixed set of product categories the pharmacy sells.
type Category string

const (
	CategoryPainkillers Category = "painkillers"
	CategoryVitamins    Category = "vitamins"
	CategorySupplements Category = "supplements"
	CategoryCold        Category = "cold"
	CategoryBaby        Category = "baby"
	CategorySkincare    Category = "skincare"
	CategoryOther       Category = "other"
)

// CategoryAll is the filter value matching every category. It is not a
// category a product can belong to.
const CategoryAll Category = "all"

// Categories lists every assignable category in display order.
func Categories() []Category {
	return []Category{
		CategoryPainkillers,
		CategoryVitamins,
		CategorySupplements,
		CategoryCold,
		CategoryBaby,
		CategorySkincare,
		CategoryOther,
	}
}

// Valid reports whether c is an assignable product category.
func (c Category) Valid() bool {
	switch c {
	case CategoryPainkillers, CategoryVitamins, CategorySupplements,
		CategoryCold, CategoryBaby, CategorySkincare, CategoryOther:
		return true
	}

	return false
}

var categoryNamesAr = map[Category]string{
	CategoryAll:         "جميع المنتجات",
	CategoryPainkillers: "المسكنات",
	CategoryVitamins:    "الفيتامينات",
	CategorySupplements: "المكملات الغذائية",
	CategoryCold:        "أدوية البرد",
	CategoryBaby:        "منتجات الأطفال",
	CategorySkincare:    "العناية بالبشرة",
	CategoryOther:       "أخرى",
}

var categoryNamesEn = map[Category]string{
	CategoryAll:         "All Products",
	CategoryPainkillers: "Painkillers",
	CategoryVitamins:    "Vitamins",
	CategorySupplements: "Supplements",
	CategoryCold:        "Cold Medicines",
	CategoryBaby:        "Baby Products",
	CategorySkincare:    "Skincare",
	CategoryOther:       "Other",
}

// DisplayName returns the category label in the given storefront language.
// Unknown categories fall back to the "other" label.
func (c Category) DisplayName(lang Language) string {
	names := categoryNamesAr
	if lang == LanguageEnglish {
		names = categoryNamesEn
	}

	if name, ok := names[c]; ok {
		return name
	}

	return names[CategoryOther]
}

// Language is the storefront display language.
type Language string

const (
	LanguageArabic  Language = "ar"
	LanguageEnglish Language = "en"
)

// Toggle returns the other storefront language.
func (l Language) Toggle() Language {
	if l == LanguageEnglish {
		return LanguageArabic
	}

	return LanguageEnglish
}
