package impl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"
)

func projectionFixture() []*entity.Product {
	return []*entity.Product{
		{ID: "1", Name: "بانادول", NameEn: "Panadol", Price: 28, Category: entity.CategoryPainkillers, Available: true, Rating: ptrF(4.8)},
		{ID: "2", Name: "أدفيل", NameEn: "Advil", Price: 42, Category: entity.CategoryPainkillers, Available: true, Rating: ptrF(4.6)},
		{ID: "3", Name: "فيتامين سي", NameEn: "Vitamin C", Price: 85, Category: entity.CategoryVitamins, Available: true},
		{ID: "4", Name: "فيكس", NameEn: "Vicks", Price: 28, Category: entity.CategoryCold, Available: false, Rating: ptrF(5)},
	}
}

func ids(products []*entity.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}

	return out
}

func TestFilterProducts_HidesUnavailable(t *testing.T) {
	got := filterProducts(projectionFixture(), entity.CategoryAll, "")
	assert.Equal(t, []string{"1", "2", "3"}, ids(got))
}

func TestFilterProducts_ByCategory(t *testing.T) {
	got := filterProducts(projectionFixture(), entity.CategoryPainkillers, "")
	assert.Equal(t, []string{"1", "2"}, ids(got))

	// The unavailable cold product stays hidden even in its own category.
	got = filterProducts(projectionFixture(), entity.CategoryCold, "")
	assert.Empty(t, got)
}

func TestFilterProducts_SearchCaseInsensitiveBothNames(t *testing.T) {
	got := filterProducts(projectionFixture(), entity.CategoryAll, "ADVIL")
	assert.Equal(t, []string{"2"}, ids(got))

	got = filterProducts(projectionFixture(), entity.CategoryAll, "فيتامين")
	assert.Equal(t, []string{"3"}, ids(got))

	got = filterProducts(projectionFixture(), entity.CategoryAll, "  vit  ")
	assert.Equal(t, []string{"3"}, ids(got))
}

func TestFilterProducts_DoesNotMutateInput(t *testing.T) {
	products := projectionFixture()
	_ = filterProducts(products, entity.CategoryPainkillers, "advil")

	require.Len(t, products, 4)
	assert.Equal(t, []string{"1", "2", "3", "4"}, ids(products))
}

func TestSortProducts_PriceLowAndHigh(t *testing.T) {
	products := filterProducts(projectionFixture(), entity.CategoryAll, "")

	sortProducts(products, usecase.SortByPriceLow, entity.LanguageArabic)
	assert.Equal(t, []string{"1", "2", "3"}, ids(products))

	sortProducts(products, usecase.SortByPriceHigh, entity.LanguageArabic)
	assert.Equal(t, []string{"3", "2", "1"}, ids(products))
}

func TestSortProducts_RatingMissingCountsAsZero(t *testing.T) {
	products := filterProducts(projectionFixture(), entity.CategoryAll, "")

	sortProducts(products, usecase.SortByRating, entity.LanguageArabic)
	assert.Equal(t, []string{"1", "2", "3"}, ids(products))
}

func TestSortProducts_StableOnEqualKeys(t *testing.T) {
	products := []*entity.Product{
		{ID: "a", Name: "x", Price: 10, Available: true},
		{ID: "b", Name: "y", Price: 10, Available: true},
		{ID: "c", Name: "z", Price: 10, Available: true},
	}

	sortProducts(products, usecase.SortByPriceLow, entity.LanguageArabic)
	assert.Equal(t, []string{"a", "b", "c"}, ids(products))
}

func TestSortProducts_NameUsesLanguageDisplayName(t *testing.T) {
	products := []*entity.Product{
		{ID: "1", Name: "ب", NameEn: "Beta", Available: true},
		{ID: "2", Name: "أ", NameEn: "Alpha", Available: true},
	}

	sortProducts(products, usecase.SortByName, entity.LanguageArabic)
	assert.Equal(t, []string{"2", "1"}, ids(products))
}
