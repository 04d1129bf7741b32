package impl

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pharmacy/internal/domain/entity"
	"pharmacy/internal/usecase"
)

// arabicCollator orders product names the way an Arabic-locale shopper
// expects. Collators are not safe for concurrent use; collatorMu serializes
// name sorts across requests.
var (
	arabicCollator = collate.New(language.Arabic)
	collatorMu     sync.Mutex
)

// filterProducts narrows the catalog to available products matching the
// category and the case-insensitive name search. The input is not modified.
func filterProducts(products []*entity.Product, category entity.Category, search string) []*entity.Product {
	needle := strings.ToLower(strings.TrimSpace(search))

	out := make([]*entity.Product, 0, len(products))
	for _, p := range products {
		if !p.Available {
			continue
		}
		if category != "" && category != entity.CategoryAll && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.NameEn), needle) {
			continue
		}
		out = append(out, p)
	}

	return out
}

// sortProducts orders the slice in place by the given key. The sort is
// stable so equal keys keep their incoming order. Missing ratings count
// as zero.
func sortProducts(products []*entity.Product, key usecase.SortKey, lang entity.Language) {
	switch key {
	case usecase.SortByPriceLow:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price < products[j].Price
		})
	case usecase.SortByPriceHigh:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price > products[j].Price
		})
	case usecase.SortByRating:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].RatingOrZero() > products[j].RatingOrZero()
		})
	default:
		collatorMu.Lock()
		defer collatorMu.Unlock()
		sort.SliceStable(products, func(i, j int) bool {
			return arabicCollator.CompareString(
				products[i].DisplayName(lang),
				products[j].DisplayName(lang),
			) < 0
		})
	}
}
