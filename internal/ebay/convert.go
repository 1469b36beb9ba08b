package ebay

import (
	domain "github.com/donaldgifford/closette/pkg/types"
)

const unknownCondition = "Unknown"

// ToResultItems converts Finding API items into result items, dropping
// hits without a title or listing URL and keeping at most limit.
func ToResultItems(items []Item, currency string, limit int) []domain.ResultItem {
	results := make([]domain.ResultItem, 0, min(len(items), limit))
	for i := range items {
		if len(results) == limit {
			break
		}
		r, ok := toResultItem(&items[i], currency)
		if !ok {
			continue
		}
		results = append(results, r)
	}
	return results
}

func toResultItem(item *Item, currency string) (domain.ResultItem, bool) {
	title := first(item.Title)
	url := first(item.ViewItemURL)
	if title == "" || url == "" {
		return domain.ResultItem{}, false
	}

	r := domain.ResultItem{
		Title:      title,
		ImageURL:   first(item.GalleryURL),
		ListingURL: url,
		Platform:   domain.PlatformEbay,
		Condition:  unknownCondition,
	}

	// Price
	if len(item.SellingStatus) > 0 && len(item.SellingStatus[0].CurrentPrice) > 0 {
		if v := item.SellingStatus[0].CurrentPrice[0].Value; v != "" {
			r.Price = v + " " + currency
		}
	}

	// Condition
	if len(item.Condition) > 0 {
		if name := first(item.Condition[0].ConditionDisplayName); name != "" {
			r.Condition = name
		}
	}

	return r, true
}
