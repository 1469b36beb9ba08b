package vinted

import (
	domain "github.com/donaldgifford/closette/pkg/types"
)

// ToResultItems converts broker items into result items, dropping items
// without a title or id and keeping at most limit.
func ToResultItems(items []Item, itemURL string, limit int) []domain.ResultItem {
	results := make([]domain.ResultItem, 0, min(len(items), limit))
	for i := range items {
		if len(results) == limit {
			break
		}
		item := &items[i]
		if item.Title == "" || item.ID == "" {
			continue
		}

		r := domain.ResultItem{
			Title:      item.Title,
			Price:      string(item.Price),
			ListingURL: itemURL + string(item.ID),
			Platform:   domain.PlatformVinted,
			Condition:  item.Status,
		}
		if len(item.Photos) > 0 {
			r.ImageURL = item.Photos[0].URL
		}
		results = append(results, r)
	}
	return results
}
