package ebay

// The Finding API's JSON rendering wraps every scalar in a single-element
// array, so each field below is a slice.

type findingResponse struct {
	FindItemsByKeywordsResponse []findItemsResult `json:"findItemsByKeywordsResponse"`
}

type findItemsResult struct {
	Ack          []string       `json:"ack"`
	ErrorMessage []errorMessage `json:"errorMessage,omitempty"`
	SearchResult []searchResult `json:"searchResult"`
}

type errorMessage struct {
	Error []struct {
		ErrorID []string `json:"errorId"`
		Message []string `json:"message"`
	} `json:"error"`
}

type searchResult struct {
	Count string `json:"@count"`
	Item  []Item `json:"item"`
}

// Item is a single findItemsByKeywords hit.
type Item struct {
	ItemID        []string        `json:"itemId"`
	Title         []string        `json:"title"`
	GalleryURL    []string        `json:"galleryURL"`
	ViewItemURL   []string        `json:"viewItemURL"`
	SellingStatus []SellingStatus `json:"sellingStatus"`
	Condition     []Condition     `json:"condition"`
}

// SellingStatus holds the item's current price.
type SellingStatus struct {
	CurrentPrice []Amount `json:"currentPrice"`
}

// Amount is a Finding API money value.
type Amount struct {
	CurrencyID string `json:"@currencyId"`
	Value      string `json:"__value__"`
}

// Condition holds the seller-facing condition name.
type Condition struct {
	ConditionDisplayName []string `json:"conditionDisplayName"`
}

func first(s []string) string {
	if len(s) == 0 {
		return ""
	}
	return s[0]
}

// firstError returns the first error message in a Failure response.
func (r *findItemsResult) firstError() string {
	for _, em := range r.ErrorMessage {
		for _, e := range em.Error {
			if msg := first(e.Message); msg != "" {
				return msg
			}
		}
	}
	return "unknown error"
}
