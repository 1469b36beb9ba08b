package vinted

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

type searchResponse struct {
	Items []Item `json:"items"`
}

// Item is a single broker hit.
type Item struct {
	ID     ItemID  `json:"id"`
	Title  string  `json:"title"`
	Price  Price   `json:"price"`
	Photos []Photo `json:"photos"`
	Status string  `json:"status"`
}

// Photo is one of an item's images.
type Photo struct {
	URL string `json:"url"`
}

// ItemID accepts both numeric and string ids.
type ItemID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ItemID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding item id: %w", err)
		}
		*id = ItemID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decoding item id: %w", err)
		}
		*id = ItemID(n.String())
	}
	return nil
}

// Price is the broker's native price value rendered as text. Strings are
// kept verbatim, numbers keep their JSON literal, and
// {"amount", "currency_code"} objects become "<amount> <currency_code>".
type Price string

type priceObject struct {
	Amount       json.RawMessage `json:"amount"`
	CurrencyCode string          `json:"currency_code"`
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *Price) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*p = ""
		return nil
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("decoding price: %w", err)
		}
		*p = Price(s)
	case '{':
		var obj priceObject
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("decoding price: %w", err)
		}
		var amount Price
		if len(obj.Amount) > 0 {
			if err := amount.UnmarshalJSON(obj.Amount); err != nil {
				return err
			}
		}
		*p = Price(strings.TrimSpace(string(amount) + " " + obj.CurrencyCode))
	default:
		var n json.Number
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("decoding price: %w", err)
		}
		*p = Price(n.String())
	}
	return nil
}
