// Package main implements a mock upstream server for local development.
// It serves canned responses from a JSON catalog in the shapes of the eBay
// Finding API, the Lobstr item broker, the ScrapingBee render proxy and an
// OpenAI-compatible chat endpoint, so closette can run without real
// credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

type catalog struct {
	Items      []catalogItem      `json:"items"`
	Attributes []attributeFixture `json:"attributes"`
}

type catalogItem struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Tags      []string `json:"tags"`
	Price     string   `json:"price"`
	Currency  string   `json:"currency"`
	Image     string   `json:"image"`
	Condition string   `json:"condition"`
}

type attributeFixture struct {
	Color    string `json:"color"`
	Pattern  string `json:"pattern"`
	Material string `json:"material"`
	Occasion string `json:"occasion"`
	Era      string `json:"era"`
	Vibe     string `json:"vibe"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/catalog.json", "path to catalog fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "items", len(fixture.Items), "attributes", len(fixture.Attributes))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock upstream server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, newMux(logger, fixture)),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func newMux(logger *slog.Logger, fixture *catalog) *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /services/search/FindingService/v1", findingHandler(logger, fixture))
	mux.HandleFunc("GET /v1/items/search", lobstrHandler(logger, fixture))
	mux.HandleFunc("GET /api/v1", scrapingBeeHandler(logger))
	mux.HandleFunc("POST /v1/chat/completions", chatHandler(logger, fixture))
	return mux
}

func loadFixture(path string) (*catalog, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var c catalog
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	if len(c.Attributes) == 0 {
		return nil, fmt.Errorf("parsing fixture: no attribute sets")
	}
	return &c, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

// match ranks catalog items by how many query words appear in their title
// or tags. Items with no overlap are dropped.
func (c *catalog) match(query string) []catalogItem {
	words := strings.Fields(strings.ToLower(query))

	type scored struct {
		item  catalogItem
		score int
	}
	var hits []scored
	for _, item := range c.Items {
		haystack := strings.ToLower(item.Title + " " + strings.Join(item.Tags, " "))
		score := 0
		for _, w := range words {
			if strings.Contains(haystack, w) {
				score++
			}
		}
		if score > 0 {
			hits = append(hits, scored{item: item, score: score})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool { return hits[i].score > hits[j].score })

	out := make([]catalogItem, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.item)
	}
	return out
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(v)
}

// findingHandler answers findItemsByKeywords in the Finding API's
// array-wrapped JSON shape.
func findingHandler(logger *slog.Logger, fixture *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("SECURITY-APPNAME") == "" {
			writeJSON(w, http.StatusOK, map[string]any{
				"findItemsByKeywordsResponse": []any{map[string]any{
					"ack": []string{"Failure"},
					"errorMessage": []any{map[string]any{
						"error": []any{map[string]any{
							"errorId": []string{"11002"},
							"message": []string{"Invalid Application: missing app id"},
						}},
					}},
				}},
			})
			logger.Warn("finding request missing app id")
			return
		}

		limit := 100
		if v, err := strconv.Atoi(q.Get("paginationInput.entriesPerPage")); err == nil && v > 0 {
			limit = v
		}

		matched := fixture.match(q.Get("KEYWORDS"))
		if len(matched) > limit {
			matched = matched[:limit]
		}

		items := make([]any, 0, len(matched))
		for _, it := range matched {
			items = append(items, map[string]any{
				"itemId":      []string{strconv.Itoa(it.ID)},
				"title":       []string{it.Title},
				"galleryURL":  []string{it.Image},
				"viewItemURL": []string{fmt.Sprintf("https://www.ebay.co.uk/itm/%d", it.ID)},
				"sellingStatus": []any{map[string]any{
					"currentPrice": []any{map[string]string{"@currencyId": it.Currency, "__value__": it.Price}},
				}},
				"condition": []any{map[string]any{"conditionDisplayName": []string{it.Condition}}},
			})
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"findItemsByKeywordsResponse": []any{map[string]any{
				"ack": []string{"Success"},
				"searchResult": []any{map[string]any{
					"@count": strconv.Itoa(len(items)),
					"item":   items,
				}},
			}},
		})
		logger.Info("finding search", "keywords", q.Get("KEYWORDS"), "returned", len(items))
	}
}

// lobstrHandler answers the broker's item search. Prices use the object
// form so the adapter's "<amount> <currency>" rendering is exercised.
func lobstrHandler(logger *slog.Logger, fixture *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("X-API-Key") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "missing api key"})
			logger.Warn("lobstr request missing api key")
			return
		}

		query := r.URL.Query().Get("search_text")
		matched := fixture.match(query)

		items := make([]any, 0, len(matched))
		for _, it := range matched {
			items = append(items, map[string]any{
				"id":     it.ID,
				"title":  it.Title,
				"price":  map[string]string{"amount": it.Price, "currency_code": it.Currency},
				"photos": []map[string]string{{"url": it.Image}},
				"status": it.Condition,
			})
		}

		writeJSON(w, http.StatusOK, map[string]any{"items": items})
		logger.Info("lobstr search", "query", query, "returned", len(items))
	}
}

// scrapingBeeHandler returns a tiny rendered page for the requested URL.
func scrapingBeeHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("api_key") == "" {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "Invalid api key"})
			logger.Warn("scrapingbee request missing api key")
			return
		}
		target := q.Get("url")
		if target == "" {
			writeJSON(w, http.StatusBadRequest, map[string]string{"message": "url is required"})
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
		fmt.Fprintf(w, "<html><head><title>Depop</title></head><body data-url=%q></body></html>", target)
		logger.Info("rendered page", "url", target, "render_javascript", q.Get("render_javascript"))
	}
}

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Content []struct {
			Type     string `json:"type"`
			ImageURL *struct {
				URL string `json:"url"`
			} `json:"image_url,omitempty"`
		} `json:"content"`
	} `json:"messages"`
}

// chatHandler answers vision prompts with one of the fixture attribute
// sets. The first set whose color appears in the image URL wins.
func chatHandler(logger *slog.Logger, fixture *catalog) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"error": map[string]string{"message": "missing bearer token"},
			})
			return
		}

		var req chatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"error": map[string]string{"message": err.Error()},
			})
			return
		}

		imageURL := ""
		for _, m := range req.Messages {
			for _, c := range m.Content {
				if c.Type == "image_url" && c.ImageURL != nil {
					imageURL = c.ImageURL.URL
				}
			}
		}

		attrs := pickAttributes(fixture.Attributes, imageURL)
		content, err := json.Marshal(attrs)
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"error": map[string]string{"message": err.Error()},
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"model": req.Model,
			"choices": []any{map[string]any{
				"message": map[string]string{"role": "assistant", "content": string(content)},
			}},
			"usage": map[string]int{"prompt_tokens": 120, "completion_tokens": 40, "total_tokens": 160},
		})
		logger.Info("vision analysis", "image", imageURL, "color", attrs.Color)
	}
}

func pickAttributes(sets []attributeFixture, imageURL string) attributeFixture {
	lower := strings.ToLower(imageURL)
	for _, s := range sets {
		if strings.Contains(lower, s.Color) {
			return s
		}
	}
	return sets[0]
}
