package media

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/FACorreiaa/travelmind/internal/app/models"
)

const userAgent = "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// vqdPattern matches the search token embedded in the results page scripts.
var vqdPattern = regexp.MustCompile(`vqd=["']?([\d-]+)["']?`)

// ImageFinder returns the URL of a representative image for a query.
type ImageFinder interface {
	FindImage(ctx context.Context, query string) (string, error)
}

// DuckDuckGoImages looks images up through DuckDuckGo's image endpoint,
// which needs a per-query vqd token scraped from the HTML results page.
type DuckDuckGoImages struct {
	baseURL    string
	httpClient *http.Client
}

func NewDuckDuckGoImages(baseURL string) *DuckDuckGoImages {
	return &DuckDuckGoImages{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

type imageResults struct {
	Results []struct {
		Image     string `json:"image"`
		Thumbnail string `json:"thumbnail"`
		Title     string `json:"title"`
	} `json:"results"`
}

func (d *DuckDuckGoImages) FindImage(ctx context.Context, query string) (string, error) {
	vqd, err := d.token(ctx, query)
	if err != nil {
		return "", err
	}

	params := url.Values{
		"l":   {"us-en"},
		"o":   {"json"},
		"q":   {query},
		"vqd": {vqd},
		"f":   {",,,,,"},
		"p":   {"1"},
	}
	resp, err := d.get(ctx, "/i.js?"+params.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var results imageResults
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return "", fmt.Errorf("decode image results: %w", err)
	}
	for _, r := range results.Results {
		if r.Image != "" {
			return r.Image, nil
		}
	}
	return "", models.ErrImageNotFound
}

func (d *DuckDuckGoImages) token(ctx context.Context, query string) (string, error) {
	resp, err := d.get(ctx, "/?"+url.Values{"q": {query}, "iax": {"images"}, "ia": {"images"}}.Encode())
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return "", fmt.Errorf("parse search page: %w", err)
	}

	if v, ok := doc.Find("input[name='vqd']").Attr("value"); ok && v != "" {
		return v, nil
	}

	var vqd string
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if m := vqdPattern.FindStringSubmatch(s.Text()); m != nil {
			vqd = m[1]
			return false
		}
		return true
	})
	if vqd == "" {
		return "", fmt.Errorf("search token not found: %w", models.ErrImageNotFound)
	}
	return vqd, nil
}

func (d *DuckDuckGoImages) get(ctx context.Context, path string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.baseURL+path, nil)
	if err != nil {
		return nil, fmt.Errorf("create image request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Referer", d.baseURL+"/")

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("image search request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("image search returned status %d", resp.StatusCode)
	}
	return resp, nil
}
