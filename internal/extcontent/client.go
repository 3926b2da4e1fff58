// Package extcontent fetches external practice text (a random Wikipedia
// summary or a random quote), normalises it, and caches it both in memory
// and on disk so repeat sessions don't re-hit the network.
package extcontent

import (
	"crypto/md5"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	// Source names accepted by Fetch.
	SourceWikipedia = "wikipedia"
	SourceQuote     = "quote"

	userAgent         = "keytrainer/1.0"
	fetchTimeout      = 4 * time.Second
	wikipediaMinChars = 40
	quoteMinChars     = 20
	wikipediaMaxWords = 200
)

var citationMarker = regexp.MustCompile(`\[\w+\s*\d*\]`)
var whitespaceRun = regexp.MustCompile(`\s+`)

// Client fetches and caches external content.
type Client struct {
	httpClient *http.Client
	cacheDir   string
	memCache   *lru.Cache[string, string]
}

// New constructs a Client whose on-disk cache lives under cacheDir.
func New(cacheDir string) (*Client, error) {
	mem, err := lru.New[string, string](8)
	if err != nil {
		return nil, fmt.Errorf("failed to create content cache: %w", err)
	}
	return &Client{
		httpClient: &http.Client{Timeout: fetchTimeout},
		cacheDir:   cacheDir,
		memCache:   mem,
	}, nil
}

// Fetch returns practice text for source ("wikipedia" or "quote"). All
// failures (timeout, bad JSON, too-short extract) collapse to ok == false;
// callers fall back to the category generator.
func (c *Client) Fetch(source string, useCache bool) (text string, ok bool) {
	switch source {
	case SourceWikipedia:
		return c.fetchWikipedia(useCache)
	case SourceQuote:
		return c.fetchQuote(useCache)
	default:
		return "", false
	}
}

func (c *Client) fetchWikipedia(useCache bool) (string, bool) {
	if useCache {
		if cached, ok := c.cacheGet(SourceWikipedia); ok {
			return cached, true
		}
	}

	var body struct {
		Extract string `json:"extract"`
	}
	if !c.fetchJSON("https://en.wikipedia.org/api/rest_v1/page/random/summary", &body) {
		return "", false
	}
	if len(body.Extract) < wikipediaMinChars {
		return "", false
	}
	text := clean(body.Extract)
	words := strings.Fields(text)
	if len(words) > wikipediaMaxWords {
		words = words[:wikipediaMaxWords]
	}
	text = strings.Join(words, " ")
	if len(text) < wikipediaMinChars {
		return "", false
	}
	c.cacheSet(SourceWikipedia, text)
	return text, true
}

func (c *Client) fetchQuote(useCache bool) (string, bool) {
	if useCache {
		if cached, ok := c.cacheGet(SourceQuote); ok {
			return cached, true
		}
	}

	var items []struct {
		Content string `json:"content"`
		Author  string `json:"author"`
	}
	if !c.fetchJSON("https://api.quotable.io/quotes/random", &items) || len(items) == 0 {
		return "", false
	}
	item := items[0]
	if item.Content == "" {
		return "", false
	}
	text := clean(item.Content + " — " + item.Author)
	if len(text) < quoteMinChars {
		return "", false
	}
	c.cacheSet(SourceQuote, text)
	return text, true
}

// fetchJSON performs a single GET with a total deadline and decodes the
// body into dst. Any failure (network, status, decode) returns false.
func (c *Client) fetchJSON(url string, dst any) bool {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		return false
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	if resp.StatusCode != http.StatusOK {
		return false
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return false
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return false
	}
	return true
}

// clean drops non-ASCII bytes, collapses whitespace, lower-cases, and
// strips bracketed citation markers like "[1]" or "[note 2]".
func clean(text string) string {
	var b strings.Builder
	for _, r := range text {
		if r <= 127 {
			b.WriteRune(r)
		}
	}
	out := whitespaceRun.ReplaceAllString(b.String(), " ")
	out = strings.ToLower(strings.TrimSpace(out))
	out = citationMarker.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

func (c *Client) cacheGet(source string) (string, bool) {
	if v, ok := c.memCache.Get(source); ok {
		return v, true
	}
	path := c.cachePath(source)
	data, err := os.ReadFile(path)
	if err != nil {
		return "", false
	}
	text := string(data)
	c.memCache.Add(source, text)
	return text, true
}

// cacheSet writes to the in-memory cache and, best-effort, to disk. Cache
// I/O failures are ignored on write per the external-fetch contract.
func (c *Client) cacheSet(source, text string) {
	c.memCache.Add(source, text)
	if err := os.MkdirAll(c.cacheDir, 0o755); err != nil {
		return
	}
	_ = os.WriteFile(c.cachePath(source), []byte(text), 0o644)
}

func (c *Client) cachePath(source string) string {
	sum := md5.Sum([]byte(source))
	hash := hex.EncodeToString(sum[:])[:10]
	return filepath.Join(c.cacheDir, fmt.Sprintf("%s_%s.txt", source, hash))
}
