package corpus

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"time"

	"github.com/go-shiori/go-readability"
)

// maxArticleSize caps how much HTML is read from an untrusted URL.
const maxArticleSize = 10 * 1024 * 1024

// Some sites block clients without a browser User-Agent.
const browserUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// Article is a fetched web page reduced to its readable text.
type Article struct {
	Title string
	Text  string
}

// Words yields the article's lowercase words.
func (a *Article) Words() iter.Seq[string] {
	return ExtractWords(a.Text)
}

// FetchArticle downloads rawURL and extracts its readable content, so a
// model can be rebuilt straight from a web page.
func FetchArticle(ctx context.Context, rawURL string) (*Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", browserUA)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch %s: status %d", rawURL, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxArticleSize))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if int64(len(body)) >= int64(maxArticleSize) {
		return nil, fmt.Errorf("fetch %s: body exceeds %d bytes", rawURL, maxArticleSize)
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("extract article: %w", err)
	}
	return &Article{Title: article.Title, Text: article.TextContent}, nil
}
