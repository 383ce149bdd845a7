package images

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// maxImageSize caps how much of a remote image is read
const maxImageSize = 10 * 1024 * 1024

// Placeholder is served whenever an episode image cannot be fetched
var Placeholder = []byte(`<svg xmlns="http://www.w3.org/2000/svg" width="600" height="338" viewBox="0 0 600 338">` +
	`<rect width="600" height="338" fill="#e5e7eb"/>` +
	`<text x="300" y="175" font-family="sans-serif" font-size="24" fill="#6b7280" text-anchor="middle">Image not available</text>` +
	`</svg>`)

// PlaceholderContentType is the content type of Placeholder
const PlaceholderContentType = "image/svg+xml"

// ErrNoImage is returned when an episode has no image URL
var ErrNoImage = errors.New("no image URL")

// Image is a fetched image body
type Image struct {
	Data        []byte
	ContentType string
}

// Fetcher retrieves episode images from their source URLs
type Fetcher struct {
	HTTPClient *http.Client
}

// NewFetcher creates a new image fetcher with a short timeout
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		HTTPClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Fetch downloads the image at imageURL. Only http(s) URLs answering 200
// with an image body are accepted.
func (f *Fetcher) Fetch(ctx context.Context, imageURL string) (*Image, error) {
	imageURL = strings.TrimSpace(imageURL)
	if imageURL == "" {
		return nil, ErrNoImage
	}

	u, err := url.Parse(imageURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		return nil, fmt.Errorf("unsupported image URL %q", imageURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build image request: %w", err)
	}

	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch image: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("image URL returned status %d", resp.StatusCode)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxImageSize+1))
	if err != nil {
		return nil, fmt.Errorf("failed to read image data: %w", err)
	}
	if len(data) > maxImageSize {
		return nil, fmt.Errorf("image too large (max %d bytes)", maxImageSize)
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		contentType = http.DetectContentType(data)
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, fmt.Errorf("response is not an image (%s)", contentType)
	}

	return &Image{Data: data, ContentType: contentType}, nil
}

// FetchOrPlaceholder never fails: any fetch error is logged and the
// placeholder image is returned instead.
func (f *Fetcher) FetchOrPlaceholder(ctx context.Context, imageURL string) *Image {
	img, err := f.Fetch(ctx, imageURL)
	if err != nil {
		if !errors.Is(err, ErrNoImage) {
			slog.Warn("Image not available", "url", imageURL, "error", err)
		}
		return &Image{Data: Placeholder, ContentType: PlaceholderContentType}
	}
	return img
}
