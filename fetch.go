package ascramp

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"
)

// maxGridBytes caps a downloaded grid body. A misbehaving server cannot make
// the client buffer more than this.
const maxGridBytes = 512 << 20

// ErrBodyTooLarge is the cause reported when a response exceeds the client's
// MaxBytes.
var ErrBodyTooLarge = errors.New("response body exceeds size limit")

// Client fetches grids over HTTP(S).
type Client struct {
	HTTPClient *http.Client
	MaxBytes   int64 // default maxGridBytes
}

// NewClient returns a client with sensible defaults.
func NewClient() *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: 120 * time.Second},
		MaxBytes:   maxGridBytes,
	}
}

// IsURL reports whether s names an http or https resource.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

// Fetch downloads and decodes the grid at rawURL. A path ending in .gz is
// decompressed. ctx is propagated to the request so callers can cancel it.
func (c *Client) Fetch(ctx context.Context, rawURL string) (*Grid, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: rawURL, Msg: "bad URL", Err: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: rawURL, Msg: "building request", Err: err}
	}
	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, &Error{Kind: KindIO, Path: rawURL, Msg: "GET", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, newError(KindIO, rawURL, 0, "HTTP %d", resp.StatusCode)
	}

	limit := c.MaxBytes
	if limit <= 0 {
		limit = maxGridBytes
	}
	body := &cappedReader{r: resp.Body, n: limit}
	return decodeMaybeGzip(body, rawURL, path.Ext(u.Path))
}

// cappedReader reads at most n bytes from r and fails with ErrBodyTooLarge
// if more are available, instead of silently truncating.
type cappedReader struct {
	r io.Reader
	n int64
}

func (c *cappedReader) Read(p []byte) (int, error) {
	if c.n <= 0 {
		var probe [1]byte
		k, err := c.r.Read(probe[:])
		if k > 0 {
			return 0, ErrBodyTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > c.n {
		p = p[:c.n]
	}
	k, err := c.r.Read(p)
	c.n -= int64(k)
	return k, err
}
