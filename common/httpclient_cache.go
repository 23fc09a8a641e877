package common

import (
	"bufio"
	"bytes"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httputil"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
)

type Middleware = func(req *http.Request, next http.RoundTripper) (*http.Response, error)

// WrapHTTPClient installs the middlewares on the client transport. The first middleware is the outermost one.
func WrapHTTPClient(client *http.Client, middlewares ...Middleware) {
	if client == nil {
		return
	}
	for i := len(middlewares) - 1; i >= 0; i-- {
		base := client.Transport
		if base == nil {
			base = http.DefaultTransport
		}
		wrap := middlewares[i]
		client.Transport = roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			return wrap(req, base)
		})
	}
}

type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

// CacheTransport keeps successful GET responses of the vex feeds for a fixed time.
type CacheTransport struct {
	cache *expirable.LRU[string, []byte]
}

func NewCacheTransport(cacheSize int, expiration time.Duration) *CacheTransport {
	cache := expirable.NewLRU[string, []byte](cacheSize, nil, expiration)
	return &CacheTransport{
		cache: cache,
	}
}

func (c *CacheTransport) Len() int {
	return c.cache.Len()
}

func (c *CacheTransport) Purge() {
	c.cache.Purge()
}

func (c *CacheTransport) Handler() Middleware {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		key := cacheKey(req)

		if val, ok := c.cache.Get(key); ok {
			slog.Debug("vex feed cache hit", "url", req.URL.String())
			resp, err := responseFromBytes(val)
			if err != nil {
				slog.Error("failed to read response from cache", "err", err)
				return nil, err
			}
			return resp, nil
		}

		resp, err := next.RoundTrip(req)
		if err != nil {
			return resp, err
		}

		// only cache successful responses
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return resp, nil
		}

		v, err := httputil.DumpResponse(resp, true)
		if err != nil {
			slog.Error("failed to dump response", "err", err)
			return resp, nil
		}

		c.cache.Add(key, v)

		return responseFromBytes(v)
	}
}

func responseFromBytes(v []byte) (*http.Response, error) {
	r := bufio.NewReader(bytes.NewReader(v))
	resp, err := http.ReadResponse(r, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read response")
	}
	return resp, nil
}

func cacheKey(req *http.Request) string {
	// the feeds negotiate the vex format
	key := req.URL.String() + "|" + req.Header.Get("Accept")

	auth := req.Header.Get("Authorization")
	if auth != "" {
		h := sha256.New()
		h.Write([]byte(key))
		h.Write([]byte(auth))
		return fmt.Sprintf("%x", h.Sum(nil))
	}

	return key
}
