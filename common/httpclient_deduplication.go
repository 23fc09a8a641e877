package common

import (
	"log/slog"
	"net/http"
	"net/http/httputil"

	"golang.org/x/sync/singleflight"
)

// DeduplicationTransport collapses concurrent GET requests for the same feed url into one round trip.
type DeduplicationTransport struct {
	group singleflight.Group
}

func NewDeduplicationTransport() *DeduplicationTransport {
	return &DeduplicationTransport{
		group: singleflight.Group{},
	}
}

func (c *DeduplicationTransport) Handler() Middleware {
	return func(req *http.Request, next http.RoundTripper) (*http.Response, error) {
		if req.Method != http.MethodGet {
			return next.RoundTrip(req)
		}

		resp, err, shared := c.group.Do(cacheKey(req), func() (any, error) {
			resp, err := next.RoundTrip(req)
			if err != nil {
				return nil, err
			}
			defer resp.Body.Close()
			return httputil.DumpResponse(resp, true)
		})

		if shared {
			slog.Debug("deduplicated request",
				"method", req.Method,
				"url", req.URL.String())
		}
		if err != nil {
			return nil, err
		}
		// every waiter gets its own copy of the body
		return responseFromBytes(resp.([]byte))
	}
}
