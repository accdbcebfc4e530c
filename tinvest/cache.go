package tinvest

import (
	"bufio"
	"bytes"
	"crypto/sha1"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"time"
)

// diskCache implements a simple disk cache for HTTP responses. The cache
// key includes the current day, so entries expire daily. It is mounted
// only on the currency-catalog call, which is stable within a day.
type diskCache struct {
	base http.RoundTripper
}

// RoundTrip checks for a cached response on disk first. If none is
// found, it performs the actual request and caches a successful
// response. The request body is part of the key, since the API
// multiplexes methods over POST.
func (c *diskCache) RoundTrip(req *http.Request) (resp *http.Response, err error) {
	var body []byte
	if req.GetBody != nil {
		r, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		body, _ = io.ReadAll(r)
		r.Close()
	}
	key := fmt.Sprintf("%s %s %s %s", time.Now().UTC().Format("2006-01-02"), req.Method, req.URL.String(), body)
	key = fmt.Sprintf("tinvest-%x", sha1.Sum([]byte(key)))

	cachedResp, err := c.get(key, req)
	if err == nil { // Cache hit
		return cachedResp, nil
	}

	resp, err = c.base.RoundTrip(req)
	if err != nil {
		return nil, err
	}
	log.Printf("%v %v%v %v", req.Method, req.URL.Host, req.URL.Path, resp.Status)
	if resp.StatusCode >= 300 {
		return resp, nil
	}

	if err := c.put(key, resp); err != nil {
		log.Printf("cache write err (ignored): %v", err)
	}
	return resp, nil
}

func (c *diskCache) path(key string) string { return filepath.Join(os.TempDir(), key) }

// get reads the cached response for key back off disk.
func (c *diskCache) get(key string, req *http.Request) (*http.Response, error) {
	dump, err := os.ReadFile(c.path(key))
	if err != nil {
		return nil, err
	}
	return http.ReadResponse(bufio.NewReader(bytes.NewReader(dump)), req)
}

// put dumps the whole response, body included, under key.
func (c *diskCache) put(key string, resp *http.Response) error {
	dump, err := httputil.DumpResponse(resp, true)
	if err != nil {
		return err
	}
	return os.WriteFile(c.path(key), dump, 0o644)
}

// newDailyCachingClient returns an http.Client that uses a disk cache
// where entries expire daily.
func newDailyCachingClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout:   timeout,
		Transport: &diskCache{base: http.DefaultTransport},
	}
}
