package cardgen

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/pictora/cardgen/utils"
)

// Client performs the remote avatar and background fetches. It defaults to
// http.DefaultClient, which carries no timeout; callers that want one can
// install their own client without changing any other behavior.
var Client = http.DefaultClient

// FetchError reports a non-success HTTP status while retrieving a remote
// avatar or background image.
type FetchError struct {
	URL    string
	Status string
}

func (e *FetchError) Error() string {
	return fmt.Sprintf("unable to fetch %s: %s", e.URL, e.Status)
}

// LoadError reports an avatar or background reference that could not be
// opened or decoded.
type LoadError struct {
	Ref string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("unable to load image %s: %v", e.Ref, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// isLocalRef reports whether a reference points at the local filesystem.
// Anything without a protocol separator, or starting with "./" or "/", is
// treated as a local path; everything else goes over HTTP.
func isLocalRef(ref string) bool {
	if strings.HasPrefix(ref, "./") || strings.HasPrefix(ref, "/") {
		return true
	}
	return !strings.Contains(ref, "://")
}

// loadBitmap resolves an avatar or background reference into a decoded image.
func loadBitmap(ref string) (image.Image, error) {
	if isLocalRef(ref) {
		return loadLocal(ref)
	}
	return loadRemote(ref)
}

// loadOptionalBitmap behaves like loadBitmap except that an empty reference
// yields no bitmap and no error. A present but unreachable or undecodable
// reference is still an error.
func loadOptionalBitmap(ref string) (image.Image, error) {
	if ref == "" {
		return nil, nil
	}
	return loadBitmap(ref)
}

func loadLocal(ref string) (image.Image, error) {
	ctype, err := utils.DetectContentType(ref)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	if !strings.Contains(ctype, "image") {
		return nil, &LoadError{Ref: ref, Err: fmt.Errorf("not an image file, detected content type %s", ctype)}
	}

	file, err := os.Open(ref)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	return img, nil
}

func loadRemote(ref string) (image.Image, error) {
	if !utils.IsValidUrl(ref) {
		return nil, &LoadError{Ref: ref, Err: fmt.Errorf("malformed image URL")}
	}

	res, err := Client.Get(ref)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &FetchError{URL: ref, Status: res.Status}
	}

	// Buffer the whole response body before decoding.
	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: fmt.Errorf("unable to read response body: %w", err)}
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, &LoadError{Ref: ref, Err: err}
	}
	return img, nil
}
