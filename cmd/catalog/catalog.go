// Package catalog holds the fixed track list and the pure helpers that turn a
// catalog entry into a fetchable URL or a human-readable title.
package catalog

import (
	"errors"
	"strings"
)

const (
	// DefaultBaseURL is the streaming origin every track reference is appended to.
	DefaultBaseURL = "https://rangatracks.b-cdn.net/"

	// LoadingName is shown when there is no track to name yet.
	LoadingName = "Loading..."

	// UnknownName is shown when an entry decodes to nothing.
	UnknownName = "Unknown Track"
)

var ErrIndexOutOfRange = errors.New("catalog index out of range")

// nameDecoder reverses exactly the encodings used by the catalog, no more.
var nameDecoder = strings.NewReplacer(
	"%20", " ",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%26", "&",
)

// Catalog is an immutable, ordered list of track references. A track's
// identity is its index.
type Catalog struct {
	baseURL string
	refs    []string
}

// New copies refs so later changes to the caller's slice cannot leak in.
func New(baseURL string, refs []string) *Catalog {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Catalog{
		baseURL: baseURL,
		refs:    append([]string(nil), refs...),
	}
}

// Default returns the built-in catalog on the default origin.
func Default() *Catalog {
	return New(DefaultBaseURL, Tracks)
}

func (c *Catalog) Len() int {
	return len(c.refs)
}

func (c *Catalog) BaseURL() string {
	return c.baseURL
}

// Ref returns the encoded reference at index i.
func (c *Catalog) Ref(i int) (string, error) {
	if i < 0 || i >= len(c.refs) {
		return "", ErrIndexOutOfRange
	}
	return c.refs[i], nil
}

// URL returns the fetchable address of the track at index i.
func (c *Catalog) URL(i int) (string, error) {
	ref, err := c.Ref(i)
	if err != nil {
		return "", err
	}
	return ResolveURL(c.baseURL, ref), nil
}

// DisplayName returns the decoded title of the track at index i.
func (c *Catalog) DisplayName(i int) (string, error) {
	ref, err := c.Ref(i)
	if err != nil {
		return "", err
	}
	return DisplayName(ref), nil
}

// ResolveURL substitutes ref into the base address. The reference is already
// encoded and is used verbatim.
func ResolveURL(baseURL, ref string) string {
	return baseURL + ref
}

// DisplayName decodes %20 %27 %28 %29 %26 and strips a trailing .mp3.
func DisplayName(ref string) string {
	name := strings.TrimSuffix(nameDecoder.Replace(ref), ".mp3")
	if name == "" {
		return UnknownName
	}
	return name
}
