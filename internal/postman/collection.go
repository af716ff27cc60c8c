// Package postman defines the subset of the Postman Collection v2.1 format
// the generator emits.
package postman

import (
	"strings"

	"github.com/google/uuid"
)

// Body modes.
const (
	ModeURLEncoded = "urlencoded"
	ModeRaw        = "raw"
)

// Collection is the root document.
type Collection struct {
	Info     Info       `json:"info"`
	Item     []Folder   `json:"item"`
	Variable []Variable `json:"variable,omitempty"`
}

// Info holds collection metadata.
type Info struct {
	PostmanID   string `json:"_postman_id,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Schema      string `json:"schema"`
}

// Folder groups the requests of one interface.
type Folder struct {
	Name string `json:"name"`
	Item []Item `json:"item"`
}

// Item is a single request.
type Item struct {
	Name    string  `json:"name"`
	Request Request `json:"request"`
}

// Request describes the HTTP call.
type Request struct {
	Method      string   `json:"method"`
	Header      []Header `json:"header"`
	Body        *Body    `json:"body,omitempty"`
	URL         URL      `json:"url"`
	Description string   `json:"description"`
}

// URL is the structured request URL. Path keeps a trailing empty segment so
// Postman renders the trailing slash.
type URL struct {
	Raw      string   `json:"raw"`
	Protocol string   `json:"protocol"`
	Host     []string `json:"host"`
	Path     []string `json:"path"`
	Query    []Param  `json:"query"`
}

// Header is one request header.
type Header struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// Param is a query or form entry.
type Param struct {
	Key         string `json:"key"`
	Value       string `json:"value"`
	Description string `json:"description,omitempty"`
	Disabled    bool   `json:"disabled"`
	Type        string `json:"type,omitempty"`
}

// Body is the request body.
type Body struct {
	Mode       string  `json:"mode"`
	URLEncoded []Param `json:"urlencoded,omitempty"`
	Raw        string  `json:"raw,omitempty"`
}

// Variable is a collection-level variable.
type Variable struct {
	Key   string `json:"key"`
	Value string `json:"value"`
	Type  string `json:"type,omitempty"`
}

// CollectionID derives a stable collection id from a seed such as the API
// base URL, so re-importing a regenerated file replaces the same collection.
func CollectionID(seed string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(seed)).String()
}

// NewURL builds a URL from its parts. host is a dotted hostname.
func NewURL(protocol, host string, path []string) URL {
	return URL{
		Raw:      protocol + "://" + host + "/" + strings.Join(path, "/"),
		Protocol: protocol,
		Host:     strings.Split(host, "."),
		Path:     path,
		Query:    []Param{},
	}
}

// SetQuery replaces the query list and refreshes Raw with the enabled entries.
func (u *URL) SetQuery(params []Param) {
	u.Query = params

	base, _, _ := strings.Cut(u.Raw, "?")

	var pairs []string

	for _, p := range params {
		if p.Disabled {
			continue
		}

		pairs = append(pairs, p.Key+"="+p.Value)
	}

	if len(pairs) == 0 {
		u.Raw = base

		return
	}

	u.Raw = base + "?" + strings.Join(pairs, "&")
}

// CountItems returns the number of requests across all folders.
func (c *Collection) CountItems() int {
	total := 0
	for _, f := range c.Item {
		total += len(f.Item)
	}

	return total
}

// Folder returns the folder with the given name, or nil.
func (c *Collection) Folder(name string) *Folder {
	for i := range c.Item {
		if c.Item[i].Name == name {
			return &c.Item[i]
		}
	}

	return nil
}
