package domain

import (
	"net/url"
	"strconv"
	"strings"
)

// Resource describes a console page that receives a record identifier through a token
// in its query string, and the backend endpoint that page fetches once resolved.
type Resource struct {
	// Name is the resource key used in API paths (e.g. "billing").
	Name string
	// PagePath is the console page path (e.g. "/billing").
	PagePath string
	// QueryParam is the query parameter carrying the token.
	QueryParam string
	// APIPathTemplate is the backend path; "{id}" is replaced by the identifier.
	APIPathTemplate string
}

// PageURL returns the console URL for token, prefixed with baseURL (which may be empty).
func (r Resource) PageURL(baseURL string, token Token) string {
	values := url.Values{}
	values.Set(r.QueryParam, token.String())
	return strings.TrimSuffix(baseURL, "/") + r.PagePath + "?" + values.Encode()
}

// APIPath returns the backend path for id.
func (r Resource) APIPath(id int64) string {
	return strings.ReplaceAll(r.APIPathTemplate, "{id}", strconv.FormatInt(id, 10))
}

// Resources lists the console pages that carry tokenized identifiers.
var Resources = map[string]Resource{
	"billing": {
		Name:            "billing",
		PagePath:        "/billing",
		QueryParam:      "id",
		APIPathTemplate: "/api/v1/billing/{id}",
	},
	"invoice": {
		Name:            "invoice",
		PagePath:        "/invoice",
		QueryParam:      "id",
		APIPathTemplate: "/api/v1/invoices/{id}",
	},
	"student": {
		Name:            "student",
		PagePath:        "/students/profile",
		QueryParam:      "student",
		APIPathTemplate: "/api/v1/students/{id}",
	},
	"user": {
		Name:            "user",
		PagePath:        "/users/profile",
		QueryParam:      "user",
		APIPathTemplate: "/api/v1/users/{id}",
	},
}

// LookupResource returns the registered resource for name or ErrUnknownResource.
func LookupResource(name string) (Resource, error) {
	r, ok := Resources[name]
	if !ok {
		return Resource{}, ErrUnknownResource
	}
	return r, nil
}

// Link is a console URL minted for one record.
type Link struct {
	Resource string
	ID       int64
	Token    Token
	URL      string
}

// ResolvedLink is the outcome of reading a token back from a console URL: the
// identifier and the backend path the page should fetch.
type ResolvedLink struct {
	Resource string
	ID       int64
	Token    Token
	APIPath  string
}
