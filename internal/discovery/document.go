// Package discovery models and fetches the Steam Web API discovery document
// returned by ISteamWebAPIUtil/GetSupportedAPIList.
package discovery

import (
	"encoding/json"
	"fmt"
)

// Document is the top-level discovery payload.
type Document struct {
	APIList *APIList `json:"apilist"`
}

// APIList holds every interface exposed by the service.
type APIList struct {
	Interfaces []Interface `json:"interfaces"`
}

// Interface is a named group of methods. The feed may repeat a name.
type Interface struct {
	Name    *string  `json:"name"`
	Methods []Method `json:"methods"`
}

// Method describes one remote call.
type Method struct {
	Name        *string     `json:"name"`
	HTTPMethod  *string     `json:"httpmethod"`
	Version     *int        `json:"version"`
	Description string      `json:"description,omitempty"`
	Parameters  []Parameter `json:"parameters"`
}

// Parameter describes one argument of a method.
type Parameter struct {
	Name        *string `json:"name"`
	Type        string  `json:"type"`
	Description string  `json:"description,omitempty"`
	Optional    bool    `json:"optional"`
}

// Decode parses a raw discovery body. Missing fields are left nil and are
// reported later by the catalog validator.
func Decode(raw []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode discovery document: %w", err)
	}

	return &doc, nil
}

// GetName returns the interface name or "" when absent.
func (i *Interface) GetName() string {
	return deref(i.Name)
}

// GetName returns the method name or "" when absent.
func (m *Method) GetName() string {
	return deref(m.Name)
}

// GetHTTPMethod returns the verb or "" when absent.
func (m *Method) GetHTTPMethod() string {
	return deref(m.HTTPMethod)
}

// GetVersion returns the version or 0 when absent.
func (m *Method) GetVersion() int {
	if m.Version == nil {
		return 0
	}

	return *m.Version
}

// GetName returns the parameter name or "" when absent.
func (p *Parameter) GetName() string {
	return deref(p.Name)
}

// CountMethods returns the total number of method entries across interfaces.
func (d *Document) CountMethods() int {
	if d == nil || d.APIList == nil {
		return 0
	}

	total := 0
	for _, iface := range d.APIList.Interfaces {
		total += len(iface.Methods)
	}

	return total
}

// CountInterfaces returns the number of raw interface entries.
func (d *Document) CountInterfaces() int {
	if d == nil || d.APIList == nil {
		return 0
	}

	return len(d.APIList.Interfaces)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}

// String returns a pointer to s. Handy for building documents in code.
func String(s string) *string {
	return &s
}

// Int returns a pointer to n.
func Int(n int) *int {
	return &n
}
