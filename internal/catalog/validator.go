package catalog

import (
	"fmt"

	"steamcollection/internal/discovery"
)

// Validator checks that every field the transformer reads is present.
type Validator struct{}

// NewValidator creates a new validator instance.
func NewValidator() *Validator {
	return &Validator{}
}

// Validate returns a *MalformedInputError for the first missing field found,
// walking the document in order.
func (v *Validator) Validate(doc *discovery.Document) error {
	if doc == nil || doc.APIList == nil {
		return missing("", "apilist")
	}

	if doc.APIList.Interfaces == nil {
		return missing("apilist", "interfaces")
	}

	for i, iface := range doc.APIList.Interfaces {
		ifacePath := fmt.Sprintf("apilist.interfaces[%d]", i)

		if iface.Name == nil {
			return missing(ifacePath, "name")
		}

		if iface.Methods == nil {
			return missing(ifacePath, "methods")
		}

		for j, method := range iface.Methods {
			if err := v.validateMethod(fmt.Sprintf("%s.methods[%d]", ifacePath, j), method); err != nil {
				return err
			}
		}
	}

	return nil
}

func (v *Validator) validateMethod(path string, method discovery.Method) error {
	switch {
	case method.Name == nil:
		return missing(path, "name")
	case method.HTTPMethod == nil:
		return missing(path, "httpmethod")
	case method.Version == nil:
		return missing(path, "version")
	}

	for k, param := range method.Parameters {
		if param.Name == nil {
			return missing(fmt.Sprintf("%s.parameters[%d]", path, k), "name")
		}
	}

	return nil
}
