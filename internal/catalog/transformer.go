// Package catalog converts a Steam Web API discovery document into a Postman
// collection.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"steamcollection/internal/discovery"
	"steamcollection/internal/postman"
)

const (
	serviceSuffix = "Service"
	keyParam      = "key"
	inputJSON     = "input_json"
	formEncoded   = "application/x-www-form-urlencoded"
	titleLayout   = "01.02.2006"
)

// Style tells how an interface expects its parameters.
type Style int

const (
	// Classic interfaces take form fields or query parameters directly.
	Classic Style = iota
	// Service interfaces take a single JSON-encoded input_json parameter.
	Service
)

func (s Style) String() string {
	if s == Service {
		return "service"
	}

	return "classic"
}

// StyleOf classifies an interface by name.
func StyleOf(interfaceName string) Style {
	if strings.HasSuffix(interfaceName, serviceSuffix) {
		return Service
	}

	return Classic
}

// Options configures the transformer.
type Options struct {
	NamePrefix     string
	Schema         string
	Description    string
	Protocol       string
	Host           string
	KeyHeader      string
	KeyPlaceholder string
	// Now stamps the collection title. Defaults to time.Now.
	Now func() time.Time
}

// DefaultOptions targets the public Steam Web API.
func DefaultOptions() Options {
	return Options{
		NamePrefix:     "Steam Web API",
		Schema:         "https://schema.getpostman.com/json/collection/v2.1.0/collection.json",
		Protocol:       "https",
		Host:           "api.steampowered.com",
		KeyHeader:      "x-webapi-key",
		KeyPlaceholder: "{{key}}",
		Now:            time.Now,
	}
}

// Transformer maps a discovery document to a collection.
type Transformer struct {
	validator *Validator
	opts      Options
}

// NewTransformer creates a new transformer instance.
func NewTransformer(opts Options) *Transformer {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Transformer{
		validator: NewValidator(),
		opts:      opts,
	}
}

// group is one interface with every method seen under its name.
type group struct {
	name    string
	methods []discovery.Method
}

// Transform builds the collection. Any missing required field aborts the
// whole transformation with a *MalformedInputError.
func (t *Transformer) Transform(doc *discovery.Document) (*postman.Collection, error) {
	if err := t.validator.Validate(doc); err != nil {
		return nil, err
	}

	collection := &postman.Collection{
		Info: postman.Info{
			PostmanID:   postman.CollectionID(t.opts.Protocol + "://" + t.opts.Host),
			Name:        fmt.Sprintf("%s %s", t.opts.NamePrefix, t.opts.Now().Format(titleLayout)),
			Description: t.opts.Description,
			Schema:      t.opts.Schema,
		},
		Item: []postman.Folder{},
	}

	if name := placeholderName(t.opts.KeyPlaceholder); name != "" {
		collection.Variable = []postman.Variable{{Key: name, Value: "", Type: "string"}}
	}

	for _, g := range groupByInterface(doc.APIList.Interfaces) {
		collection.Item = append(collection.Item, t.buildFolder(g))
	}

	return collection, nil
}

// groupByInterface concatenates methods of same-named interfaces, keeping
// first-seen interface order.
func groupByInterface(interfaces []discovery.Interface) []group {
	index := make(map[string]int)

	var groups []group

	for _, iface := range interfaces {
		name := iface.GetName()

		i, ok := index[name]
		if !ok {
			i = len(groups)
			index[name] = i
			groups = append(groups, group{name: name})
		}

		groups[i].methods = append(groups[i].methods, iface.Methods...)
	}

	return groups
}

func (t *Transformer) buildFolder(g group) postman.Folder {
	folder := postman.Folder{
		Name: g.name,
		Item: make([]postman.Item, 0, len(g.methods)),
	}

	style := StyleOf(g.name)

	for _, m := range g.methods {
		folder.Item = append(folder.Item, t.buildItem(g.name, style, m))
	}

	return folder
}

func (t *Transformer) buildItem(interfaceName string, style Style, m discovery.Method) postman.Item {
	verb := m.GetHTTPMethod()
	isPost := strings.EqualFold(verb, "POST")
	isGet := strings.EqualFold(verb, "GET")

	path := []string{interfaceName, m.GetName(), "v" + strconv.Itoa(m.GetVersion()), ""}

	req := postman.Request{
		Method: verb,
		Header: []postman.Header{
			{Key: "Content-Type", Value: formEncoded},
			{Key: t.opts.KeyHeader, Value: t.opts.KeyPlaceholder},
		},
		URL:         postman.NewURL(t.opts.Protocol, t.opts.Host, path),
		Description: m.Description,
	}

	params := buildParams(m.Parameters, isPost)

	switch style {
	case Classic:
		switch {
		case isPost && len(params) > 0:
			req.Body = &postman.Body{Mode: postman.ModeURLEncoded, URLEncoded: params}
		case isGet && len(params) > 0:
			req.URL.SetQuery(params)
		}
	case Service:
		input := newEnvelope()
		all := newEnvelope()

		for _, p := range params {
			all.Set(p.Key, p.Value)

			if !p.Disabled {
				input.Set(p.Key, p.Value)
			}
		}

		if all.Len() > 0 {
			req.Description = appendDump(req.Description, all.String())
		}

		if input.Len() > 0 {
			switch {
			case isPost:
				req.Body = &postman.Body{Mode: postman.ModeRaw, Raw: inputJSON + "=" + input.String()}
			case isGet:
				req.URL.SetQuery([]postman.Param{{Key: inputJSON, Value: input.String()}})
			}
		}
	}

	return postman.Item{
		Name:    m.GetName(),
		Request: req,
	}
}

// buildParams converts every parameter except the API key.
func buildParams(params []discovery.Parameter, isPost bool) []postman.Param {
	out := make([]postman.Param, 0, len(params))

	for _, p := range params {
		if p.GetName() == keyParam {
			continue
		}

		item := postman.Param{
			Key:         p.GetName(),
			Value:       "",
			Description: p.Description,
			Disabled:    p.Optional,
		}

		if isPost {
			item.Type = "text"
		}

		out = append(out, item)
	}

	return out
}

func appendDump(description, dump string) string {
	if description == "" {
		return dump
	}

	return description + "\n\n" + dump
}

// placeholderName extracts "key" from "{{key}}".
func placeholderName(placeholder string) string {
	if !strings.HasPrefix(placeholder, "{{") || !strings.HasSuffix(placeholder, "}}") {
		return ""
	}

	return strings.TrimSpace(placeholder[2 : len(placeholder)-2])
}
