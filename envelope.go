package users

import "encoding/json"

// RequestEnvelope is the validated top level of an inbound document:
// data.type equals ResourceType and data.attributes is present. Attribute
// presence is decided here, once, so downstream validators never poke at
// raw maps.
type RequestEnvelope struct {
	attributes map[string]string
}

// Attribute is a single attribute value tagged with whether the client sent
// the field at all. An absent attribute and a present-but-empty one are
// different failures.
type Attribute struct {
	Value string
	Set   bool
}

// Attr returns the named attribute as sent by the client, untrimmed.
func (e *RequestEnvelope) Attr(name string) Attribute {
	v, ok := e.attributes[name]
	return Attribute{Value: v, Set: ok}
}

type rawEnvelope struct {
	Data *struct {
		Type       *string           `json:"type"`
		Attributes map[string]string `json:"attributes"`
	} `json:"data"`
}

// ParseEnvelope decodes body and enforces the JSON:API top level contract.
// Checks run in fixed order and stop at the first failure: data present,
// data.type present, data.type == "users", data.attributes present.
func ParseEnvelope(body []byte) (*RequestEnvelope, *Error) {
	var raw rawEnvelope
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, BadRequest("/", "The request body is not a valid JSON document")
	}

	if raw.Data == nil {
		return nil, BadRequest("/", "The top level field data is missing from the body of the request")
	}

	if raw.Data.Type == nil {
		return nil, BadRequest("/", "The top level field type is missing from the data object")
	}

	if *raw.Data.Type != ResourceType {
		return nil, BadRequest("/data", "The resource being registered is not a user")
	}

	if raw.Data.Attributes == nil {
		return nil, BadRequest("/data", "The attributes object is missing from the data object")
	}

	return &RequestEnvelope{attributes: raw.Data.Attributes}, nil
}

// Resource is the data member of a JSON:API success document.
type Resource struct {
	ID         string         `json:"id,omitempty"`
	Type       string         `json:"type"`
	Attributes map[string]any `json:"attributes"`
	Links      *Links         `json:"links,omitempty"`
}

// Links holds the links member of a resource.
type Links struct {
	Self string `json:"self"`
}

// ResourceDocument is the JSON:API success envelope.
type ResourceDocument struct {
	Data *Resource `json:"data"`
}
