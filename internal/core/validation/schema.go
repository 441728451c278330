package validation

import "github.com/propertydesk/propertydesk/internal/core/property"

// JSON Schema property types
type PropertyType string

const (
	PropertyTypeString PropertyType = "string"
	PropertyTypeNumber PropertyType = "number"
)

// Schema builder helpers
type SchemaProperty struct {
	Type             PropertyType  `json:"type"`
	Title            string        `json:"title,omitempty"`
	Description      string        `json:"description,omitempty"`
	Enum             []interface{} `json:"enum,omitempty"`
	MinLength        *int          `json:"minLength,omitempty"`
	MaxLength        *int          `json:"maxLength,omitempty"`
	ExclusiveMinimum *float64      `json:"exclusiveMinimum,omitempty"`
}

func NewSchema(title string, properties map[string]*SchemaProperty, required []string) map[string]interface{} {
	props := make(map[string]interface{})
	for k, v := range properties {
		props[k] = v
	}

	return map[string]interface{}{
		"$schema":              "http://json-schema.org/draft-07/schema#",
		"type":                 "object",
		"title":                title,
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

const (
	MaxNameLength        = 100
	MaxDescriptionLength = 500
)

// PropertySchema describes a valid property draft.
func PropertySchema() map[string]interface{} {
	one := 1
	maxName := MaxNameLength
	maxDescription := MaxDescriptionLength
	zero := 0.0

	types := make([]interface{}, len(property.Types))
	for i, t := range property.Types {
		types[i] = string(t)
	}

	return NewSchema("Property", map[string]*SchemaProperty{
		FieldName: {
			Type:      PropertyTypeString,
			Title:     "Property Name",
			MinLength: &one,
			MaxLength: &maxName,
		},
		FieldType: {
			Type:  PropertyTypeString,
			Title: "Property Type",
			Enum:  types,
		},
		FieldPrice: {
			Type:             PropertyTypeNumber,
			Title:            "Price",
			ExclusiveMinimum: &zero,
		},
		FieldLocation: {
			Type:      PropertyTypeString,
			Title:     "Location",
			MinLength: &one,
		},
		FieldDescription: {
			Type:      PropertyTypeString,
			Title:     "Description",
			MaxLength: &maxDescription,
		},
	}, []string{FieldName, FieldType, FieldPrice, FieldLocation})
}
