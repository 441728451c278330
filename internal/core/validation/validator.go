package validation

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/propertydesk/propertydesk/internal/core/property"
)

const (
	FieldName        = "name"
	FieldType        = "type"
	FieldPrice       = "price"
	FieldLocation    = "location"
	FieldDescription = "description"
)

// fieldOrder is the order in which field errors are reported.
var fieldOrder = []string{FieldName, FieldType, FieldPrice, FieldLocation, FieldDescription}

const (
	MsgNameRequired     = "Property name is required"
	MsgNameTooLong      = "Property name must be less than 100 characters"
	MsgPriceRequired    = "Price is required"
	MsgPriceInvalid     = "Please enter a valid price"
	MsgLocationRequired = "Location is required"
	MsgDescriptionLong  = "Description must be less than 500 characters"
	MsgTypeInvalid      = "Property type must be one of Apartment, House, Condo, Townhouse, Commercial"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

func (e *ValidationErrors) Error() string {
	var msgs []string
	for _, err := range e.Errors {
		msgs = append(msgs, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(msgs, "; ")
}

// Fields returns the message for each invalid field.
func (e *ValidationErrors) Fields() map[string]string {
	out := make(map[string]string, len(e.Errors))
	for _, err := range e.Errors {
		out[err.Field] = err.Message
	}
	return out
}

// FormData is the raw input of the add and edit forms.
type FormData struct {
	Name        string `json:"name" form:"name"`
	Type        string `json:"type" form:"type"`
	Price       string `json:"price" form:"price"`
	Location    string `json:"location" form:"location"`
	Description string `json:"description" form:"description"`
}

// FormDataFrom fills a form with the current values of p, the way the edit
// form is pre-populated.
func FormDataFrom(p property.Property) FormData {
	return FormData{
		Name:        p.Name,
		Type:        string(p.Type),
		Price:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		Location:    p.Location,
		Description: p.Description,
	}
}

type Validator struct {
	propertySchema *gojsonschema.Schema
}

func NewValidator() *Validator {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewGoLoader(PropertySchema()))
	if err != nil {
		panic(fmt.Sprintf("validation: compile property schema: %v", err))
	}
	return &Validator{propertySchema: schema}
}

// ValidateForm trims and parses f and checks it against the property schema.
// On success it returns the draft to hand to the store.
func (v *Validator) ValidateForm(f FormData) (property.Draft, error) {
	name := strings.TrimSpace(f.Name)
	location := strings.TrimSpace(f.Location)
	description := strings.TrimSpace(f.Description)
	priceText := strings.TrimSpace(f.Price)

	doc := map[string]interface{}{
		FieldName:        name,
		FieldType:        f.Type,
		FieldLocation:    location,
		FieldDescription: description,
	}

	errs := map[string]string{}
	var price float64
	if priceText == "" {
		errs[FieldPrice] = MsgPriceRequired
	} else {
		p, err := strconv.ParseFloat(priceText, 64)
		if err != nil || math.IsNaN(p) || math.IsInf(p, 0) {
			errs[FieldPrice] = MsgPriceInvalid
		} else {
			price = p
			doc[FieldPrice] = p
		}
	}

	result, err := v.propertySchema.Validate(gojsonschema.NewGoLoader(doc))
	if err != nil {
		return property.Draft{}, err
	}
	for _, desc := range result.Errors() {
		field := desc.Field()
		if desc.Type() == "required" {
			if prop, ok := desc.Details()["property"].(string); ok {
				field = prop
			}
		}
		if _, seen := errs[field]; seen {
			continue
		}
		errs[field] = fieldMessage(field, desc.Type())
	}

	if len(errs) > 0 {
		return property.Draft{}, newValidationErrors(errs)
	}

	return property.Draft{
		Name:        name,
		Type:        property.Type(f.Type),
		Price:       price,
		Location:    location,
		Description: description,
	}, nil
}

func fieldMessage(field, errorType string) string {
	switch field {
	case FieldName:
		if errorType == "string_lte" {
			return MsgNameTooLong
		}
		return MsgNameRequired
	case FieldType:
		return MsgTypeInvalid
	case FieldPrice:
		if errorType == "required" {
			return MsgPriceRequired
		}
		return MsgPriceInvalid
	case FieldLocation:
		return MsgLocationRequired
	case FieldDescription:
		return MsgDescriptionLong
	default:
		return fmt.Sprintf("unexpected field (%s)", errorType)
	}
}

func newValidationErrors(errs map[string]string) *ValidationErrors {
	out := &ValidationErrors{}
	for _, field := range fieldOrder {
		if msg, ok := errs[field]; ok {
			out.Errors = append(out.Errors, ValidationError{Field: field, Message: msg})
			delete(errs, field)
		}
	}
	for field, msg := range errs {
		out.Errors = append(out.Errors, ValidationError{Field: field, Message: msg})
	}
	return out
}

func IsValidationError(err error) bool {
	var ve *ValidationErrors
	return errors.As(err, &ve)
}

func GetValidationErrors(err error) *ValidationErrors {
	var ve *ValidationErrors
	if errors.As(err, &ve) {
		return ve
	}
	return nil
}
