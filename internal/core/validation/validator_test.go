package validation

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/propertydesk/propertydesk/internal/core/property"
)

func validForm() FormData {
	return FormData{
		Name:        "Modern Downtown Apartment",
		Type:        "Apartment",
		Price:       "350000",
		Location:    "New York, NY",
		Description: "Stunning city views.",
	}
}

func TestValidateForm_Valid(t *testing.T) {
	v := NewValidator()

	f := validForm()
	f.Name = "  Modern Downtown Apartment  "
	f.Price = " 350000.50 "

	draft, err := v.ValidateForm(f)
	if err != nil {
		t.Fatalf("ValidateForm: %v", err)
	}

	want := property.Draft{
		Name:        "Modern Downtown Apartment",
		Type:        property.TypeApartment,
		Price:       350000.50,
		Location:    "New York, NY",
		Description: "Stunning city views.",
	}
	if diff := cmp.Diff(want, draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}

func TestValidateForm_EmptyDescriptionAllowed(t *testing.T) {
	f := validForm()
	f.Description = "   "

	draft, err := NewValidator().ValidateForm(f)
	if err != nil {
		t.Fatalf("ValidateForm: %v", err)
	}
	if draft.Description != "" {
		t.Errorf("Description = %q, want empty", draft.Description)
	}
}

func TestValidateForm_FieldErrors(t *testing.T) {
	v := NewValidator()

	tests := []struct {
		name   string
		modify func(*FormData)
		field  string
		msg    string
	}{
		{"blank name", func(f *FormData) { f.Name = "   " }, FieldName, MsgNameRequired},
		{"long name", func(f *FormData) { f.Name = strings.Repeat("n", MaxNameLength+1) }, FieldName, MsgNameTooLong},
		{"unknown type", func(f *FormData) { f.Type = "Castle" }, FieldType, MsgTypeInvalid},
		{"missing type", func(f *FormData) { f.Type = "" }, FieldType, MsgTypeInvalid},
		{"missing price", func(f *FormData) { f.Price = "" }, FieldPrice, MsgPriceRequired},
		{"non-numeric price", func(f *FormData) { f.Price = "lots" }, FieldPrice, MsgPriceInvalid},
		{"zero price", func(f *FormData) { f.Price = "0" }, FieldPrice, MsgPriceInvalid},
		{"negative price", func(f *FormData) { f.Price = "-5" }, FieldPrice, MsgPriceInvalid},
		{"infinite price", func(f *FormData) { f.Price = "Inf" }, FieldPrice, MsgPriceInvalid},
		{"blank location", func(f *FormData) { f.Location = "" }, FieldLocation, MsgLocationRequired},
		{"long description", func(f *FormData) { f.Description = strings.Repeat("d", MaxDescriptionLength+1) }, FieldDescription, MsgDescriptionLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			tt.modify(&f)

			_, err := v.ValidateForm(f)
			if !IsValidationError(err) {
				t.Fatalf("err = %v, want validation error", err)
			}
			got := GetValidationErrors(err).Fields()
			if diff := cmp.Diff(map[string]string{tt.field: tt.msg}, got); diff != "" {
				t.Errorf("field errors mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestValidateForm_LimitsAreInclusive(t *testing.T) {
	f := validForm()
	f.Name = strings.Repeat("é", MaxNameLength)
	f.Description = strings.Repeat("d", MaxDescriptionLength)

	if _, err := NewValidator().ValidateForm(f); err != nil {
		t.Errorf("ValidateForm: %v", err)
	}
}

func TestValidateForm_ErrorOrder(t *testing.T) {
	_, err := NewValidator().ValidateForm(FormData{})

	ve := GetValidationErrors(err)
	if ve == nil {
		t.Fatalf("err = %v, want validation errors", err)
	}
	var fields []string
	for _, e := range ve.Errors {
		fields = append(fields, e.Field)
	}
	want := []string{FieldName, FieldType, FieldPrice, FieldLocation}
	if diff := cmp.Diff(want, fields); diff != "" {
		t.Errorf("field order mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(err.Error(), "name: "+MsgNameRequired) {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestFormDataFrom(t *testing.T) {
	p := property.Samples()[2]

	f := FormDataFrom(p)
	if f.Price != "1200000" || f.Type != "Condo" || f.Name != p.Name {
		t.Errorf("FormDataFrom = %+v", f)
	}

	draft, err := NewValidator().ValidateForm(f)
	if err != nil {
		t.Fatalf("pre-filled form does not validate: %v", err)
	}
	if diff := cmp.Diff(p.Draft(), draft); diff != "" {
		t.Errorf("draft mismatch (-want +got):\n%s", diff)
	}
}
