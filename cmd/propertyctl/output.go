package main

import (
	"encoding/json"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/propertydesk/propertydesk/internal/core/property"
	"github.com/propertydesk/propertydesk/internal/format"
)

var outputFlag string

func writeList(w io.Writer, properties []property.Property) error {
	switch outputFlag {
	case "table", "":
		_, err := fmt.Fprintln(w, format.PropertyTable(properties, format.ASCII))
		return err
	case "markdown":
		_, err := fmt.Fprintln(w, format.PropertyTable(properties, format.Markdown))
		return err
	default:
		return writeStructured(w, properties)
	}
}

func writeOne(w io.Writer, p property.Property) error {
	switch outputFlag {
	case "table", "":
		_, err := fmt.Fprintln(w, format.PropertyDetails(p, format.ASCII))
		return err
	case "markdown":
		_, err := fmt.Fprintln(w, format.PropertyDetails(p, format.Markdown))
		return err
	default:
		return writeStructured(w, p)
	}
}

func writeStructured(w io.Writer, v any) error {
	switch outputFlag {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", outputFlag)
	}
}
