// Package catalog carries the display catalog expression builders offer for
// picking fields and operators: value/label pairs for device attributes, the
// operator vocabulary, and the group connectives. The catalog is purely
// descriptive; trees are never validated against it.
package catalog

import "strings"

// CustomFieldPrefix marks device attributes that live in free-form custom
// fields rather than the fixed schema.
const CustomFieldPrefix = "cf_"

// Option is one selectable entry, in the value/label shape the field-options
// endpoint serves.
type Option struct {
	Value string `json:"value" yaml:"value"`
	Label string `json:"label" yaml:"label"`
}

// Catalog lists the fields, operators and connectives available when
// building an expression.
type Catalog struct {
	Fields    []Option `json:"fields" yaml:"fields"`
	Operators []Option `json:"operators" yaml:"operators"`
	Logic     []Option `json:"logical_operations" yaml:"logical_operations"`
}

// Default returns the stock device catalog.
func Default() *Catalog {
	return &Catalog{
		Fields: []Option{
			{Value: "name", Label: "Device Name"},
			{Value: "location", Label: "Location"},
			{Value: "role", Label: "Role"},
			{Value: "status", Label: "Status"},
			{Value: "tag", Label: "Tag"},
			{Value: "device_type", Label: "Device Type"},
			{Value: "manufacturer", Label: "Manufacturer"},
			{Value: "platform", Label: "Platform"},
			{Value: "has_primary", Label: "Has Primary"},
			{Value: "custom_fields", Label: "Custom Fields..."},
		},
		Operators: []Option{
			{Value: "equals", Label: "Equals"},
			{Value: "not_equals", Label: "Not Equals"},
			{Value: "contains", Label: "Contains"},
			{Value: "not_contains", Label: "Not Contains"},
			{Value: "starts_with", Label: "Starts With"},
			{Value: "ends_with", Label: "Ends With"},
			{Value: "greater_than", Label: "Greater Than"},
			{Value: "less_than", Label: "Less Than"},
			{Value: "is_empty", Label: "Is Empty"},
			{Value: "is_not_empty", Label: "Is Not Empty"},
		},
		Logic: []Option{
			{Value: "AND", Label: "AND"},
			{Value: "OR", Label: "OR"},
			{Value: "NOT", Label: "NOT"},
		},
	}
}

// IsCustomField reports whether a field name addresses a custom field.
func IsCustomField(field string) bool {
	return strings.HasPrefix(field, CustomFieldPrefix)
}

// SupportsContains reports whether the device store can substring-match a
// field. Only names, locations and custom fields support it; everything else
// falls back to exact matching.
func SupportsContains(field string) bool {
	return field == "name" || field == "location" || IsCustomField(field)
}

// FieldLabel returns the display label for a field value, or the value
// itself when the catalog does not list it.
func (c *Catalog) FieldLabel(value string) string {
	return label(c.Fields, value)
}

// OperatorLabel returns the display label for an operator value, or the
// value itself when the catalog does not list it.
func (c *Catalog) OperatorLabel(value string) string {
	return label(c.Operators, value)
}

func label(options []Option, value string) string {
	for _, opt := range options {
		if opt.Value == value {
			return opt.Label
		}
	}
	return value
}
