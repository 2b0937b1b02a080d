package annotations

import (
	"fmt"
	"unicode"
)

// Parameter names accepted by the overrides annotation
const (
	ParamAll  = "All"
	ParamName = "Name"
)

// ValidateGoIdentifier validates that a value is a legal exported Go identifier
func ValidateGoIdentifier(v interface{}) error {
	name, ok := v.(string)
	if !ok {
		return fmt.Errorf("must be a string, got %T", v)
	}
	if name == "" {
		return fmt.Errorf("identifier cannot be empty")
	}
	for i, r := range name {
		if i == 0 {
			if !unicode.IsLetter(r) && r != '_' {
				return fmt.Errorf("identifier must start with a letter, got '%s'", name)
			}
			continue
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return fmt.Errorf("'%s' is not a valid Go identifier", name)
		}
	}
	if !unicode.IsUpper([]rune(name)[0]) {
		return fmt.Errorf("interface name '%s' must be exported (start with an uppercase letter)", name)
	}
	return nil
}

// AllParameterSpec returns the standard All parameter specification.
// All selects the inclusion mode: true (default) includes every exported
// method unless skipped, false includes only methods marked overwrite.
func AllParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:         BoolType,
		Required:     false,
		DefaultValue: true,
		Description:  "Include all exported methods by default (true) or none (false)",
	}
}

// NameParameterSpec returns the standard Name parameter specification
func NameParameterSpec() ParameterSpec {
	return ParameterSpec{
		Type:        StringType,
		Required:    false,
		Description: "Custom name for the generated interface (defaults to <Type>Overrides)",
		Validator:   ValidateGoIdentifier,
	}
}
