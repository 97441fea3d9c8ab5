// Package validation checks configuration and command-line values.
//
// Struct tag validation (go-playground/validator) covers configuration
// structs; the programmatic Validator covers values resolved at run time,
// such as the histogram bin count taken from the command line.
//
// # Struct Tag Validation
//
//	type HistConfig struct {
//	    Bins int `mapstructure:"bins" validate:"min=1"`
//	}
//	err := validation.Validate(cfg)
//
// # Programmatic Validation
//
//	v := validation.New()
//	v.Min("bin_count", bins, 1)
//	err := v.Validate()
package validation
