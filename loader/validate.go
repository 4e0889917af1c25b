package loader

import (
	"fmt"
	"strings"
)

// ValidationError collects all validation errors.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed with %d error(s):\n  %s",
		len(e.Errors), strings.Join(e.Errors, "\n  "))
}

// validate checks restaurant handles and the references to them.
func validate(w *World) error {
	var errs []string

	known := map[string]bool{}
	for _, r := range w.Restaurants {
		if r.Key == "" {
			errs = append(errs, "restaurant with empty key")
			continue
		}
		if known[r.Key] {
			errs = append(errs, fmt.Sprintf("duplicate restaurant key %q", r.Key))
		}
		known[r.Key] = true
		if r.Name == "" {
			errs = append(errs, fmt.Sprintf("restaurant %q has no name", r.Key))
		}
		if r.Rating < 0 || r.Rating > 5 {
			errs = append(errs, fmt.Sprintf("restaurant %q: rating %.1f out of range 0..5", r.Key, r.Rating))
		}
	}

	for _, item := range w.Items {
		if !known[item.Restaurant] {
			errs = append(errs, fmt.Sprintf("menu item %q references unknown restaurant %q", item.Name, item.Restaurant))
		}
		if item.Name == "" {
			errs = append(errs, fmt.Sprintf("menu item at restaurant %q has no name", item.Restaurant))
		}
		if item.Price != nil && *item.Price < 0 {
			errs = append(errs, fmt.Sprintf("menu item %q: negative price", item.Name))
		}
	}

	for _, rv := range w.Reviews {
		if !known[rv.Restaurant] {
			errs = append(errs, fmt.Sprintf("review references unknown restaurant %q", rv.Restaurant))
		}
		if rv.Rating < 0 || rv.Rating > 5 {
			errs = append(errs, fmt.Sprintf("review of %q: rating %.1f out of range 0..5", rv.Restaurant, rv.Rating))
		}
	}

	for _, o := range w.Orders {
		if !known[o.Restaurant] {
			errs = append(errs, fmt.Sprintf("order references unknown restaurant %q", o.Restaurant))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
