package errors

import (
	"maps"
	"slices"
)

// ErrorTemplate defines a registered error type.
type ErrorTemplate struct {
	Category Category
	Message  string
	Detail   string
}

// registry maps error codes to their templates.
var registry = map[string]ErrorTemplate{
	// ============================================
	// Reactive Errors (E100-E119)
	// ============================================

	"E101": {
		Category: CategoryRange,
		Message:  "List index out of range",
		Detail:   "The index passed to a list mutation is outside the valid range for that operation.",
	},
	"E102": {
		Category: CategoryRuntime,
		Message:  "Nil reactive source",
		Detail:   "A nil reactive value was passed where a source is required.",
	},

	// ============================================
	// Render Node Errors (E200-E239)
	// ============================================

	"E201": {
		Category: CategoryConfig,
		Message:  "Invalid tag name",
		Detail:   "Element tag names must be non-empty and contain only letters, digits and hyphens, starting with a letter.",
	},
	"E202": {
		Category: CategoryState,
		Message:  "Node already mounted",
		Detail:   "A render node can be mounted once. Build a fresh node for each place it appears.",
	},
	"E203": {
		Category: CategoryConfig,
		Message:  "Invalid attribute name",
		Detail:   "Attribute, property, class and event names must be non-empty and must not contain whitespace, quotes, '=', '<', '>' or '/'.",
	},
	"E204": {
		Category: CategoryConfig,
		Message:  "Void element cannot have children",
		Detail:   "Void elements such as input, br and img have no content model.",
	},
	"E205": {
		Category: CategoryState,
		Message:  "Tree not mounted",
		Detail:   "The tree was never mounted or has already been unmounted.",
	},
	"E206": {
		Category: CategoryConfig,
		Message:  "Nil render node",
		Detail:   "A nil node was passed as a child or returned from a directive builder.",
	},
	"E207": {
		Category: CategoryState,
		Message:  "Repeat out of sync with its list",
		Detail:   "A list diff addressed an item the repeat does not hold.",
	},

	// ============================================
	// Host Document Errors (E240-E259)
	// ============================================

	"E241": {
		Category: CategoryState,
		Message:  "Document mutated from foreign goroutine",
		Detail:   "A document is owned by the goroutine that created it. Route mutations through that goroutine.",
	},
	"E242": {
		Category: CategoryState,
		Message:  "Node not found",
		Detail:   "No element matched the requested path or selector.",
	},

	// ============================================
	// CLI Errors (E140-E159)
	// ============================================

	"E140": {
		Category: CategoryCLI,
		Message:  "Invalid configuration",
		Detail:   "The weave.json file contains invalid JSON or an invalid value.",
	},
	"E141": {
		Category: CategoryCLI,
		Message:  "Unknown demo",
		Detail:   "The requested demo is not registered.",
	},
	"E142": {
		Category: CategoryCLI,
		Message:  "Invalid play script",
		Detail:   "The play script could not be parsed or contains an invalid step.",
	},
	"E143": {
		Category: CategoryCLI,
		Message:  "Export failed",
		Detail:   "The rendered snapshot could not be published.",
	},
	"E144": {
		Category: CategoryConfig,
		Message:  "Configuration file not found",
		Detail:   "No weave.json was found in the given directory.",
	},
	"E145": {
		Category: CategoryRuntime,
		Message:  "Event failed",
		Detail:   "A live event could not be applied to the session's tree.",
	},
	"E146": {
		Category: CategoryCLI,
		Message:  "Command failed",
		Detail:   "The weave command stopped with an error.",
	},
}

// GetAllCodes returns all registered error codes in ascending order.
func GetAllCodes() []string {
	return slices.Sorted(maps.Keys(registry))
}

// GetTemplate returns the template for an error code.
func GetTemplate(code string) (ErrorTemplate, bool) {
	t, ok := registry[code]
	return t, ok
}
