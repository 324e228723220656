// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core
// business logic.
type Dependencies struct {
	// Cache provides byte-level caching for response memoization.
	Cache Cache

	// HTTPClient provides HTTP request functionality.
	HTTPClient HTTPClient

	// Logger provides structured logging. May be nil.
	Logger Logger
}
