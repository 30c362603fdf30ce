// Package testutil provides utilities for testing helpex components.
//
// Key components:
//   - TestEnvironment: points every helpex directory into a temp dir and
//     fixes the terminal width, so commands run fully isolated
//   - CreateFile / CreateDir / AssertFileContent: small filesystem helpers
//
// Usage guidelines:
//   - All test data should be defined inline, not in external files
//   - Each test should be completely isolated with no shared state
package testutil
