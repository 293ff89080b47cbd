// Package testutil provides shared test utilities for the site.
//
// # Fixtures
//
//   - SampleImages() - a four-name image cycle with distinct names
//   - SampleHomepage - a minimal homepage with a cat-image element
//   - SampleConfigYAML - a complete site.yaml
//
// # Environment Helpers
//
//   - QuietLogger() - a logger writing to a buffer instead of stderr
//   - WriteTestFile(t, base, path, content) - writes a file in test dir
//   - ShortOperationContext(t) - a context bounded by the test deadline
//
// # Assertions
//
//   - AssertSequence(t, src, want) - drains len(want) names from src
//   - AssertExhausted(t, src, calls) - src returns the empty sentinel
//
// testutil must not import the packages it is used to test.
package testutil
