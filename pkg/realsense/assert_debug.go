//go:build debug

package realsense

// debugAssertions enables construction-time consistency checks that are too
// expensive or too strict for release builds.
const debugAssertions = true
