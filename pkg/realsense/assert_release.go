//go:build !debug

package realsense

const debugAssertions = false
