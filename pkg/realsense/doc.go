// Package realsense is a safe, typed layer over the librealsense2 device
// streaming API.
//
// The native library hands out raw pointers and reports failures through an
// out-parameter error object. This package wraps every handle in a type that
// knows whether it owns the underlying resource, checks the error object
// after every single native call, and exposes frames as a closed set of typed
// variants so a buffer can never be read through the wrong format.
//
// Ownership rules:
//
//   - A wrapper obtained from a constructor (NewContext, Device.Sensors,
//     composite extraction) owns its handle and releases it on Close.
//   - A wrapper obtained by borrowing from a live object (a frame's stream
//     profile) never releases; the origin object does.
//   - Transfer operations (pipeline start/stop, DetachHandle) move the handle
//     and neuter the source so each native handle is released exactly once.
//
// Wrappers may be moved between goroutines but are not safe for concurrent
// shared use; no internal locking is provided.
//
// Builds without the native library get a stub backend: constructors that
// touch hardware return an error. Build with -tags realsense against an
// installed librealsense2 to stream from real devices.
package realsense
