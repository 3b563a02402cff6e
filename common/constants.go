package common

// Fallbacks used when a spec leaves a value unset.
const (
	BaseWidth  = 960
	BaseHeight = 540

	// DefaultUpdatesPerSecond is the fixed simulation rate the camera speed
	// is derived from.
	DefaultUpdatesPerSecond = 30
	// DefaultCameraSpeed is in world pixels per second.
	DefaultCameraSpeed = 400.0
)
