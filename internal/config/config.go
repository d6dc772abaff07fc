package config

// this holds the resolved configuration values from CLI
var (
	File              string  // path of the track catalog
	HalfWidth         float64 // half the width of a track
	SamplesPerSegment int     // boundary samples per curve segment
	LogLevel          string  // zap log level
	Width             int     // width of rendered images, in pixels
	Height            int     // height of rendered images, in pixels
	Zoom              float64 // pixels per world unit
)
