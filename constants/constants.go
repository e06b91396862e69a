package constants

import "os"

// MinFrequency is the lowest frequency (Hz) an Arduino tone() call can
// actually produce. Notes below it still get stored, they just won't sound
// right on hardware.
const MinFrequency = 31

const SampleRate = 44100

// RenderGain keeps rendered square waves well below clipping.
const RenderGain = 0.02

const DefaultBPM = 120

func GetRenderDir() string {
	path := os.Getenv("RENDER_PATH")
	if path != "" {
		return path
	}
	return "./out"
}

func GetDbEndpoint() string {
	endpoint := os.Getenv("DB_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}
