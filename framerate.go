package knotanim

// turntableRate is the playback rate for ModeRotation360. Turntable footage
// is authored at a uniform density, so its rate never varies with length.
const turntableRate = 7

// Rate returns the playback frame rate in frames per second for a sequence
// of frameCount frames in the given mode.
//
// For ModeNormal the rate is a step function of sequence length: longer
// hand-drawn sequences were authored at higher native fidelity and only look
// correct at higher playback rates, while short looped gestures read better
// slowed down. The exact boundaries are a content-calibration contract with
// the shipped assets and must not be re-tuned.
func Rate(frameCount int, mode Mode) int {
	if mode == ModeRotation360 {
		return turntableRate
	}
	switch {
	case frameCount < 20:
		return 4
	case frameCount < 40:
		return 5
	case frameCount < 60:
		return 6
	case frameCount < 80:
		return 7
	case frameCount < 100:
		return 8
	default:
		return 9
	}
}
