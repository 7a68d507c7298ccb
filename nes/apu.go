package nes

import "math"

// APU is an explicit placeholder for the NES's audio unit: real channel
// synthesis (pulse/triangle/noise/DMC) is out of scope for this repo
// (see SPEC_FULL.md §4.8 Non-goals), but something has to keep the
// host's audio stream fed so a -mute-less run doesn't starve PortAudio's
// buffer. It has no registers: CPU writes to $4000-$4017 are ignored by
// Console.Write. It emits a fixed 440Hz tone for as long as the console
// runs.
type APU struct {
	out    chan float32
	sample int
}

func NewAPU() *APU {
	return &APU{}
}

const apuSampleRate = 44100

// Step is called once per CPU cycle, same as real channel timers would
// be, but the placeholder tone generator doesn't need that resolution:
// it just advances a sample counter and pushes the next point on a
// fixed 440Hz sine wave, non-blocking so a full host buffer never
// stalls emulation.
func (a *APU) Step() {
	if a.out == nil {
		return
	}
	x := float32(math.Sin(2.0 * math.Pi * 440 * float64(a.sample) / float64(apuSampleRate)))
	select {
	case a.out <- x: // left
	default:
	}
	select {
	case a.out <- x: // right
	default:
	}
	a.sample++
	if a.sample >= apuSampleRate*10 {
		a.sample = 0
	}
}

// SetAudioOut wires the sample stream the host's PortAudio callback
// drains.
func (a *APU) SetAudioOut(c chan float32) {
	a.out = c
}
