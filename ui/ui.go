// Package ui is the host shell: it owns the window, the OpenGL texture
// the PPU's picture is blitted into, keyboard-to-button mapping, and the
// audio output stream. None of it is part of the emulator core (spec.md
// §1 Non-goals) — it only drives the core's public Console API.
package ui

import (
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/golang/glog"

	"github.com/jyane/naanes-core/nes"
)

// Start opens a window sized width x height and runs console until the
// window is closed, presenting one OpenGL texture update per completed
// PPU frame and polling WASD+JFGH for controller input every frame.
func Start(console *nes.Console, width int, height int, mute bool) {
	if err := glfw.Init(); err != nil {
		glog.Fatalln(err)
	}
	defer glfw.Terminate()
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	window, err := glfw.CreateWindow(width, height, "naanes", nil, nil)
	if err != nil {
		glog.Fatalln(err)
	}
	window.MakeContextCurrent()
	if err := gl.Init(); err != nil {
		glog.Fatalln(err)
	}
	program, err := newProgram()
	if err != nil {
		glog.Fatalln(err)
	}
	gl.UseProgram(program)

	var a *audio
	if !mute {
		a = newAudio()
		if err := a.start(); err != nil {
			glog.Errorf("audio disabled: %v", err)
			a = nil
		} else {
			console.SetAudioOut(a.channel)
			defer a.terminate()
		}
	}

	for !window.ShouldClose() {
		time.Sleep(time.Millisecond)
		if _, err := console.Step(); err != nil {
			glog.Fatalln(err)
		}
		if picture, ok := console.Frame(); ok {
			updateTexture(program, picture)
			console.SetButtons(getKeys(window))
			window.SwapBuffers()
			glfw.PollEvents()
		}
	}
}
