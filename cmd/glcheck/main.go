// Command glcheck opens a bare OpenGL 4.1 core context, reports the driver
// strings and draws a single quad. Run it when the viewer fails to start to
// separate driver problems from scene problems.
package main

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	windowWidth  = 480
	windowHeight = 360
)

func init() {
	runtime.LockOSThread()
}

func main() {
	if err := glfw.Init(); err != nil {
		panic(err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.False)

	window, err := glfw.CreateWindow(windowWidth, windowHeight, "glcheck", nil, nil)
	if err != nil {
		panic(err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(0)

	if err := gl.Init(); err != nil {
		panic(err)
	}

	fmt.Printf("GL_VERSION:  %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Printf("GL_RENDERER: %s\n", gl.GoStr(gl.GetString(gl.RENDERER)))
	fmt.Printf("GL_VENDOR:   %s\n", gl.GoStr(gl.GetString(gl.VENDOR)))
	fmt.Printf("GLSL:        %s\n", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))

	vertexSrc := `#version 410 core
layout(location = 0) in vec2 position;
void main() {
	gl_Position = vec4(position, 0.0, 1.0);
}` + "\x00"

	fragmentSrc := `#version 410 core
out vec4 fragColor;
void main() {
	fragColor = vec4(0.3, 0.9, 0.3, 1.0);
}` + "\x00"

	program, err := newProgram(vertexSrc, fragmentSrc)
	if err != nil {
		panic(err)
	}
	defer gl.DeleteProgram(program)

	// A quad from two triangles, the footprint of one block face
	vertices := []float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.5, 0.5,
		0.5, 0.5,
		-0.5, 0.5,
		-0.5, -0.5,
	}

	var vao uint32
	gl.GenVertexArrays(1, &vao)
	gl.BindVertexArray(vao)

	var vbo uint32
	gl.GenBuffers(1, &vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 0, gl.PtrOffset(0))

	gl.ClearColor(0.2, 0.3, 0.3, 1.0)

	gl.UseProgram(program)
	gl.BindVertexArray(vao)

	frames := 0
	last := time.Now()

	for !window.ShouldClose() {
		if window.GetKey(glfw.KeyEscape) == glfw.Press {
			window.SetShouldClose(true)
		}

		gl.Clear(gl.COLOR_BUFFER_BIT)
		gl.DrawArrays(gl.TRIANGLES, 0, 6)

		window.SwapBuffers()
		glfw.PollEvents()

		frames++
		if time.Since(last) >= time.Second {
			fmt.Printf("FPS: %d\n", frames)
			frames = 0
			last = time.Now()
		}
	}

	gl.DeleteBuffers(1, &vbo)
	gl.DeleteVertexArrays(1, &vao)
}

// newProgram compiles both stages and links them into a program.
func newProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	v, err := compileStage(gl.VERTEX_SHADER, vertexSrc)
	if err != nil {
		return 0, err
	}
	f, err := compileStage(gl.FRAGMENT_SHADER, fragmentSrc)
	if err != nil {
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, v)
	gl.AttachShader(program, f)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetProgramInfoLog(program, logLength, nil, &log[0])
		return 0, fmt.Errorf("program link error: %s", string(log))
	}

	gl.DeleteShader(v)
	gl.DeleteShader(f)
	return program, nil
}

func compileStage(stage uint32, src string) (uint32, error) {
	shader := gl.CreateShader(stage)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := make([]byte, logLength+1)
		gl.GetShaderInfoLog(shader, logLength, nil, &log[0])
		return 0, fmt.Errorf("shader compile error: %s", string(log))
	}
	return shader, nil
}
