// This file is part of Gopher2600.
//
// Gopher2600 is free software: you can redistribute it and/or modify
// it under the terms of the gnu general public license as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher2600 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher2600.  If not, see <https://www.gnu.org/licenses/>.

package inspector

import (
	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/inkyblackness/imgui-go/v4"
)

// glsl is a minimal OpenGL 3.2 core-profile renderer for imgui draw data:
// one shader program, a dynamically resized vertex/index buffer pair and
// an orthographic projection rebuilt every frame. Grounded on the
// texture-upload conventions in the teacher's screen.go (gl.GenTextures /
// gl.TexImage2D / gl.TEXTURE_2D filtering) and extended to cover draw-list
// submission, since the teacher's own draw-data renderer file was not
// present in the retrieval pack.
type glsl struct {
	program       uint32
	vao, vbo, ebo uint32
	texture       uint32
	attribProj    int32
	attribTex     int32
	attribPos     uint32
	attribUV      uint32
	attribCol     uint32
}

const vertexShaderSrc = `#version 150
uniform mat4 ProjMtx;
in vec2 Position;
in vec2 UV;
in vec4 Color;
out vec2 Frag_UV;
out vec4 Frag_Color;
void main() {
	Frag_UV = UV;
	Frag_Color = Color;
	gl_Position = ProjMtx * vec4(Position.xy, 0, 1);
}
` + "\x00"

const fragmentShaderSrc = `#version 150
uniform sampler2D Texture;
in vec2 Frag_UV;
in vec4 Frag_Color;
out vec4 Out_Color;
void main() {
	Out_Color = Frag_Color * texture(Texture, Frag_UV.st);
}
` + "\x00"

func newGlsl(io imgui.IO) (*glsl, error) {
	r := &glsl{}

	vs := compileShader(gl.VERTEX_SHADER, vertexShaderSrc)
	fs := compileShader(gl.FRAGMENT_SHADER, fragmentShaderSrc)

	r.program = gl.CreateProgram()
	gl.AttachShader(r.program, vs)
	gl.AttachShader(r.program, fs)
	gl.LinkProgram(r.program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	r.attribProj = gl.GetUniformLocation(r.program, gl.Str("ProjMtx\x00"))
	r.attribTex = gl.GetUniformLocation(r.program, gl.Str("Texture\x00"))
	r.attribPos = uint32(gl.GetAttribLocation(r.program, gl.Str("Position\x00")))
	r.attribUV = uint32(gl.GetAttribLocation(r.program, gl.Str("UV\x00")))
	r.attribCol = uint32(gl.GetAttribLocation(r.program, gl.Str("Color\x00")))

	gl.GenBuffers(1, &r.vbo)
	gl.GenBuffers(1, &r.ebo)
	gl.GenVertexArrays(1, &r.vao)

	fonts := io.Fonts()
	image := fonts.TextureDataAlpha8()
	gl.GenTextures(1, &r.texture)
	gl.BindTexture(gl.TEXTURE_2D, r.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RED, int32(image.Width), int32(image.Height),
		0, gl.RED, gl.UNSIGNED_BYTE, image.Pixels)
	fonts.SetTextureID(imgui.TextureID(r.texture))

	return r, nil
}

func compileShader(kind uint32, src string) uint32 {
	shader := gl.CreateShader(kind)
	csrc, free := gl.Strs(src)
	gl.ShaderSource(shader, 1, csrc, nil)
	free()
	gl.CompileShader(shader)
	return shader
}

// render submits imgui's draw data through the pipeline set up in newGlsl.
func (r *glsl) render(displaySize [2]float32, drawData imgui.DrawData) {
	gl.Enable(gl.BLEND)
	gl.BlendEquation(gl.FUNC_ADD)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.SCISSOR_TEST)

	gl.Viewport(0, 0, int32(displaySize[0]), int32(displaySize[1]))

	ortho := orthographic(0, displaySize[0], displaySize[1], 0)

	gl.UseProgram(r.program)
	gl.Uniform1i(r.attribTex, 0)
	gl.UniformMatrix4fv(r.attribProj, 1, false, &ortho[0])
	gl.BindVertexArray(r.vao)
	gl.ActiveTexture(gl.TEXTURE0)

	drawData.ScaleClipRects(imgui.Vec2{X: 1, Y: 1})

	for _, list := range drawData.CommandLists() {
		vbuf, vsz := list.VertexBuffer()
		ibuf, isz := list.IndexBuffer()

		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
		gl.BufferData(gl.ARRAY_BUFFER, vsz, vbuf, gl.STREAM_DRAW)
		gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, r.ebo)
		gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, isz, ibuf, gl.STREAM_DRAW)

		gl.EnableVertexAttribArray(r.attribPos)
		gl.EnableVertexAttribArray(r.attribUV)
		gl.EnableVertexAttribArray(r.attribCol)

		vertexSize, vertexOffsetPos, vertexOffsetUV, vertexOffsetCol := imgui.VertexBufferLayout()
		gl.VertexAttribPointer(r.attribPos, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetPos))
		gl.VertexAttribPointer(r.attribUV, 2, gl.FLOAT, false, int32(vertexSize), gl.PtrOffset(vertexOffsetUV))
		gl.VertexAttribPointerWithOffset(r.attribCol, 4, gl.UNSIGNED_BYTE, true, int32(vertexSize), uintptr(vertexOffsetCol))

		indexSize := imgui.IndexBufferLayout()
		var indexType uint32 = gl.UNSIGNED_SHORT
		if indexSize == 4 {
			indexType = gl.UNSIGNED_INT
		}

		for _, cmd := range list.Commands() {
			if cmd.HasUserCallback() {
				continue
			}
			clip := cmd.ClipRect()
			gl.Scissor(int32(clip.X), int32(displaySize[1]-clip.W), int32(clip.Z-clip.X), int32(clip.W-clip.Y))
			gl.BindTexture(gl.TEXTURE_2D, uint32(cmd.TextureID()))
			gl.DrawElements(gl.TRIANGLES, int32(cmd.ElementCount()), indexType, gl.PtrOffset(0))
		}
	}

	gl.Disable(gl.SCISSOR_TEST)
}

// orthographic builds a column-major orthographic projection matrix
// equivalent to the one imgui's own OpenGL3 backends use.
func orthographic(left, right, bottom, top float32) [16]float32 {
	return [16]float32{
		2.0 / (right - left), 0, 0, 0,
		0, 2.0 / (top - bottom), 0, 0,
		0, 0, -1, 0,
		(right + left) / (left - right), (top + bottom) / (bottom - top), 0, 1,
	}
}

func (r *glsl) destroy() {
	gl.DeleteTextures(1, &r.texture)
	gl.DeleteBuffers(1, &r.vbo)
	gl.DeleteBuffers(1, &r.ebo)
	gl.DeleteVertexArrays(1, &r.vao)
	gl.DeleteProgram(r.program)
}
