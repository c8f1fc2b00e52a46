package game

import (
	"fmt"
	"image"
	"image/draw"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// glOffset converts a byte offset to unsafe.Pointer for OpenGL VBO offset params.
func glOffset(n int) unsafe.Pointer { return unsafe.Pointer(uintptr(n)) }

// Floats per vertex: pos(2) + uv(2) + color(4).
const vertexFloats = 8

// Texture is an uploaded GL texture with its pixel size.
type Texture struct {
	ID   uint32
	W, H int
}

type Renderer struct {
	prog uint32
	vao  uint32
	vbo  uint32

	uResolution int32
	uTex        int32

	// Quads queued against batchTex, drawn on texture change or Flush.
	batch    []float32
	batchTex uint32

	textures []uint32

	// Font/text rendering.
	fontTex Texture
}

func NewRenderer() (*Renderer, error) {
	prog, err := linkProgram(quadVertSrc, quadFragSrc)
	if err != nil {
		return nil, fmt.Errorf("quad program: %w", err)
	}
	r := &Renderer{
		prog:  prog,
		batch: make([]float32, 0, MaxBatchQuads*6*vertexFloats),
	}

	gl.UseProgram(prog)
	r.uResolution = gl.GetUniformLocation(prog, gl.Str("uResolution\x00"))
	r.uTex = gl.GetUniformLocation(prog, gl.Str("uTex\x00"))
	gl.Uniform1i(r.uTex, 0)

	var vao, vbo uint32
	gl.GenVertexArrays(1, &vao)
	gl.GenBuffers(1, &vbo)
	gl.BindVertexArray(vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, vbo)

	stride := int32(vertexFloats * 4)
	gl.BufferData(gl.ARRAY_BUFFER, MaxBatchQuads*6*int(stride), nil, gl.STREAM_DRAW)
	gl.EnableVertexAttribArray(0) // aPos
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, stride, glOffset(0))
	gl.EnableVertexAttribArray(1) // aUV
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, glOffset(2*4))
	gl.EnableVertexAttribArray(2) // aColor
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, stride, glOffset(4*4))
	r.vao = vao
	r.vbo = vbo

	gl.BindVertexArray(0)
	return r, nil
}

func (r *Renderer) Destroy() {
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.prog != 0 {
		gl.DeleteProgram(r.prog)
	}
	for _, id := range r.textures {
		gl.DeleteTextures(1, &id)
	}
	r.textures = nil
}

// UploadTexture copies img into a new GL texture.
func (r *Renderer) UploadTexture(img image.Image, filter int32) Texture {
	b := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok || nrgba.Stride != b.Dx()*4 || b.Min != (image.Point{}) {
		nrgba = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(nrgba, nrgba.Bounds(), img, b.Min, draw.Src)
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, filter)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8,
		int32(b.Dx()), int32(b.Dy()), 0,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(nrgba.Pix))

	r.textures = append(r.textures, tex)
	return Texture{ID: tex, W: b.Dx(), H: b.Dy()}
}

// BeginFrame clears the framebuffer. Drawing happens in logical
// WindowWidth x WindowHeight pixels regardless of framebuffer size.
func (r *Renderer) BeginFrame(fbW, fbH int) {
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	cr, cg, cb := Palette.Clear.floats()
	gl.ClearColor(cr, cg, cb, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	gl.UseProgram(r.prog)
	gl.Uniform2f(r.uResolution, float32(WindowWidth), float32(WindowHeight))
	r.batch = r.batch[:0]
	r.batchTex = 0
}

// DrawQuad queues a textured quad covering (x, y, w, h) in logical pixels
// sampling the UV rectangle (u0, v0)-(u1, v1).
func (r *Renderer) DrawQuad(tex uint32, x, y, w, h, u0, v0, u1, v1 float32, col RGB) {
	if tex != r.batchTex || len(r.batch) >= MaxBatchQuads*6*vertexFloats {
		r.Flush()
		r.batchTex = tex
	}
	cr, cg, cb := col.floats()

	// Two triangles: TL, TR, BL then TR, BR, BL.
	r.batch = append(r.batch,
		x, y, u0, v0, cr, cg, cb, 1,
		x+w, y, u1, v0, cr, cg, cb, 1,
		x, y+h, u0, v1, cr, cg, cb, 1,
		x+w, y, u1, v0, cr, cg, cb, 1,
		x+w, y+h, u1, v1, cr, cg, cb, 1,
		x, y+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawTexture queues the whole texture at (x, y) with its own size.
func (r *Renderer) DrawTexture(t Texture, x, y float64) {
	r.DrawQuad(t.ID, float32(x), float32(y), float32(t.W), float32(t.H), 0, 0, 1, 1, Palette.Tint)
}

// Flush draws all queued quads and clears the batch.
func (r *Renderer) Flush() {
	if len(r.batch) == 0 {
		return
	}

	gl.UseProgram(r.prog)
	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, r.batchTex)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	count := len(r.batch) / vertexFloats
	gl.BufferData(gl.ARRAY_BUFFER, len(r.batch)*4, gl.Ptr(r.batch), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(count))

	gl.Disable(gl.BLEND)
	r.batch = r.batch[:0]
}
