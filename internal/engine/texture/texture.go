package texture

import (
	"fmt"
	"image"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/stillroom/deskscene/internal/logger"
)

// CreateFromImage uploads RGBA pixels as a GL texture with repeat wrapping,
// linear filtering and generated mipmaps. Returns the texture object.
func CreateFromImage(img *image.RGBA) uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	gl.BindTexture(gl.TEXTURE_2D, id)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	bounds := img.Bounds()
	gl.TexImage2D(
		gl.TEXTURE_2D,
		0,
		gl.RGBA8,
		int32(bounds.Dx()),
		int32(bounds.Dy()),
		0,
		gl.RGBA,
		gl.UNSIGNED_BYTE,
		unsafe.Pointer(&img.Pix[0]),
	)
	gl.GenerateMipmap(gl.TEXTURE_2D)
	gl.BindTexture(gl.TEXTURE_2D, 0)

	return id
}

// Load decodes an image file, uploads it and registers it under tag.
// Failures are logged; the caller may continue loading the rest of the scene.
func Load(reg *Registry, path, tag string) error {
	img, err := DecodeFile(path)
	if err != nil {
		logger.Error("failed to load texture",
			zap.String("path", path),
			zap.String("tag", tag),
			zap.Error(err),
		)
		return fmt.Errorf("loading texture %q: %w", tag, err)
	}

	id := CreateFromImage(img)
	if err := reg.Add(id, tag); err != nil {
		gl.DeleteTextures(1, &id)
		logger.Error("failed to register texture", zap.String("tag", tag), zap.Error(err))
		return err
	}

	bounds := img.Bounds()
	logger.Info("texture loaded",
		zap.String("path", path),
		zap.String("tag", tag),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()),
	)
	return nil
}

// BindAll binds every registered texture to its texture unit, in slot order.
func BindAll(reg *Registry) {
	for slot, e := range reg.Entries() {
		gl.ActiveTexture(gl.TEXTURE0 + uint32(slot))
		gl.BindTexture(gl.TEXTURE_2D, e.ID)
	}
}

// DestroyAll deletes every registered texture object.
func DestroyAll(reg *Registry) {
	for _, e := range reg.Entries() {
		id := e.ID
		gl.DeleteTextures(1, &id)
	}
	reg.entries = reg.entries[:0]
}
