// Package scene builds and renders the 3D desk scene.
package scene

import (
	"path/filepath"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/stillroom/deskscene/internal/engine/lighting"
	"github.com/stillroom/deskscene/internal/engine/material"
	"github.com/stillroom/deskscene/internal/engine/mesh"
	"github.com/stillroom/deskscene/internal/engine/shader"
	"github.com/stillroom/deskscene/internal/engine/texture"
	"github.com/stillroom/deskscene/internal/logger"
)

// Manager owns the desk scene's GPU resources and draws them each frame.
type Manager struct {
	shader     shader.UniformSetter
	textures   *texture.Registry
	materials  *material.Registry
	meshes     *mesh.Library
	textureDir string
}

// NewManager creates a scene manager publishing uniforms through s.
// Texture files are resolved relative to textureDir.
func NewManager(s shader.UniformSetter, textureDir string) *Manager {
	return &Manager{
		shader:     s,
		textures:   texture.NewRegistry(),
		materials:  material.NewRegistry(),
		meshes:     mesh.NewLibrary(),
		textureDir: textureDir,
	}
}

// PrepareScene loads every mesh, texture, material, and light the scene
// needs. Call once after the GL context is live, before the first frame.
func (m *Manager) PrepareScene() {
	m.defineMaterials()
	m.setupSceneLights()
	m.loadSceneTextures()

	m.meshes.LoadPlane()
	m.meshes.LoadBox()
	m.meshes.LoadCylinder()
	m.meshes.LoadTorus()

	texture.BindAll(m.textures)

	logger.Info("scene prepared",
		zap.Int("textures", m.textures.Len()),
		zap.Int("materials", m.materials.Len()),
	)
}

// Destroy releases the scene's GPU resources.
func (m *Manager) Destroy() {
	m.meshes.Destroy()
	texture.DestroyAll(m.textures)
}

// defineMaterials registers the reflectance settings the draw calls
// reference by tag.
func (m *Manager) defineMaterials() {
	m.materials.Add(material.Material{
		Tag:             "gold",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.1},
		AmbientStrength: 0.4,
		DiffuseColor:    mgl32.Vec3{0.3, 0.3, 0.2},
		SpecularColor:   mgl32.Vec3{0.6, 0.5, 0.4},
		Shininess:       22.0,
	})
	m.materials.Add(material.Material{
		Tag:             "cement",
		AmbientColor:    mgl32.Vec3{0.2, 0.2, 0.2},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.5, 0.5, 0.5},
		SpecularColor:   mgl32.Vec3{0.4, 0.4, 0.4},
		Shininess:       0.5,
	})
	m.materials.Add(material.Material{
		Tag:             "wood",
		AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
		SpecularColor:   mgl32.Vec3{0.1, 0.1, 0.1},
		Shininess:       0.5,
	})
	m.materials.Add(material.Material{
		Tag:             "tile",
		AmbientColor:    mgl32.Vec3{0.2, 0.3, 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
		SpecularColor:   mgl32.Vec3{0.4, 0.5, 0.6},
		Shininess:       25.0,
	})
	m.materials.Add(material.Material{
		Tag:             "glass",
		AmbientColor:    mgl32.Vec3{0.4, 0.4, 0.4},
		AmbientStrength: 0.3,
		DiffuseColor:    mgl32.Vec3{0.4, 0.4, 0.5},
		SpecularColor:   mgl32.Vec3{0.6, 0.6, 0.6},
		Shininess:       85.0,
	})
	m.materials.Add(material.Material{
		Tag:             "clay",
		AmbientColor:    mgl32.Vec3{0.4, 0.3, 0.1},
		AmbientStrength: 0.2,
		DiffuseColor:    mgl32.Vec3{0.3, 0.2, 0.1},
		SpecularColor:   mgl32.Vec3{0.4, 0.5, 0.6},
		Shininess:       0.5,
	})
}

// setupSceneLights publishes the hand-placed lights once; they do not
// change over the scene's lifetime.
func (m *Manager) setupSceneLights() {
	lighting.Apply(m.shader, lighting.DeskLights())
}

// loadSceneTextures loads every image the scene references. A failed
// load is logged and skipped so the rest of the scene still renders;
// draws against the missing tag keep whatever color or texture binding
// the previous object set.
func (m *Manager) loadSceneTextures() {
	files := []struct {
		file string
		tag  string
	}{
		{"pavers.jpg", "floor"},
		{"dirty.jpg", "floor2"},
		{"rusticwood.jpg", "plank"},
		{"stainless.jpg", "desk"},
		{"slimBrick.jpg", "bDrop"},
		{"book011.jpg", "Book5"},
		{"book022.jpg", "Books"},
		{"plastic.jpg", "plastic"},
		{"Mons2.jpg", "screen"},
		{"rusticwood.jpg", "wood"},
		{"kb1.jpg", "KB1"},
		{"tuckersoft.jpg", "poster"},
	}

	for _, f := range files {
		path := filepath.Join(m.textureDir, f.file)
		if err := texture.Load(m.textures, path, f.tag); err != nil {
			logger.Warn("skipping texture",
				zap.String("tag", f.tag),
				zap.Error(err),
			)
		}
	}
}

// SetTransformations composes and publishes the model matrix:
// translation, then X/Y/Z rotations, then scale. Angles are degrees.
func (m *Manager) SetTransformations(
	scale mgl32.Vec3,
	rotXDeg, rotYDeg, rotZDeg float32,
	position mgl32.Vec3,
) {
	model := mgl32.Translate3D(position.X(), position.Y(), position.Z()).
		Mul4(mgl32.HomogRotate3DX(mgl32.DegToRad(rotXDeg))).
		Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(rotYDeg))).
		Mul4(mgl32.HomogRotate3DZ(mgl32.DegToRad(rotZDeg))).
		Mul4(mgl32.Scale3D(scale.X(), scale.Y(), scale.Z()))

	m.shader.SetMat4("model", model)
}

// SetShaderColor switches the shader to flat-color mode.
func (m *Manager) SetShaderColor(r, g, b, a float32) {
	m.shader.SetBool("bUseTexture", false)
	m.shader.SetVec4("objectColor", mgl32.Vec4{r, g, b, a})
}

// SetShaderTexture switches the shader to textured mode, sampling the
// texture registered under tag. Unknown tags leave the shader in
// whatever mode the previous call set.
func (m *Manager) SetShaderTexture(tag string) {
	slot := m.textures.FindSlot(tag)
	if slot < 0 {
		logger.Warn("texture tag not loaded", zap.String("tag", tag))
		return
	}
	m.shader.SetBool("bUseTexture", true)
	m.shader.SetSampler("objectTexture", int32(slot))
}

// SetTextureUVScale sets the texture coordinate multiplier.
func (m *Manager) SetTextureUVScale(u, v float32) {
	m.shader.SetVec2("UVscale", mgl32.Vec2{u, v})
}

// SetShaderMaterial publishes the material registered under tag.
// Unknown tags keep the previous material.
func (m *Manager) SetShaderMaterial(tag string) {
	mat, ok := m.materials.Find(tag)
	if !ok {
		logger.Warn("material tag not defined", zap.String("tag", tag))
		return
	}
	m.shader.SetVec3("material.ambientColor", mat.AmbientColor)
	m.shader.SetFloat("material.ambientStrength", mat.AmbientStrength)
	m.shader.SetVec3("material.diffuseColor", mat.DiffuseColor)
	m.shader.SetVec3("material.specularColor", mat.SpecularColor)
	m.shader.SetFloat("material.shininess", mat.Shininess)
}
