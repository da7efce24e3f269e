// Package lighting defines the scene's light sources.
package lighting

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/stillroom/deskscene/internal/engine/shader"
)

// MaxLights is the number of light sources the shader supports.
const MaxLights = 4

// LightSource is a positional light with Phong color terms.
type LightSource struct {
	Position          mgl32.Vec3
	AmbientColor      mgl32.Vec3
	DiffuseColor      mgl32.Vec3
	SpecularColor     mgl32.Vec3
	FocalStrength     float32
	SpecularIntensity float32
}

// DeskLights returns the four hand-placed lights for the desk scene:
// two warm uppers, a center overhead, and a fill light.
func DeskLights() [MaxLights]LightSource {
	return [MaxLights]LightSource{
		{
			// Upper right
			Position:          mgl32.Vec3{10.0, 10.0, 10.0},
			AmbientColor:      mgl32.Vec3{0.10, 0.09, 0.08},
			DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
			FocalStrength:     12.0,
			SpecularIntensity: 0.002,
		},
		{
			// Upper left, by the light fixture
			Position:          mgl32.Vec3{-10.0, 10.4, -9.5},
			AmbientColor:      mgl32.Vec3{0.12, 0.09, 0.08},
			DiffuseColor:      mgl32.Vec3{0.35, 0.33, 0.30},
			SpecularColor:     mgl32.Vec3{0.3, 0.3, 1.0},
			FocalStrength:     2.0,
			SpecularIntensity: 0.02,
		},
		{
			// Center overhead
			Position:          mgl32.Vec3{0.0, 10.0, 0.0},
			AmbientColor:      mgl32.Vec3{0.10, 0.09, 0.08},
			DiffuseColor:      mgl32.Vec3{0.3, 0.3, 0.3},
			SpecularColor:     mgl32.Vec3{0.1, 1.0, 1.0},
			FocalStrength:     54.0,
			SpecularIntensity: 0.01,
		},
		{
			// Fill light
			Position:          mgl32.Vec3{10.0, 0.0, -10.0},
			AmbientColor:      mgl32.Vec3{0.10, 0.09, 0.08},
			DiffuseColor:      mgl32.Vec3{0.35, 0.33, 0.30},
			SpecularColor:     mgl32.Vec3{1.0, 1.0, 1.0},
			FocalStrength:     16.0,
			SpecularIntensity: 0.015,
		},
	}
}

// Apply publishes the light sources and enables lit rendering.
func Apply(s shader.UniformSetter, lights [MaxLights]LightSource) {
	s.SetBool("bUseLighting", true)

	for i, light := range lights {
		prefix := fmt.Sprintf("lightSources[%d].", i)
		s.SetVec3(prefix+"position", light.Position)
		s.SetVec3(prefix+"ambientColor", light.AmbientColor)
		s.SetVec3(prefix+"diffuseColor", light.DiffuseColor)
		s.SetVec3(prefix+"specularColor", light.SpecularColor)
		s.SetFloat(prefix+"focalStrength", light.FocalStrength)
		s.SetFloat(prefix+"specularIntensity", light.SpecularIntensity)
	}
}
