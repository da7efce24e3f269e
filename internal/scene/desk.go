package scene

import (
	"github.com/go-gl/mathgl/mgl32"
)

// RenderScene draws the full desk scene for the current frame. The view,
// projection, and lighting uniforms are expected to be current already.
func (m *Manager) RenderScene() {
	m.SetTextureUVScale(1.0, 1.0)

	m.renderRoom()
	m.renderTable()
	m.renderBooks()
	m.renderMonitor()
	m.renderKeyboard()
	m.renderLightFixture()
}

// renderRoom draws the floor planes, the backdrop wall, and the poster.
func (m *Manager) renderRoom() {
	// Outer floor
	m.SetTransformations(
		mgl32.Vec3{18.0, 1.0, 7.0},
		0, 0, 0,
		mgl32.Vec3{0.0, -0.2, -2.7},
	)
	m.SetShaderColor(0.1, 0.5, 1.0, 1.0)
	m.SetShaderTexture("wood")
	m.SetShaderMaterial("cement")
	m.meshes.DrawPlane()

	// Paved area under the desk
	m.SetTransformations(
		mgl32.Vec3{5.5, 1.0, 3.0},
		0, 0, 0,
		mgl32.Vec3{0.5, 0.0, -1.5},
	)
	m.SetShaderTexture("floor")
	m.SetShaderMaterial("cement")
	m.meshes.DrawPlane()

	// Backdrop wall, a plane tipped upright
	m.SetTransformations(
		mgl32.Vec3{20.0, 10.2, 8.4},
		90, 0, 0,
		mgl32.Vec3{0.0, 7.0, -10.0},
	)
	m.SetShaderColor(0.2, 1.0, 1.0, 1.0)
	m.SetShaderTexture("bDrop")
	m.SetShaderMaterial("cement")
	m.meshes.DrawPlane()

	// Wall poster
	m.SetTransformations(
		mgl32.Vec3{5.0, 6.2, 0.2},
		0, 0, 0,
		mgl32.Vec3{-10.0, 6.0, -10.0},
	)
	m.SetShaderTexture("poster")
	m.meshes.DrawBox()
}

// renderTable draws the desk top and its two legs with torus trim.
func (m *Manager) renderTable() {
	// Table top
	m.SetTransformations(
		mgl32.Vec3{8.0, 0.4, 3.0},
		0, 0, 0,
		mgl32.Vec3{0.5, 2.5, -2.0},
	)
	m.SetShaderColor(0.5, 1.0, 1.0, 1.0)
	m.SetShaderTexture("wood")
	m.SetShaderMaterial("cement")
	m.meshes.DrawBox()

	// Left leg
	m.SetTransformations(
		mgl32.Vec3{0.5, 2.5, 2.4},
		0, 0, 0,
		mgl32.Vec3{-3.0, 1.0, -2.0},
	)
	m.SetShaderTexture("plank")
	m.SetShaderMaterial("wood")
	m.meshes.DrawBox()

	// Decorative rings on the legs
	for _, x := range []float32{-3.18, 4.18} {
		m.SetTransformations(
			mgl32.Vec3{0.5, 0.5, 0.8},
			0, 90, 0,
			mgl32.Vec3{x, 1.3, -2.0},
		)
		m.SetShaderTexture("screen")
		m.SetShaderMaterial("glass")
		m.meshes.DrawTorus()
	}

	// Right leg
	m.SetTransformations(
		mgl32.Vec3{0.5, 2.9, 2.4},
		0, 0, 0,
		mgl32.Vec3{4.0, 1.0, -2.0},
	)
	m.SetShaderTexture("plank")
	m.SetShaderMaterial("wood")
	m.meshes.DrawBox()
}

// renderBooks draws the stack of five books on the desk. Each layer
// drifts in rotation and footprint so the pile reads as hand-stacked
// rather than machined.
func (m *Manager) renderBooks() {
	yRot := float32(10.0)
	yPos := float32(2.8)
	xPos := float32(-2.5)
	xScale := float32(0.7)
	zScale := float32(0.9)

	for i := 0; i < 5; i++ {
		m.SetTransformations(
			mgl32.Vec3{xScale, 0.1, zScale},
			0, yRot, 0,
			mgl32.Vec3{xPos, yPos, -1.2},
		)

		if i == 4 {
			m.SetShaderTexture("Book5")
		} else {
			m.SetShaderTexture("Books")
		}
		if i%2 == 0 {
			m.SetShaderMaterial("wood")
		} else {
			m.SetShaderMaterial("clay")
		}
		m.meshes.DrawBox()

		yPos += 0.10
		if i%2 == 0 {
			yRot += 4.23
			xScale += 0.13
			zScale += 0.12
		} else {
			yRot -= 1.03
			xScale -= 0.15
			zScale -= 0.10
		}
	}
}

// renderMonitor draws the monitor assembly: base, arm, bracket, body,
// and the screen panel floating just in front of the body.
func (m *Manager) renderMonitor() {
	// Base
	m.SetTransformations(
		mgl32.Vec3{0.8, 0.1, 0.5},
		0, 0, 0,
		mgl32.Vec3{0.5, 2.7, -2.2},
	)
	m.SetShaderTexture("plastic")
	m.SetShaderMaterial("glass")
	m.meshes.DrawCylinder()

	// Arm
	m.SetTransformations(
		mgl32.Vec3{0.3, 2.5, 0.1},
		0, 0, 0,
		mgl32.Vec3{0.5, 3.9, -2.2},
	)
	m.SetShaderTexture("plastic")
	m.SetShaderMaterial("glass")
	m.meshes.DrawBox()

	// Mounting bracket
	m.SetTransformations(
		mgl32.Vec3{0.7, 0.7, 0.09},
		0, 0, 0,
		mgl32.Vec3{0.5, 5.0, -2.09},
	)
	m.SetShaderTexture("plastic")
	m.SetShaderMaterial("wood")
	m.meshes.DrawBox()

	// Monitor body
	m.SetTransformations(
		mgl32.Vec3{4.0, 2.5, 0.2},
		0, 0, 0,
		mgl32.Vec3{0.5, 5.0, -2.0},
	)
	m.SetShaderTexture("plastic")
	m.SetShaderMaterial("cement")
	m.meshes.DrawBox()

	// Screen panel
	m.SetTransformations(
		mgl32.Vec3{3.8, 2.3, 0.08},
		0, 0, 0,
		mgl32.Vec3{0.5, 5.0, -1.9},
	)
	m.SetShaderTexture("screen")
	m.SetShaderMaterial("glass")
	m.meshes.DrawBox()
}

// renderKeyboard draws the tilted keyboard drawer and the keyboard on it.
func (m *Manager) renderKeyboard() {
	// Drawer
	m.SetTransformations(
		mgl32.Vec3{4.3, 0.1, 1.0},
		22, 0, 0,
		mgl32.Vec3{0.5, 2.2, -0.1},
	)
	m.SetShaderTexture("wood")
	m.SetShaderMaterial("wood")
	m.meshes.DrawBox()

	// Keyboard
	m.SetTransformations(
		mgl32.Vec3{3.2, 0.1, 0.8},
		22, 0, 0,
		mgl32.Vec3{0.5, 2.4, -0.18},
	)
	m.SetShaderTexture("KB1")
	m.SetShaderMaterial("glass")
	m.meshes.DrawBox()
}

// renderLightFixture draws the box standing in for the upper-left light.
func (m *Manager) renderLightFixture() {
	m.SetTransformations(
		mgl32.Vec3{1.0, 0.5, 0.7},
		0, 0, 0,
		mgl32.Vec3{-10.0, 10.5, -9.5},
	)
	m.SetShaderTexture("plastic")
	m.SetShaderMaterial("glass")
	m.meshes.DrawBox()
}
