package app

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"cubedrop/gfx"
	"cubedrop/physics"
)

var cubeHalfExtents = mgl32.Vec3{0.5, 0.5, 0.5}

func (a *App) buildScene() {
	p := a.params
	s := gfx.NewScene()
	s.Background = gfx.Hex(0x000000)
	s.Camera = gfx.NewCamera(p.Camera.FOV, 0.1, 1000)
	s.Camera.Position = mgl32.Vec3{p.Camera.X, p.Camera.Y, p.Camera.Z}

	a.plane = gfx.NewMesh("plane", gfx.PlaneGeometry(5, 5, 5, 5), gfx.PhongMaterial(p.Plane.Color))
	a.plane.Material.ReceiveShadow = true

	a.cube = gfx.NewMesh("cube", gfx.BoxGeometry(1, 1, 1), gfx.PhongMaterial(p.Cube.Color))
	a.cube.Material.CastShadow = true
	a.cube.Material.ReceiveShadow = true

	a.axes = gfx.NewMesh("axes", gfx.AxesGeometry(1), gfx.BasicMaterial(gfx.Hex(0xFFFFFF)))
	a.helper = gfx.NewLightHelper(1)

	s.Add(a.plane, a.cube, a.axes, a.helper.Mesh)
	a.scene = s
	a.renderer = gfx.NewRenderer()
	a.controls = gfx.NewOrbitControls(mgl32.Vec3{})
}

func (a *App) buildWorld() error {
	p := a.params
	a.world = physics.NewWorld(physics.WorldOptions{Iterations: p.Physics.Iterations})
	a.world.Gravity = mgl32.Vec3{0, p.Physics.Gravity, 0}

	a.ground = physics.NewPlane()
	a.ground.SetQuaternion(mgl32.AnglesToQuat(-math32.Pi/2, 0, 0, mgl32.XYZ))

	a.box = physics.NewBox(cubeHalfExtents, p.Cube.Mass)
	a.box.SetPosition(mgl32.Vec3{p.Cube.X, p.Cube.Y, p.Cube.Z})

	for _, b := range []*physics.Body{a.box, a.ground} {
		if err := a.world.AddBody(b); err != nil {
			return fmt.Errorf("app: build world: %w", err)
		}
	}
	return nil
}

// sync copies body transforms onto their meshes.
func (a *App) sync() {
	a.plane.Position = a.ground.Position
	a.plane.Quaternion = a.ground.Quaternion
	a.cube.Position = a.box.Position
	a.cube.Quaternion = a.box.Quaternion
}

// applyParams pushes the live parameters into materials, lights, the camera
// lens and the world.
func (a *App) applyParams() {
	p := &a.params

	a.cube.Material.Color = p.Cube.Color
	a.cube.Material.Wireframe = p.Cube.Wireframe
	a.plane.Material.Color = p.Plane.Color
	a.plane.Material.Wireframe = p.Plane.Wireframe
	a.plane.Scale = mgl32.Vec3{p.Plane.ScaleX, p.Plane.ScaleY, 1}

	l := p.Lights
	a.scene.Directional = gfx.DirectionalLight{
		Color:     l.DLColor,
		Intensity: l.DLIntensity,
		Position:  mgl32.Vec3{l.DLX, l.DLY, l.DLZ},
		Rotation:  mgl32.Vec3{l.DLRotX, l.DLRotY, l.DLRotZ},
	}
	a.scene.Ambient = gfx.AmbientLight{Color: l.ALColor, Intensity: l.ALIntensity}

	a.helper.Update(a.scene.Directional)
	a.helper.Mesh.Visible = a.showHelpers
	a.axes.Visible = a.showHelpers

	a.scene.Camera.FOVYDeg = p.Camera.FOV
	a.world.Gravity = mgl32.Vec3{0, p.Physics.Gravity, 0}
	a.world.Iterations = p.Physics.Iterations
}

// resetBodies puts the cube and camera back to the base parameters.
func (a *App) resetBodies() {
	p := a.base
	a.box.SetMass(p.Cube.Mass)
	a.box.SetPosition(mgl32.Vec3{p.Cube.X, p.Cube.Y, p.Cube.Z})
	a.box.SetQuaternion(mgl32.QuatIdent())
	a.box.SetVelocity(mgl32.Vec3{}, mgl32.Vec3{})
	a.scene.Camera.Position = mgl32.Vec3{p.Camera.X, p.Camera.Y, p.Camera.Z}
	a.controls.Target = mgl32.Vec3{}
	a.sync()
	a.applyParams()
}

// capture copies live positions back into the parameters before saving.
func (a *App) capture() {
	a.params.Cube.X, a.params.Cube.Y, a.params.Cube.Z = a.box.Position[0], a.box.Position[1], a.box.Position[2]
	c := a.scene.Camera.Position
	a.params.Camera.X, a.params.Camera.Y, a.params.Camera.Z = c[0], c[1], c[2]
}
