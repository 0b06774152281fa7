package app

import (
	"cubedrop/panel"
)

// buildPanel binds the panel to the live cube body, camera and parameters,
// one folder per object as in the stock demo.
func (a *App) buildPanel() *panel.Panel {
	p := panel.New("Controls")
	wake := func(float32) { a.box.Wake() }

	cube := p.AddFolder("cube")
	cube.Number("x", &a.box.Position[0], 0, 10).OnChange(wake)
	cube.Number("y", &a.box.Position[1], 0, 10).OnChange(wake)
	cube.Number("z", &a.box.Position[2], 0, 10).OnChange(wake)
	cube.Number("mass", &a.params.Cube.Mass, -10, 10).OnChange(func(m float32) {
		a.box.SetMass(m)
	})
	cube.Bool("wireframe", &a.params.Cube.Wireframe)
	cube.Color("color", &a.params.Cube.Color)

	plane := p.AddFolder("plane")
	plane.Number("x", &a.params.Plane.ScaleX, 0, 10).Name("scale x")
	plane.Number("y", &a.params.Plane.ScaleY, 0, 10).Name("scale y")
	plane.Bool("wireframe", &a.params.Plane.Wireframe)

	camera := p.AddFolder("camera")
	camera.Number("y", &a.scene.Camera.Position[1], 0, 10)
	camera.Number("x", &a.scene.Camera.Position[0], 0, 10)
	camera.Number("z", &a.scene.Camera.Position[2], 0, 10)

	l := &a.params.Lights
	lights := p.AddFolder("lights")
	lights.Number("y", &l.DLY, 0, 10).Name("position y dl")
	lights.Number("x", &l.DLX, 0, 10).Name("position x dl")
	lights.Number("z", &l.DLZ, 0, 10).Name("position z dl")
	lights.Number("rot y", &l.DLRotY, 0, 10).Name("rotation y dl")
	lights.Number("rot x", &l.DLRotX, 0, 10).Name("rotation x dl")
	lights.Number("rot z", &l.DLRotZ, 0, 10).Name("rotation z dl")
	lights.Number("intensity", &l.DLIntensity, 0, 1).Name("intensity dl")
	lights.Number("intensity", &l.ALIntensity, 0, 1).Name("intensity al")
	lights.Color("al color", &l.ALColor)
	lights.Color("dl color", &l.DLColor)

	return p
}
