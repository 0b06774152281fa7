// Package gfx is a small software 3D renderer for the cubedrop demo.
//
// It draws a Scene of meshes, lights and helpers into a caller-provided
// Target. The pipeline is fixed:
//
//	Scene → World transform → View/Projection → Near clipping → Culling →
//	Flat Blinn-Phong shading → Rasterization with depth → Planar shadows.
//
// Object transforms mirror a scene-graph node: position, unit quaternion and
// per-axis scale. Math types are mgl32 so physics state can be copied onto
// meshes without conversion.
package gfx
