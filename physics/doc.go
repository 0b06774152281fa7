// Package physics is a small rigid-body simulator for boxes resting on
// planes.
//
// A World holds bodies and advances them with a fixed time step: gravity and
// damping are integrated into velocities, box corners below a plane become
// contacts, a sequential-impulse solver resolves them with restitution,
// Coulomb friction and positional correction, and finally positions and
// orientations are integrated. There is no sub-stepping and no
// interpolation; each Step call is exactly one step.
//
// Vectors and orientations use mgl32 so bodies copy straight onto gfx meshes.
package physics
