// Package gasket builds the triangle mesh for a subdivided regular polygon.
//
// Pipeline (fixed):
//
//	Polygon fan → Subdivision → Rotation → Coloring → Scene.
//
// A Scene is an immutable value. It is rebuilt from scratch for every
// parameter change and handed to the renderer; nothing is cached between
// builds.
//
// Subdivision runs on an explicit work stack, so depth is bounded only by
// memory (4^depth leaves per base triangle), not by the goroutine stack.
package gasket
