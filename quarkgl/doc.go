// Package quarkgl provides a minimal, predictable software rasterizer.
//
// QuarkGL mirrors the small slice of an immediate-mode GPU API the gasket
// renderer needs: a clear color, a position buffer (x,y per vertex), a color
// buffer (r,g,b per vertex) and DrawArrays with triangle-list or line-loop
// assembly.
//
// Pipeline (fixed):
//
//	Buffers → Clip space [-1,1]² → Viewport → Rasterization → Target.
//
// The rasterizer is software-only and draws into a caller-provided Target.
// Buffers are reused between uploads to avoid allocations in the draw path.
package quarkgl
