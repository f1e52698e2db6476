// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// PipelineVertexShader is the vertex shader for the coordinate-space
// viewer. It branches on the activeSpace uniform to pick the emitted
// position and color.
//
//go:embed pipeline.vert
var PipelineVertexShader string

// PipelineFragmentShader passes the selected color through.
//
//go:embed pipeline.frag
var PipelineFragmentShader string
