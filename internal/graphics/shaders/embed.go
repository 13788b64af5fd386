// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// ObjectVertexShader transforms lit, textured scene geometry.
//
//go:embed object.vert
var ObjectVertexShader string

// ObjectFragmentShader evaluates Phong lighting for up to three point lights.
//
//go:embed object.frag
var ObjectFragmentShader string

// LampVertexShader transforms lamp markers.
//
//go:embed lamp.vert
var LampVertexShader string

// LampFragmentShader draws lamp markers unlit in their light color.
//
//go:embed lamp.frag
var LampFragmentShader string
