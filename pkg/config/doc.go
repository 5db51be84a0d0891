// Package config holds the settings that drive a transformation: the naming
// mode, object-property synthesis and the style keys of the generated DOT.
//
// Settings are stored as flat keys in a TOML file:
//
//	nodeNames = "prefixed"
//	synthesizeObjectProperties = true
//	rankdir = "LR"
//	imageSize = "25,25"
//	classShape = "ellipse"
//	classColor = "orange"
//
//	[prefixes]
//	ex = "http://ex.org/"
//
// Missing keys keep the values of [Default]; unknown keys are rejected.
package config
