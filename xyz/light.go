// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xyz

import (
	"cogentcore.org/prim/math64"
)

// Light represents a light that illuminates a scene.
// These are stored on the [Scene] object and not with the nodes.
type Light interface {
	// AsLightBase returns the [LightBase] for this Light,
	// which provides the core functionality of a light.
	AsLightBase() *LightBase

	// LightType returns the name of the type of light.
	LightType() string
}

// LightBase provides the core implementation of the [Light] interface.
type LightBase struct {
	// Name is the name of the light.
	Name string

	// On is whether the light is turned on.
	On bool

	// Lumens is the intensity of the light, multiplied by the color.
	Lumens float64

	// Color is the color of the light at full intensity.
	Color Color
}

func (lb *LightBase) AsLightBase() *LightBase {
	return lb
}

// AmbientLight provides diffuse uniform lighting; typically only one of these in a [Scene].
type AmbientLight struct {
	LightBase
}

// NewAmbientLight adds an [AmbientLight] to the given scene,
// with the given name, color, and lumens.
func NewAmbientLight(sc *Scene, name string, lumens float64, clr Color) *AmbientLight {
	lt := &AmbientLight{}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

func (al *AmbientLight) LightType() string {
	return "ambient"
}

// DirLight is directional light, which is assumed to project light toward
// the origin based on its position, with no attenuation, like the Sun.
type DirLight struct {
	LightBase

	// Pos is the position of the light; it points at the origin
	// so this determines its direction.
	Pos math64.Vector3
}

// NewDirLight adds a [DirLight] to the given scene, with the given
// name, color, lumens and position.
func NewDirLight(sc *Scene, name string, lumens float64, clr Color, pos math64.Vector3) *DirLight {
	lt := &DirLight{Pos: pos}
	lt.Name = name
	lt.On = true
	lt.Color = clr
	lt.Lumens = lumens
	sc.AddLight(lt)
	return lt
}

func (dl *DirLight) LightType() string {
	return "directional"
}

// Dir returns the unit direction the light travels in.
func (dl *DirLight) Dir() math64.Vector3 {
	return dl.Pos.Negate().Normal()
}

// AddLight adds the given light to the scene lights.
func (sc *Scene) AddLight(lt Light) {
	sc.Lights = append(sc.Lights, lt)
}

// LightByName returns the light with the given name, or nil if none.
func (sc *Scene) LightByName(name string) Light {
	for _, lt := range sc.Lights {
		if lt.AsLightBase().Name == name {
			return lt
		}
	}
	return nil
}
