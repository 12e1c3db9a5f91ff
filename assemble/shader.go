// seehuhn.de/go/pssg - read and write PSSG font asset libraries
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package assemble

import (
	"github.com/beevik/etree"

	"seehuhn.de/go/pssg"
)

// ShaderGroupID is the engine-fixed shader all font assets draw with.
const ShaderGroupID = "ui_2d_uv_instanced.fx"

// newShaderGroup builds the static parameter layout of the font shader.
// The layout is fixed by the engine; only the IDs of the instances vary
// per font.
func newShaderGroup() *etree.Element {
	group := etree.NewElement("SHADERGROUP")
	group.CreateAttr("parameterCount", "4")
	group.CreateAttr("parameterSavedCount", "0")
	group.CreateAttr("parameterStreamCount", "0")
	group.CreateAttr("instancesRequireSorting", "0")
	group.CreateAttr("defaultRenderSortPriority", "-2147483648")
	group.CreateAttr("passCount", "0")
	group.CreateAttr("id", ShaderGroupID)

	defs := []struct {
		name, typ, format string
	}{
		{"Phong", "constant", "float4"},
		{"TDistanceMap", "texture", ""},
		{"DiffuseColour", "constant", "float4"},
		{"Alpha", "constant", "float"},
	}
	for _, d := range defs {
		def := group.CreateElement("SHADERINPUTDEFINITION")
		def.CreateAttr("name", d.name)
		def.CreateAttr("type", d.typ)
		if d.format != "" {
			def.CreateAttr("format", d.format)
		}
	}
	return group
}

// newShaderInstance builds the single shader instance shared by all
// glyph nodes of the font.
func newShaderInstance(shaderID, textureName string) *etree.Element {
	inst := etree.NewElement("SHADERINSTANCE")
	inst.CreateAttr("shaderGroup", pssg.Reference(ShaderGroupID).String())
	inst.CreateAttr("parameterCount", "4")
	inst.CreateAttr("parameterSavedCount", "4")
	inst.CreateAttr("renderSortPriority", "0")
	inst.CreateAttr("id", shaderID)

	phong := inst.CreateElement("SHADERINPUT")
	phong.CreateAttr("parameterID", "0")
	phong.CreateAttr("type", "constant")
	phong.CreateAttr("format", "float4")
	phong.SetText("\n0.000000000e+000 0.000000000e+000 0.000000000e+000 0.000000000e+000 ")

	tex := inst.CreateElement("SHADERINPUT")
	tex.CreateAttr("parameterID", "1")
	tex.CreateAttr("type", "texture")
	tex.CreateAttr("texture", pssg.Reference(textureName).String())

	diffuse := inst.CreateElement("SHADERINPUT")
	diffuse.CreateAttr("parameterID", "2")
	diffuse.CreateAttr("type", "constant")
	diffuse.CreateAttr("format", "float4")
	diffuse.SetText("\n1.000000000e+000 1.000000000e+000 1.000000000e+000 1.000000000e+000 ")

	alpha := inst.CreateElement("SHADERINPUT")
	alpha.CreateAttr("parameterID", "3")
	alpha.CreateAttr("type", "constant")
	alpha.CreateAttr("format", "float")
	alpha.SetText("\n1.000000000e+000 ")

	return inst
}

// newTexture builds the placeholder texture element.  It declares the
// final texture's name but carries a dummy 4x4 dxt1 payload; the real
// texture is produced by the external transcoder and substituted into
// the asset afterwards.
func newTexture(textureName string) *etree.Element {
	tex := etree.NewElement("TEXTURE")
	tex.CreateAttr("width", "4")
	tex.CreateAttr("height", "4")
	tex.CreateAttr("texelFormat", "dxt1")
	tex.CreateAttr("transient", "0")
	tex.CreateAttr("wrapS", "1")
	tex.CreateAttr("wrapT", "1")
	tex.CreateAttr("wrapR", "1")
	tex.CreateAttr("minFilter", "5")
	tex.CreateAttr("magFilter", "1")
	tex.CreateAttr("gammaRemapR", "0")
	tex.CreateAttr("gammaRemapG", "0")
	tex.CreateAttr("gammaRemapB", "0")
	tex.CreateAttr("gammaRemapA", "0")
	tex.CreateAttr("automipmap", "0")
	tex.CreateAttr("numberMipMapLevels", "2")
	tex.CreateAttr("arraySize", "1")
	tex.CreateAttr("imageBlockCount", "1")
	tex.CreateAttr("id", textureName)

	block := tex.CreateElement("TEXTUREIMAGEBLOCK")
	block.CreateAttr("typename", "Raw")
	block.CreateAttr("size", "24")
	block.CreateElement("TEXTUREIMAGEBLOCKDATA").
		SetText("\n00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 00 ")

	return tex
}
