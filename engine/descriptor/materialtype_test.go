package descriptor

import (
	"errors"
	"path/filepath"
	"testing"
)

func TestDecodeMaterialTypeFile(t *testing.T) {
	mt, err := DecodeMaterialTypeFile(filepath.Join("testdata", "base_texture.material_type"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mt.Name != "base_texture" {
		t.Fatalf("name %q", mt.Name)
	}
	if mt.Pipeline.Vertex != "shaders/base.vert" || mt.Pipeline.Fragment != "shaders/base_texture.frag" {
		t.Fatalf("pipeline %+v", mt.Pipeline)
	}
	if len(mt.ResourceTypes) != 1 || mt.ResourceTypes[0].Name != "base_color_texture" || mt.ResourceTypes[0].Kind != ResourceKindTexture {
		t.Fatalf("resource types %+v", mt.ResourceTypes)
	}
}

func TestDecodeMaterialTypeFragmentForms(t *testing.T) {
	cases := []struct {
		name     string
		fragment string
		want     string
	}{
		{"none", `None`, ""},
		{"some", `Some("shaders/f.frag")`, "shaders/f.frag"},
		{"bare", `"shaders/f.frag"`, "shaders/f.frag"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			mt, err := DecodeMaterialType([]byte(`(
				name: "m",
				pipeline: (vertex: "shaders/v.vert", fragment: ` + c.fragment + `),
				resource_types: {},
			)`))
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if mt.Pipeline.Fragment != c.want {
				t.Fatalf("fragment %q, want %q", mt.Pipeline.Fragment, c.want)
			}
			if mt.Pipeline.HasFragment() != (c.want != "") {
				t.Fatalf("HasFragment mismatch for %q", c.fragment)
			}
		})
	}
}

func TestDecodeMaterialTypeOmittedFragment(t *testing.T) {
	mt, err := DecodeMaterialType([]byte(`(
		name: "depth_only",
		pipeline: (vertex: "shaders/v.vert"),
		resource_types: {},
	)`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if mt.Pipeline.HasFragment() {
		t.Fatalf("expected no fragment stage")
	}
}

func TestDecodeMaterialTypeSlotOrder(t *testing.T) {
	mt, err := DecodeMaterialType([]byte(`(
		name: "pbr",
		pipeline: (vertex: "shaders/v.vert", fragment: Some("shaders/f.frag")),
		resource_types: {
			"normal_map": Texture,
			"base_color": Color,
			"albedo": Texture,
		},
	)`))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	want := []string{"normal_map", "base_color", "albedo"}
	for i, name := range want {
		if mt.ResourceTypes[i].Name != name {
			t.Fatalf("slot %d is %q, want %q", i, mt.ResourceTypes[i].Name, name)
		}
	}

	kind, ok := mt.SlotKind("base_color")
	if !ok || kind != ResourceKindColor {
		t.Fatalf("SlotKind base_color: %v %t", kind, ok)
	}
	if _, ok := mt.SlotKind("missing"); ok {
		t.Fatalf("SlotKind must miss unknown slots")
	}
}

func TestDecodeMaterialTypeErrors(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want error
	}{
		{"missing name", `(pipeline: (vertex: "v"), resource_types: {})`, ErrSchema},
		{"empty name", `(name: "", pipeline: (vertex: "v"), resource_types: {})`, ErrSchema},
		{"missing pipeline", `(name: "m", resource_types: {})`, ErrSchema},
		{"missing vertex", `(name: "m", pipeline: (fragment: Some("f")), resource_types: {})`, ErrValidation},
		{"empty vertex", `(name: "m", pipeline: (vertex: ""), resource_types: {})`, ErrValidation},
		{"missing resource_types", `(name: "m", pipeline: (vertex: "v"))`, ErrSchema},
		{"bad slot kind", `(name: "m", pipeline: (vertex: "v"), resource_types: {"s": Cubemap})`, ErrValidation},
		{"bad fragment", `(name: "m", pipeline: (vertex: "v", fragment: 3), resource_types: {})`, ErrSchema},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := DecodeMaterialType([]byte(c.in))
			if !errors.Is(err, c.want) {
				t.Fatalf("expected %v, got %v", c.want, err)
			}
		})
	}
}

func TestMaterialTypeUsesShader(t *testing.T) {
	mt := &MaterialType{Pipeline: Pipeline{Vertex: "shaders/v.vert", Fragment: "shaders/f.frag"}}
	if !mt.UsesShader("shaders/v.vert") || !mt.UsesShader("shaders/f.frag") {
		t.Fatalf("expected both stages to match")
	}
	if mt.UsesShader("shaders/other.frag") {
		t.Fatalf("unexpected match")
	}
}
