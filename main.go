//go:build demo
// +build demo

package main

import (
	"fmt"

	"github.com/openddl/openddl-go/parsers"
	"github.com/openddl/openddl-go/utils"
)

func main() {
	samples := []string{
		`
		Metric (key = "distance", type = string) { string { "meter" } }
		Metric (key = "angle", type = string) { string { "radian" } }
		`,
		`
		GeometryNode $node1
		{
			Mesh (primitive = "triangles")
			{
				VertexArray (attrib = "position")
				{
					float[3] {{0, 0, 0}, {1, 0, 0}, {0, 1, 0}}
				}
			}
			Transform
			{
				float[16]
				{
					{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
				}
			}
		}
		`,
		`
		Material $redMaterial
		{
			Color (attrib = "diffuse") {float[3] {{1, 0, 0}}}
		}
		GeometryNode %box
		{
			MaterialRef {ref {$redMaterial}}
		}
		`,
	}

	for i, src := range samples {
		fmt.Printf("\n=== Sample %d ===\n", i+1)
		fmt.Println("Input:", src)

		root, err := parsers.ParseBytes([]byte(src))
		if err != nil {
			fmt.Println("parse error:", err)
		}

		if err := utils.PrettyPrint(root); err != nil {
			fmt.Println("pretty-print error:", err)
		}
	}
}
