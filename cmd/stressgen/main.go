// Command stressgen emits the synthetic component and system definitions used
// by the stress harness. The output is deterministic for a given flag set, so
// the generated file is checked in and only regenerated when the shape of the
// stress workload changes.
package main

import (
	"bytes"
	"flag"
	"log"
	"os"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/plus3/loom/ecs"
)

type genParams struct {
	Components int
	Systems    int
	Package    string
}

type systemParams struct {
	Index  int
	First  int
	Second int
}

func (p genParams) SystemList() []systemParams {
	systems := make([]systemParams, p.Systems)
	for i := range systems {
		systems[i] = systemParams{
			Index:  i,
			First:  (2 * i) % p.Components,
			Second: (2*i + 1) % p.Components,
		}
	}
	return systems
}

func (p genParams) ComponentList() []int {
	components := make([]int, p.Components)
	for i := range components {
		components[i] = i
	}
	return components
}

const fileTemplate = `// Code generated by stressgen. DO NOT EDIT.

package {{.Package}}

import (
	"math/rand"

	"github.com/plus3/loom/ecs"
)

const (
	componentCount = {{.Components}}
	systemCount    = {{.Systems}}
)

{{range .ComponentList}}
type StressComponent{{.}} struct {
	ValueA float64
	ValueB float64
}

var stressTable{{.}} *ecs.Table[StressComponent{{.}}]
{{end}}

func RegisterAllGeneratedComponents(world *ecs.World) {
{{- range .ComponentList}}
	stressTable{{.}} = ecs.MustRegisterTable[StressComponent{{.}}](world)
{{- end}}
}

func SpawnRandomEntity(world *ecs.World, numComponents int) error {
	if numComponents > componentCount {
		numComponents = componentCount
	}
	entity, err := world.Create()
	if err != nil {
		return err
	}
	for _, kind := range rand.Perm(componentCount)[:numComponents] {
		if err := setStressComponent(world, entity, kind); err != nil {
			return err
		}
	}
	return nil
}

func setStressComponent(world *ecs.World, entity ecs.Entity, kind int) error {
	switch kind {
{{- range .ComponentList}}
	case {{.}}:
		return stressTable{{.}}.Set(entity, StressComponent{{.}}{ValueA: rand.Float64(), ValueB: rand.Float64()})
{{- end}}
	}
	return nil
}

{{range .SystemList}}
type StressSystem{{.Index}} struct {
	Items ecs.Query[struct {
		A *StressComponent{{.First}}
		B *StressComponent{{.Second}}
	}]
}

func (s *StressSystem{{.Index}}) Execute(frame *ecs.UpdateFrame) {
	for _, item := range s.Items.Iter() {
		item.A.ValueA += item.B.ValueB * frame.DeltaTime
		item.B.ValueA += item.A.ValueB * frame.DeltaTime
	}
}
{{end}}

func RegisterAllGeneratedSystems(scheduler *ecs.Scheduler) {
{{- range .SystemList}}
	scheduler.Register(&StressSystem{{.Index}}{})
{{- end}}
}
`

func main() {
	componentCount := flag.Int("components", 16, "The number of component types to generate.")
	systemCount := flag.Int("systems", 8, "The number of systems to generate.")
	outPath := flag.String("out", "generated.go", "The output file path.")
	pkgName := flag.String("package", "main", "The package name of the generated file.")
	flag.Parse()

	if *componentCount < 1 || *componentCount > ecs.MaxComponentKinds {
		log.Fatalf("Component count must be between 1 and %d.", ecs.MaxComponentKinds)
	}
	if *systemCount < 1 {
		log.Fatal("System count must be at least 1.")
	}

	params := genParams{
		Components: *componentCount,
		Systems:    *systemCount,
		Package:    *pkgName,
	}

	tmpl, err := template.New("stress").Parse(fileTemplate)
	if err != nil {
		log.Fatalf("Failed to parse template: %v", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		log.Fatalf("Failed to execute template: %v", err)
	}

	formatted, err := imports.Process(*outPath, buf.Bytes(), nil)
	if err != nil {
		log.Fatalf("Failed to format generated source: %v", err)
	}

	if err := os.WriteFile(*outPath, formatted, 0o644); err != nil {
		log.Fatalf("Failed to write %s: %v", *outPath, err)
	}

	log.Printf("Wrote %s with %d components and %d systems.", *outPath, *componentCount, *systemCount)
}
