// graphrun builds a dependency graph declared in HCL, applies write steps to
// it, and prints what every node settles to after each step.
//
//	source "a" { value = 1 }
//	source "b" { value = 2 }
//	computed "sum" { expr = a + b }
//	effect "watch" { expr = sum }
//	step "bump" { a = 10 }
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"sort"

	"github.com/cascadelabs/cascade"
	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/urfave/cli/v3"
	"github.com/zclconf/go-cty/cty"
)

func main() {
	cmd := &cli.Command{
		Name:      "graphrun",
		Usage:     "Run an HCL-declared dependency graph",
		ArgsUsage: "<file.hcl>",
		Action:    run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "source", LabelNames: []string{"name"}},
		{Type: "computed", LabelNames: []string{"name"}},
		{Type: "effect", LabelNames: []string{"name"}},
		{Type: "step", LabelNames: []string{"name"}},
	},
}

func run(ctx context.Context, cmd *cli.Command) error {
	if cmd.Args().Len() != 1 {
		return fmt.Errorf("expected exactly one HCL file argument")
	}
	path := cmd.Args().First()

	src, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	file, diags := hclsyntax.ParseConfig(src, path, hcl.InitialPos)
	if diags.HasErrors() {
		return diags
	}
	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return diags
	}

	b := &builder{
		graph:   cascade.New(),
		handles: map[string]cascade.Handle[cty.Value]{},
	}
	if err := b.build(content); err != nil {
		return err
	}

	b.dump("initial")
	for _, step := range b.steps {
		if err := b.apply(step); err != nil {
			return err
		}
		b.dump(step.name)
	}
	return nil
}

type writeStep struct {
	name  string
	attrs hclsyntax.Attributes
}

type builder struct {
	graph   *cascade.Graph
	handles map[string]cascade.Handle[cty.Value]
	order   []string
	steps   []writeStep
}

func ctyEq(a, b cty.Value) bool {
	return a.RawEquals(b)
}

func (b *builder) build(content *hcl.BodyContent) error {
	// sources first so computed expressions can resolve them
	for _, block := range content.Blocks {
		if block.Type != "source" {
			continue
		}
		name := block.Labels[0]
		attrs, diags := block.Body.JustAttributes()
		if diags.HasErrors() {
			return diags
		}
		attr, ok := attrs["value"]
		if !ok {
			return fmt.Errorf("source %q: missing value", name)
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		b.register(name, cascade.SourceWith(b.graph, v, ctyEq,
			cascade.WithName(name)))
	}

	// computed blocks may reference each other; resolve by fixed point so
	// declaration order does not matter
	pending := map[string]*hcl.Block{}
	for _, block := range content.Blocks {
		if block.Type == "computed" {
			pending[block.Labels[0]] = block
		}
	}
	for len(pending) > 0 {
		progressed := false
		for name, block := range pending {
			expr, deps, ok, err := b.resolve(block)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			h, err := b.bindExpr(name, expr, deps)
			if err != nil {
				return err
			}
			b.register(name, h)
			delete(pending, name)
			progressed = true
		}
		if !progressed {
			names := make([]string, 0, len(pending))
			for name := range pending {
				names = append(names, name)
			}
			sort.Strings(names)
			return fmt.Errorf("unresolvable computed blocks (unknown reference or declaration cycle): %v", names)
		}
	}

	for _, block := range content.Blocks {
		switch block.Type {
		case "effect":
			name := block.Labels[0]
			expr, deps, ok, err := b.resolve(block)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("effect %q: unknown reference", name)
			}
			if err := b.bindEffect(name, expr, deps); err != nil {
				return err
			}
		case "step":
			body, ok := block.Body.(*hclsyntax.Body)
			if !ok {
				return fmt.Errorf("step %q: unexpected body type", block.Labels[0])
			}
			b.steps = append(b.steps, writeStep{
				name:  block.Labels[0],
				attrs: body.Attributes,
			})
		}
	}
	return nil
}

func (b *builder) register(name string, h cascade.Handle[cty.Value]) {
	b.handles[name] = h
	b.order = append(b.order, name)
}

// resolve extracts a block's expr attribute and maps its variable references
// to already-registered handles; ok is false when a reference is not
// registered yet.
func (b *builder) resolve(block *hcl.Block) (hcl.Expression, []string, bool, error) {
	attrs, diags := block.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, nil, false, diags
	}
	attr, ok := attrs["expr"]
	if !ok {
		return nil, nil, false, fmt.Errorf("%s %q: missing expr", block.Type, block.Labels[0])
	}
	seen := map[string]bool{}
	var deps []string
	for _, tr := range attr.Expr.Variables() {
		name := tr.RootName()
		if seen[name] {
			continue
		}
		seen[name] = true
		if _, registered := b.handles[name]; !registered {
			return nil, nil, false, nil
		}
		deps = append(deps, name)
	}
	sort.Strings(deps)
	return attr.Expr, deps, true, nil
}

func (b *builder) depHandles(deps []string) []cascade.Dep {
	out := make([]cascade.Dep, len(deps))
	for i, name := range deps {
		out[i] = b.handles[name]
	}
	return out
}

func (b *builder) evalCtx(deps []string, args []any) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(deps))
	for i, name := range deps {
		vars[name] = args[i].(cty.Value)
	}
	return &hcl.EvalContext{Variables: vars}
}

func (b *builder) bindExpr(name string, expr hcl.Expression, deps []string) (cascade.Handle[cty.Value], error) {
	return cascade.CalcWith(b.graph, ctyEq, b.depHandles(deps),
		func(args ...any) cty.Value {
			v, diags := expr.Value(b.evalCtx(deps, args))
			if diags.HasErrors() {
				log.Printf("computed %q: %s", name, diags)
				return cty.NilVal
			}
			return v
		}, cascade.WithName(name))
}

func (b *builder) bindEffect(name string, expr hcl.Expression, deps []string) error {
	_, err := cascade.Effect(b.graph, b.depHandles(deps), func(args ...any) {
		v, diags := expr.Value(b.evalCtx(deps, args))
		if diags.HasErrors() {
			log.Printf("effect %q: %s", name, diags)
			return
		}
		fmt.Printf("effect %s: %s\n", name, v.GoString())
	}, cascade.WithName(name))
	return err
}

func (b *builder) apply(step writeStep) error {
	names := make([]string, 0, len(step.attrs))
	for name := range step.attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		attr := step.attrs[name]
		h, ok := b.handles[attr.Name]
		if !ok {
			return fmt.Errorf("step %q: unknown node %q", step.name, attr.Name)
		}
		v, diags := attr.Expr.Value(nil)
		if diags.HasErrors() {
			return diags
		}
		if err := h.Set(v); err != nil {
			return fmt.Errorf("step %q: set %s: %w", step.name, attr.Name, err)
		}
	}
	return nil
}

func (b *builder) dump(label string) {
	fmt.Printf("--- %s\n", label)
	for _, name := range b.order {
		v, err := b.handles[name].Get()
		if err != nil {
			fmt.Printf("%s = <%v>\n", name, err)
			continue
		}
		fmt.Printf("%s = %s\n", name, v.GoString())
	}
}
