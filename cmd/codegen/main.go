package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/cascadelabs/cascade/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	arityCountKey = "count"
	outKey        = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the ComputedN/EffectN arity wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  arityCountKey,
				Usage: "Highest arity to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outKey,
				Usage: "Output file, relative to the repo root",
				Value: "arity.go",
			},
		},
		Action: generate,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func generate(ctx context.Context, cmd *cli.Command) error {
	start := time.Now()
	log.Printf("Codegen for cascade started")
	defer func() {
		log.Printf("Codegen for cascade finished in %v", time.Since(start))
	}()

	count := int(cmd.Uint(arityCountKey))
	out := cmd.String(outKey)
	log.Printf("Arity count: %d", count)

	contents := templates.ArityGen(count)
	return os.WriteFile(out, []byte(contents), 0644)
}
