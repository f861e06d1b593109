package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/mpmedia/js-signals/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputPathKey        = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed signal wrappers",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 4,
			},
			&cli.StringFlag{
				Name:  outputPathKey,
				Usage: "Path of the generated file",
				Value: "typed/signals.go",
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
	log.Printf("Codegen for typed signals started")
	defer func() {
		log.Printf("Codegen for typed signals finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	out := cmd.String(outputPathKey)
	log.Printf("Arities: %d, output: %s", genericParamCount, out)

	contents := templates.TypedGen(int(genericParamCount))
	return os.WriteFile(out, []byte(contents), 0644)
}
