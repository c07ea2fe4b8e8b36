package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/delaneyj/vueparty/cmd/codegen/templates"
	"github.com/urfave/cli/v3"
)

const (
	genericParamCountKey = "count"
	outputPathKey        = "out"
)

func main() {
	cmd := &cli.Command{
		Name:  "generate",
		Usage: "Generate the typed combinator wrappers for the reactive package",
		Flags: []cli.Flag{
			&cli.UintFlag{
				Name:  genericParamCountKey,
				Usage: "Number of generic parameters to generate",
				Value: 8,
			},
			&cli.StringFlag{
				Name:  outputPathKey,
				Usage: "File the generated combinators are written to",
				Value: "reactive/combinators.go",
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
	log.Printf("Codegen for combinators started!")
	defer func() {
		log.Printf("Codegen for combinators finished in %v", time.Since(start))
	}()

	genericParamCount := cmd.Uint(genericParamCountKey)
	outputPath := cmd.String(outputPathKey)

	contents := templates.CombinatorsGen(int(genericParamCount))
	if err := os.WriteFile(outputPath, []byte(contents), 0644); err != nil {
		return err
	}

	return nil
}
