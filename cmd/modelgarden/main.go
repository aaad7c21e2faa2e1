// Package main provides the ModelGarden CLI.
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"

	"github.com/ZhengPeterWang/ModelGarden/nn"
	"github.com/ZhengPeterWang/ModelGarden/train"
)

const version = "v0.1.0-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("ModelGarden %s\n", version)
			return
		case "train":
			if err := runTrain(os.Args[2:]); err != nil {
				fmt.Fprintln(os.Stderr, "train:", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("ModelGarden - scalar autodiff and tiny neural networks")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  train      Train the demo MLP on the built-in dataset")
}

// runTrain fits a 3-input MLP with layer widths [4, 4, 1] to the four
// built-in examples and prints the predictions it ends up with.
func runTrain(args []string) error {
	fs := flag.NewFlagSet("train", flag.ContinueOnError)
	iterations := fs.Int("iterations", 100, "number of gradient-descent iterations")
	lr := fs.Float64("lr", 0.01, "learning rate")
	seed := fs.Int64("seed", 1, "seed for weight initialization")
	if err := fs.Parse(args); err != nil {
		return err
	}

	xs := [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	ys := []float64{1.0, -1.0, -1.0, 1.0}

	rng := rand.New(rand.NewSource(*seed))
	model := nn.NewMLP(3, []int{4, 4, 1}, rng)

	trainer := train.New()
	if _, err := trainer.Train(model, xs, ys, *iterations, *lr); err != nil {
		return err
	}

	for i, x := range xs {
		outs, err := model.ApplyFloats(x)
		if err != nil {
			return err
		}
		fmt.Printf("x=%v want %v got %v\n", x, ys[i], outs[0].Data)
	}
	return nil
}
