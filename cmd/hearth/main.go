// Package main provides the Hearth host tensor runtime CLI.
package main

import (
	"fmt"
	"os"

	"github.com/hearth-ml/hearth/host"
	"github.com/hearth-ml/hearth/tensor"
)

const version = "v0.0.1-dev"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("Hearth %s\n", version)
			return
		case "demo":
			demo()
			return
		}
	}

	fmt.Println("Hearth - Host Tensor Runtime Kernel")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Convert a sample COO tensor and print both forms")
}

func demo() {
	h := host.New()

	coo, err := tensor.NewCOOFromSlices(h, tensor.Shape{2, 2},
		[][]int{{0, 1}, {1, 0}}, []int32{5, 7})
	if err != nil {
		fmt.Fprintln(os.Stderr, "building coo tensor:", err)
		os.Exit(1)
	}

	coo.Print(os.Stdout)

	result := coo.ConvertToHostTensor(h, tensor.FormatDense|tensor.FormatScalar)
	ht, err := result.Value()
	if err != nil {
		fmt.Fprintln(os.Stderr, "converting:", err)
		os.Exit(1)
	}

	dense := ht.(*tensor.RawTensor)
	fmt.Printf("%v elements = %v\n", dense, tensor.DataAs[int32](dense))
}
