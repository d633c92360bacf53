package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/elyrion/platsat/pkg/cnf"
	"github.com/elyrion/platsat/pkg/encdag"
	"github.com/elyrion/platsat/pkg/encoder"
	"github.com/elyrion/platsat/pkg/encvars"
	"github.com/elyrion/platsat/pkg/layout"
	"github.com/elyrion/platsat/pkg/layoutsvg"
	"github.com/elyrion/platsat/pkg/project"
	"github.com/elyrion/platsat/pkg/satadapter"
	"github.com/elyrion/platsat/pkg/validate"
)

const version = "1.0.0"

var (
	projectPath = flag.String("project", "", "Path to YAML project file (required)")
	outputDir   = flag.String("output", ".", "Output directory for the solved layout")
	svgOut      = flag.Bool("svg", false, "Also render the solved layout as SVG")
	dumpVars    = flag.Bool("dump-vars", false, "Print the variable ↔ semantic-item map before solving")
	verbose     = flag.Bool("verbose", false, "Enable verbose output")
	versionF    = flag.Bool("version", false, "Print version and exit")
	help        = flag.Bool("help", false, "Show help message")
)

func main() {
	flag.Parse()

	if *versionF {
		fmt.Printf("platsat version %s\n", version)
		os.Exit(0)
	}
	if *help {
		printHelp()
		os.Exit(0)
	}
	if *projectPath == "" {
		fmt.Fprintln(os.Stderr, "Error: -project flag is required")
		printUsage()
		os.Exit(1)
	}

	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	if *verbose {
		fmt.Printf("Loading project from %s\n", *projectPath)
	}
	proj, err := project.Load(ctx, *projectPath)
	if err != nil {
		return fmt.Errorf("failed to load project: %w", err)
	}

	if err := os.MkdirAll(*outputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	cat := proj.BuildCatalog()
	limits := proj.BuildLimits()

	if *verbose {
		fmt.Printf("World: %dx%d, %d terrain cells\n", proj.World.Dims().W, proj.World.Dims().H, proj.World.TerrainCount())
		fmt.Printf("Catalog: %d definitions\n", len(cat.Defs()))
	}

	dag, err := encdag.Build(cat)
	if err != nil {
		return fmt.Errorf("failed to build encoding DAG: %w", err)
	}

	alloc := cnf.NewVarAllocator(0)
	ev, err := encvars.New(cat, &proj.World, alloc)
	if err != nil {
		return fmt.Errorf("failed to allocate encoding variables: %w", err)
	}

	instance := cnf.NewInstance()
	instance.Vars = alloc
	if err := encoder.Encode(instance, ev, dag, &proj.World, limits); err != nil {
		return fmt.Errorf("failed to encode instance: %w", err)
	}
	if err := encoder.ExpandLimits(instance); err != nil {
		return fmt.Errorf("failed to expand cardinality/weight constraints: %w", err)
	}

	if *verbose {
		fmt.Printf("Encoded %d vars, %d clauses\n", instance.Vars.Count(), len(instance.Clauses))
		fmt.Println("Solving...")
	}

	if *dumpVars {
		for v := cnf.Var(1); v <= instance.Vars.Count(); v++ {
			fmt.Printf("  %d = %s\n", v, ev.DebugName(cnf.PosLit(v)))
		}
	}

	solver := satadapter.New()
	if err := solver.Load(instance); err != nil {
		return fmt.Errorf("failed to load instance into solver: %w", err)
	}

	start := time.Now()
	result, err := solver.Solve(ctx)
	elapsed := time.Since(start)
	if err != nil {
		return fmt.Errorf("solver failed: %w", err)
	}

	switch result.Outcome {
	case cnf.Unsat:
		fmt.Println("UNSAT: no layout satisfies this project's constraints")
		return nil
	case cnf.Interrupted:
		fmt.Println("Solver was interrupted before reaching a decision")
		return nil
	}

	if *verbose {
		fmt.Printf("Solved in %v\n", elapsed)
	}

	decoded, err := layout.FromAssignment(result.Assignment, ev)
	if err != nil {
		return fmt.Errorf("failed to decode solution: %w", err)
	}

	validation := validate.Validate(decoded, &proj.World)
	if !validation.IsValid() {
		fmt.Println("Warning: solved layout failed independent validation:")
		for _, printout := range validation.IterErrorPrintouts() {
			fmt.Printf("  %s:\n", printout.Header)
			for _, item := range printout.Items {
				fmt.Printf("    %s\n", item)
			}
		}
	}

	fmt.Printf("Placed %d platforms\n", decoded.PlatformCount())
	if proj.WeightLimit != nil {
		fmt.Printf("Weight sum: %d (limit %d)\n", decoded.PlatformWeightSum(proj.Weights()), *proj.WeightLimit)
	}

	if *svgOut {
		base := baseNameFor(*projectPath)
		svgPath := filepath.Join(*outputDir, base+".svg")
		opts := layoutsvg.DefaultOptions()
		opts.Title = fmt.Sprintf("%s (%d platforms)", base, decoded.PlatformCount())
		if err := layoutsvg.SaveToFile(decoded, &proj.World, &validation, opts, svgPath); err != nil {
			return fmt.Errorf("failed to export SVG: %w", err)
		}
		if *verbose {
			fmt.Printf("Wrote %s\n", svgPath)
		}
	}

	return nil
}

func baseNameFor(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return base[:len(base)-len(ext)]
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "\nUsage: platsat -project <project.yaml> [options]")
	fmt.Fprintln(os.Stderr, "\nRun 'platsat -help' for detailed help")
}

func printHelp() {
	fmt.Printf("platsat version %s\n\n", version)
	fmt.Println("Solves platform placement over terrain as a SAT instance.")
	fmt.Println("\nUsage:")
	fmt.Println("  platsat -project <project.yaml> [options]")
	fmt.Println("\nRequired Flags:")
	fmt.Println("  -project string")
	fmt.Println("        Path to YAML project file")
	fmt.Println("\nOptional Flags:")
	fmt.Println("  -output string")
	fmt.Println("        Output directory for the solved layout (default: current directory)")
	fmt.Println("  -svg")
	fmt.Println("        Also render the solved layout as SVG")
	fmt.Println("  -dump-vars")
	fmt.Println("        Print the variable ↔ semantic-item map before solving")
	fmt.Println("  -verbose")
	fmt.Println("        Enable verbose output")
	fmt.Println("  -version")
	fmt.Println("        Print version and exit")
	fmt.Println("  -help")
	fmt.Println("        Show this help message")
	fmt.Println("\nExamples:")
	fmt.Println("  platsat -project platform.yaml")
	fmt.Println("  platsat -project platform.yaml -svg -verbose -output ./out")
}
