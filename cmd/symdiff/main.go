// Command symdiff demonstrates the expression engine on a catalog of
// built-in expressions. Building trees from text is out of scope, so the
// catalog is the only input surface.
package main

import (
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"go.creack.net/symdiff/algebra"
	"go.creack.net/symdiff/ast"
)

var x = ast.Var("x")

var catalog = map[string]ast.Expr{
	"polynomial":  ast.AddOf(ast.AddOf(ast.MulOf(2, ast.PowOf(x, 3)), ast.MulOf(3, x)), 2),
	"exponential": ast.PowOf(ast.E, x),
	"scaled-exp":  ast.PowOf(3, x),
	"power-tower": ast.PowOf(x, x),
	"reciprocal":  ast.DivOf(1, x),
	"log":         ast.LnOf(x),
}

func lookup(name string) (ast.Expr, error) {
	log.Debugf("looking up catalog entry %q", name)
	e, ok := catalog[name]
	if !ok {
		return nil, fmt.Errorf("unknown expression %q, see %q for the catalog", name, "symdiff list")
	}
	return e, nil
}

var rootCmd = &cobra.Command{
	Use:   "symdiff",
	Short: "A symbolic differentiation playground.",
	Long:  "Prints, simplifies, derives and evaluates a catalog of built-in expressions.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			log.SetLevel(log.DebugLevel)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the built-in expression catalog.",
	Run: func(cmd *cobra.Command, args []string) {
		names := make([]string, 0, len(catalog))
		for name := range catalog {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Printf("%-12s %s\n", name, catalog[name].Dump())
		}
	},
}

var showCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print an expression, its simplified form and its derivative.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := lookup(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("var")
		v := ast.Var(name)
		log.Debugf("deriving %q with respect to %s", args[0], v.Name)
		d, err := algebra.Derive(expr, v)
		if err != nil {
			return fmt.Errorf("derive %q: %w", args[0], err)
		}
		fmt.Printf("expression: %s\n", expr.Dump())
		fmt.Printf("simplified: %s\n", algebra.Simplify(expr).Dump())
		fmt.Printf("derivative: %s\n", d.Dump())
		if latex, _ := cmd.Flags().GetBool("latex"); latex {
			fmt.Printf("latex:      %s\n", ast.LaTeX(d))
		}
		return nil
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval <name>",
	Short: "Numerically evaluate an expression at a point.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr, err := lookup(args[0])
		if err != nil {
			return err
		}
		name, _ := cmd.Flags().GetString("var")
		at, _ := cmd.Flags().GetFloat64("at")
		simplified := algebra.Simplify(expr)
		val, ok := ast.Eval(simplified, map[string]float64{name: at})
		if !ok {
			return fmt.Errorf("eval %q: unbound variable, only %q is set", args[0], name)
		}
		fmt.Printf("%s = %g at %s = %g\n", simplified.Dump(), val, name, at)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	showCmd.Flags().String("var", "x", "variable to derive with respect to")
	showCmd.Flags().Bool("latex", false, "also print the derivative as LaTeX")
	evalCmd.Flags().String("var", "x", "variable to bind")
	evalCmd.Flags().Float64("at", 0, "value to bind the variable to")
	rootCmd.AddCommand(listCmd, showCmd, evalCmd)
}

func main() {
	log.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
