package main

import (
	"flag"
	"fmt"
	"io"

	"github.com/born-ml/micrograd/autodiff"
	"github.com/born-ml/micrograd/gradcheck"
)

// expression builds the demo expression over a and b.
func expression(a, b autodiff.Value) autodiff.Value {
	c := a.Add(b)
	d := a.Mul(b).Add(b.Pow(3))
	c.AddAssign(c.AddScalar(1))
	c.AddAssign(autodiff.ScalarAdd(1, c).Add(a.Neg()))
	d.AddAssign(d.MulScalar(2).Add(b.Add(a).ReLU()))
	d.AddAssign(autodiff.ScalarMul(3, d).Add(b.Sub(a).ReLU()))
	e := c.Sub(d)
	f := e.Pow(2)
	g := f.DivScalar(2)
	g.AddAssign(autodiff.ScalarDiv(10, f))
	return g
}

func runDemo(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("demo", flag.ContinueOnError)
	fs.SetOutput(stdout)
	a0 := fs.Float64("a", -4, "Value of a")
	b0 := fs.Float64("b", 2, "Value of b")
	check := fs.Bool("check", false, "Compare gradients with finite differences")
	verbose := fs.Bool("v", false, "Print every node in topological order")
	if err := fs.Parse(args); err != nil {
		return err
	}

	g := autodiff.NewGraph()
	a := g.Leaf(*a0).Named("a")
	b := g.Leaf(*b0).Named("b")
	out := expression(a, b).Named("g")
	out.Backward()

	fmt.Fprintf(stdout, "g = %.4f\n", out.Data())
	fmt.Fprintf(stdout, "a.grad = %.4f\n", a.Grad())
	fmt.Fprintf(stdout, "b.grad = %.4f\n", b.Grad())

	if *verbose {
		for _, v := range out.TopoOrder() {
			fmt.Fprintf(stdout, "  %-8s %s\n", v.Op().Kind, v)
		}
	}

	if *check {
		f := func(_ *autodiff.Graph, xs []autodiff.Value) autodiff.Value {
			return expression(xs[0], xs[1])
		}
		if err := gradcheck.Check(f, []float64{*a0, *b0}, gradcheck.Config{}); err != nil {
			return fmt.Errorf("demo: %w", err)
		}
		fmt.Fprintln(stdout, "gradcheck: ok")
	}
	return nil
}
