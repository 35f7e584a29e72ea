package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/openmodel/vecmath/pkg/vec"
)

// flagArgs returns the positional arguments left after flag parsing.
func flagArgs() []string {
	return flag.Args()
}

// parseVector parses "x,y" or "x,y,z" into the matching variant.
func parseVector(cmd, s string) vec.Vector {
	v, err := vectorFromString(s)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vectool %s: %v\n", cmd, err)
		os.Exit(1)
	}
	return v
}

// parseVectorArg parses the positional vector argument at index i, checking
// that exactly want arguments were supplied.
func parseVectorArg(cmd string, args []string, i, want int) vec.Vector {
	if len(args) != want {
		fmt.Fprintf(os.Stderr, "Usage: vectool %s <vector>", cmd)
		if want == 2 {
			fmt.Fprint(os.Stderr, " <vector>")
		}
		fmt.Fprintln(os.Stderr)
		os.Exit(1)
	}
	return parseVector(cmd, args[i])
}

func parseScalar(cmd, s string) float32 {
	f, err := strconv.ParseFloat(s, 32)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vectool %s: invalid scalar %q\n", cmd, s)
		os.Exit(1)
	}
	return float32(f)
}

func vectorFromString(s string) (vec.Vector, error) {
	parts := strings.Split(s, ",")
	comps := make([]float32, 0, len(parts))
	for _, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return nil, fmt.Errorf("invalid component %q in %q", p, s)
		}
		comps = append(comps, float32(f))
	}

	switch len(comps) {
	case 2:
		return vec.NewVec2(comps[0], comps[1]), nil
	case 3:
		return vec.NewVec3(comps[0], comps[1], comps[2]), nil
	default:
		return nil, fmt.Errorf("expected 2 or 3 components, got %d in %q", len(comps), s)
	}
}

// printer formats results per the output config.
type printer struct {
	precision int
	degrees   bool
}

func (p printer) scalar(f float32) {
	fmt.Println(p.format(f))
}

func (p printer) angle(radians float32) {
	if p.degrees {
		fmt.Printf("%s deg\n", p.format(radians*180/math.Pi))
		return
	}
	fmt.Printf("%s rad\n", p.format(radians))
}

func (p printer) vector(v vec.Vector) {
	switch c := v.(type) {
	case vec.Vec2:
		fmt.Printf("%s,%s\n", p.format(c.X), p.format(c.Y))
	case vec.Vec3:
		fmt.Printf("%s,%s,%s\n", p.format(c.X), p.format(c.Y), p.format(c.Z))
	default:
		fmt.Println(v)
	}
}

func (p printer) format(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', p.precision, 32)
}
