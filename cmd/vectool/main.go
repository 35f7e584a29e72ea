// vectool is a CLI calculator for 2D and 3D vector math.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/openmodel/vecmath/internal/config"
	"github.com/openmodel/vecmath/internal/logger"
	"github.com/openmodel/vecmath/pkg/vec"
)

func main() {
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	args := flagArgs()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	command := args[0]
	rest := args[1:]

	p := printer{precision: cfg.Output.Precision, degrees: cfg.Output.Degrees}

	switch command {
	case "mag":
		cmdMag(p, rest)
	case "norm":
		cmdNorm(p, rest)
	case "add":
		cmdBinary(p, "add", rest)
	case "sub":
		cmdBinary(p, "sub", rest)
	case "dot":
		cmdDot(p, rest)
	case "cross":
		cmdCross(p, rest)
	case "angle":
		cmdAngle(p, rest)
	case "dist":
		cmdDist(p, rest)
	case "scale":
		cmdScalar(p, "scale", rest)
	case "div":
		cmdScalar(p, "div", rest)
	case "lerp":
		cmdLerp(p, rest)
	case "config":
		cmdConfig(cfg, rest)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`vectool - 2D/3D vector math calculator

Vectors are written as comma-separated components: "1,2" or "1,2,3".
Both operands of a binary operation must have the same dimension.

Usage:
  vectool [flags] <command> [args]

Commands:
  mag <v>            Magnitude (Euclidean norm)
  norm <v>           Normalize to unit length
  add <a> <b>        Componentwise sum
  sub <a> <b>        Componentwise difference
  dot <a> <b>        Dot product
  cross <a> <b>      Cross product (3D only)
  angle <a> <b>      Angle between vectors
  dist <a> <b>       Distance between points
  scale <v> <s>      Multiply by scalar
  div <v> <s>        Divide by scalar
  lerp <a> <b> <t>   Linear interpolation, t in [0,1]
  config init        Write default config to the user config dir

Flags:
  -config <path>     Explicit config file
  -precision <n>     Decimal places in results
  -degrees           Report angles in degrees
  -debug             Enable debug logging
  -log-file <path>   Write logs to file

Examples:
  vectool mag 3,4
  vectool cross 1,0,0 0,1,0
  vectool -degrees angle 1,0 0,1`)
}

func cmdMag(p printer, args []string) {
	v := parseVectorArg("mag", args, 0, 1)
	p.scalar(v.Magnitude())
}

func cmdNorm(p printer, args []string) {
	v := parseVectorArg("norm", args, 0, 1)
	p.vector(v.Normalize())
}

func cmdBinary(p printer, name string, args []string) {
	a := parseVectorArg(name, args, 0, 2)
	b := parseVectorArg(name, args, 1, 2)

	var (
		result vec.Vector
		err    error
	)
	if name == "add" {
		result, err = a.Add(b)
	} else {
		result, err = a.Sub(b)
	}
	if err != nil {
		fail(err)
	}
	p.vector(result)
}

func cmdDot(p printer, args []string) {
	a := parseVectorArg("dot", args, 0, 2)
	b := parseVectorArg("dot", args, 1, 2)

	d, err := a.Dot(b)
	if err != nil {
		fail(err)
	}
	p.scalar(d)
}

func cmdCross(p printer, args []string) {
	a := parseVectorArg("cross", args, 0, 2)
	b := parseVectorArg("cross", args, 1, 2)

	result, err := a.Cross(b)
	if err != nil {
		fail(err)
	}
	p.vector(result)
}

func cmdAngle(p printer, args []string) {
	a := parseVectorArg("angle", args, 0, 2)
	b := parseVectorArg("angle", args, 1, 2)

	angle, err := vec.AngleBetween(a, b)
	if err != nil {
		fail(err)
	}
	p.angle(angle)
}

func cmdDist(p printer, args []string) {
	a := parseVectorArg("dist", args, 0, 2)
	b := parseVectorArg("dist", args, 1, 2)

	d, err := vec.Distance(a, b)
	if err != nil {
		fail(err)
	}
	p.scalar(d)
}

func cmdScalar(p printer, name string, args []string) {
	if len(args) != 2 {
		fmt.Fprintf(os.Stderr, "Usage: vectool %s <vector> <scalar>\n", name)
		os.Exit(1)
	}
	v := parseVector(name, args[0])
	s := parseScalar(name, args[1])

	if name == "scale" {
		p.vector(v.Scale(s))
		return
	}
	result, err := v.Div(s)
	if err != nil {
		fail(err)
	}
	p.vector(result)
}

func cmdLerp(p printer, args []string) {
	if len(args) != 3 {
		fmt.Fprintln(os.Stderr, "Usage: vectool lerp <a> <b> <t>")
		os.Exit(1)
	}
	a := parseVector("lerp", args[0])
	b := parseVector("lerp", args[1])
	t := parseScalar("lerp", args[2])

	result, err := vec.Lerp(a, b, t)
	if err != nil {
		fail(err)
	}
	p.vector(result)
}

func cmdConfig(cfg *config.Config, args []string) {
	if len(args) < 1 || args[0] != "init" {
		fmt.Fprintln(os.Stderr, "Usage: vectool config init")
		os.Exit(1)
	}
	if err := cfg.Save(); err != nil {
		fail(err)
	}
	fmt.Printf("Wrote config to %s\n", config.ConfigDir())
}

func fail(err error) {
	logger.Error("command failed", zap.Error(err))
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	os.Exit(1)
}
