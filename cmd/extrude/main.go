// Command extrude reads an orthogonal staircase profile from a file of
// point records, extrudes it perpendicular to its plane and writes the
// triangulated surface of the solid as triangle records.
//
// Usage:
//
//	extrude <input_filename> <output_filename> <extrusion_length>
package main

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aukilabs/go-tooling/pkg/errors"
	"github.com/aukilabs/go-tooling/pkg/logs"
	"github.com/chazu/extrude/pkg/geom"
	"github.com/chazu/extrude/pkg/kernel/sdfx"
	"github.com/chazu/extrude/pkg/records"
	"github.com/chazu/extrude/pkg/shape"
	"github.com/chazu/extrude/pkg/tessellate"
	"github.com/google/uuid"
	"github.com/segmentio/encoding/json"
	"github.com/shopspring/decimal"
)

// Exit codes.
const (
	exitOK            = 0
	exitIO            = 1
	exitUsage         = 2
	exitNotFound      = 3
	exitInvalidLength = 4
	exitFormat        = 5
	exitRange         = 6
	exitArgument      = 7
	exitGeometry      = 8
)

// Error types raised by the command itself.
const (
	errTypeUsage         = "usage-error"
	errTypeNotFound      = "input-not-found"
	errTypeInvalidLength = "invalid-length"
	errTypeIO            = "io-error"
)

const usageMessage = "You must specify parameters in this order : <input_filename> <output_filename> <extrusion_length>"

type config struct {
	Input  string
	Output string
	Length string
}

type summary struct {
	points    int
	faces     int
	triangles int
	vertices  int
	bboxMin   [3]float64
	bboxMax   [3]float64
	area      float64
	volume    float64
}

func main() {
	logs.SetLevel(logs.InfoLevel)
	logs.Encoder = json.Marshal
	errors.Encoder = json.Marshal

	os.Exit(run(os.Args[1:], os.Stdout))
}

// run executes one extrusion and returns the process exit code. Messages
// meant for the user are written to stdout.
func run(args []string, stdout io.Writer) int {
	runID := uuid.NewString()

	conf, err := parseConfig(args)
	if err == nil {
		err = validateConfig(conf)
	}
	if err != nil {
		return fail(stdout, runID, conf, err)
	}

	sum, err := extrude(conf)
	if err != nil {
		return fail(stdout, runID, conf, err)
	}

	logs.WithTag("run_id", runID).
		WithTag("input", conf.Input).
		WithTag("output", conf.Output).
		WithTag("length", conf.Length).
		WithTag("points", sum.points).
		WithTag("faces", sum.faces).
		WithTag("triangles", sum.triangles).
		WithTag("vertices", sum.vertices).
		WithTag("bbox_min", sum.bboxMin).
		WithTag("bbox_max", sum.bboxMax).
		WithTag("area", sum.area).
		WithTag("volume", sum.volume).
		Info("extrusion written")
	return exitOK
}

func parseConfig(args []string) (config, error) {
	if len(args) != 3 {
		return config{}, errors.New("wrong number of arguments").
			WithType(errTypeUsage).
			WithTag("args", len(args))
	}
	return config{
		Input:  args[0],
		Output: args[1],
		Length: args[2],
	}, nil
}

// validateConfig checks that the input file exists, then that the
// extrusion length is valid.
func validateConfig(conf config) error {
	if _, err := os.Stat(conf.Input); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return errors.New("input file not found").
				WithType(errTypeNotFound).
				WithTag("input", conf.Input).
				Wrap(err)
		}
		return errors.New("reading input file failed").
			WithType(errTypeIO).
			Wrap(err)
	}

	if _, err := parseLength(conf.Length); err != nil {
		return err
	}
	return nil
}

// parseLength parses an extrusion length. The length must be a decimal in
// the coordinate range and must not be zero.
func parseLength(s string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(s)
	if err != nil || !geom.InRange(v) || v.IsZero() {
		e := errors.New("invalid extrusion length").
			WithType(errTypeInvalidLength).
			WithTag("length", s)
		if err != nil {
			return decimal.Decimal{}, e.Wrap(err)
		}
		return decimal.Decimal{}, e
	}
	return v, nil
}

func extrude(conf config) (summary, error) {
	length, err := parseLength(conf.Length)
	if err != nil {
		return summary{}, err
	}

	f, err := os.Open(conf.Input)
	if err != nil {
		return summary{}, errors.New("opening input file failed").
			WithType(errTypeIO).
			WithTag("input", conf.Input).
			Wrap(err)
	}
	points, err := records.ReadPoints(f)
	f.Close()
	if err != nil {
		return summary{}, err
	}

	profile, err := shape.Create(points)
	if err != nil {
		return summary{}, err
	}

	solid, err := profile.Extrude(length)
	if err != nil {
		return summary{}, err
	}

	triangles := solid.Triangles()
	if err := writeAtomic(conf.Output, func(w io.Writer) error {
		return records.WriteTriangles(w, triangles)
	}); err != nil {
		return summary{}, err
	}

	k := sdfx.New()
	meshes, err := tessellate.Tessellate(solid, k)
	if err != nil {
		return summary{}, err
	}

	sum := summary{
		points:    len(points),
		faces:     solid.FaceCount(),
		triangles: len(triangles),
		vertices:  tessellate.Merge("solid", meshes).VertexCount(),
		area:      profile.Area(),
		volume:    solid.Volume(),
	}
	sum.bboxMin, sum.bboxMax = k.BoundingBox(solid)
	return sum, nil
}

// writeAtomic writes to a temporary file next to path and renames it over
// path once write succeeded. On failure no file is left at path.
func writeAtomic(path string, write func(io.Writer) error) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return errors.New("creating output file failed").
			WithType(errTypeIO).
			WithTag("output", path).
			Wrap(err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return errors.New("writing output file failed").
			WithType(errTypeIO).
			WithTag("output", path).
			Wrap(err)
	}
	if err := tmp.Close(); err != nil {
		return errors.New("closing output file failed").
			WithType(errTypeIO).
			WithTag("output", path).
			Wrap(err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.New("renaming output file failed").
			WithType(errTypeIO).
			WithTag("output", path).
			Wrap(err)
	}
	return nil
}

func exitCode(err error) int {
	switch {
	case errors.IsType(err, errTypeUsage):
		return exitUsage
	case errors.IsType(err, errTypeNotFound):
		return exitNotFound
	case errors.IsType(err, errTypeInvalidLength):
		return exitInvalidLength
	case errors.IsType(err, geom.ErrTypeFormat):
		return exitFormat
	case errors.IsType(err, geom.ErrTypeRange):
		return exitRange
	case errors.IsType(err, geom.ErrTypeArgument):
		return exitArgument
	case errors.IsType(err, geom.ErrTypeGeometry):
		return exitGeometry
	default:
		return exitIO
	}
}

// fail logs err, prints the user message for err and returns its exit
// code.
func fail(stdout io.Writer, runID string, conf config, err error) int {
	code := exitCode(err)
	switch code {
	case exitUsage:
		fmt.Fprintln(stdout, usageMessage)
	case exitNotFound:
		fmt.Fprintf(stdout, "File %s not found\n", conf.Input)
	case exitInvalidLength:
		fmt.Fprintf(stdout, "Extrusion value %s is not valid\n", conf.Length)
	default:
		fmt.Fprintf(stdout, "Extrusion failed: %s\n", err)
	}

	logs.WithTag("run_id", runID).
		WithTag("exit_code", code).
		Error(err)
	return code
}
