// Command vecconv converts 2D vectors between their text, array, JSON and
// YAML encodings.
//
// Usage:
//
//	vecconv [-to text|array|json|yaml] [-normalize] [-magnitude] [vector ...]
//
// Each vector is either "[x; y]" text or JSON ({"x":1,"y":2} or [1,2]).
// With no arguments, vectors are read one per line from stdin.
package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/pthm-cable/vec2/vector"
)

type options struct {
	to        string
	normalize bool
	magnitude bool
}

func main() {
	var opts options
	flag.StringVar(&opts.to, "to", "text", "Output encoding: text, array, json or yaml")
	flag.BoolVar(&opts.normalize, "normalize", false, "Normalize each vector before printing")
	flag.BoolVar(&opts.magnitude, "magnitude", false, "Print the magnitude after each vector")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	inputs := flag.Args()
	if len(inputs) == 0 {
		var err error
		if inputs, err = readLines(os.Stdin); err != nil {
			slog.Error("reading stdin", "error", err)
			os.Exit(1)
		}
	}

	if err := run(os.Stdout, inputs, opts); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}

func readLines(r io.Reader) ([]string, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func run(w io.Writer, inputs []string, opts options) error {
	for _, in := range inputs {
		v, err := decode(in)
		if err != nil {
			return err
		}
		if opts.normalize {
			v.Normalize()
		}

		out, err := encode(v, opts.to)
		if err != nil {
			return err
		}
		if opts.magnitude {
			out += " " + strconv.FormatFloat(v.Magnitude(), 'g', -1, 64)
		}
		if _, err := fmt.Fprintln(w, out); err != nil {
			return err
		}
	}
	return nil
}

// decode accepts "[x; y]" text first, then JSON record or array.
func decode(in string) (*vector.Vector2, error) {
	v, err := vector.Parse(in)
	if err == nil {
		return v, nil
	}
	// JSON never contains ';', so this was meant as text
	if strings.Contains(in, ";") {
		return nil, fmt.Errorf("decoding %q: %w", in, err)
	}
	// null would decode as a no-op and print the zero vector
	if strings.TrimSpace(in) == "null" {
		return nil, fmt.Errorf("decoding %q: %w", in, vector.ErrMalformed)
	}
	v = vector.Zero()
	if err := json.Unmarshal([]byte(in), v); err != nil {
		return nil, fmt.Errorf("decoding %q: %w", in, err)
	}
	return v, nil
}

func encode(v *vector.Vector2, to string) (string, error) {
	switch to {
	case "text":
		return v.String(), nil
	case "array":
		data, err := json.Marshal(v.ToArray())
		return string(data), err
	case "json":
		data, err := json.Marshal(v)
		return string(data), err
	case "yaml":
		var node yaml.Node
		if err := node.Encode(v); err != nil {
			return "", err
		}
		node.Style = yaml.FlowStyle
		data, err := yaml.Marshal(&node)
		return strings.TrimSpace(string(data)), err
	default:
		return "", fmt.Errorf("unknown encoding %q", to)
	}
}
