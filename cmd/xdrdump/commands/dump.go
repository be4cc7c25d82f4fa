package commands

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/marmos91/xdrlib/internal/cli/output"
	"github.com/marmos91/xdrlib/internal/logger"
	"github.com/marmos91/xdrlib/pkg/xdr"
	"github.com/spf13/cobra"
)

// field is one entry of a parsed --layout list.
type field struct {
	spec string // original text, shown in the TYPE column
	kind string
	size int    // fopaque only
	elem *field // array and list only
}

func runDump(cmd *cobra.Command, args []string) error {
	level := "INFO"
	if dumpVerbose {
		level = "DEBUG"
	}
	logger.Init(cmd.ErrOrStderr(), level, logFormat)

	data, err := readInput(cmd, args)
	if err != nil {
		return err
	}

	fields, err := parseLayout(dumpLayout)
	if err != nil {
		return err
	}
	logger.Debug("layout parsed", "fields", len(fields), "input_bytes", len(data))

	u := xdr.NewUnpacker(data)
	u.MaxOpaqueLength = dumpMaxOpaque

	rows := make([][]string, 0, len(fields))
	for _, f := range fields {
		start := u.Position()
		value, err := decodeField(u, f)
		if err != nil {
			return fmt.Errorf("decode %s at offset %d: %w", f.spec, start, err)
		}
		logger.Debug("decoded field", "type", f.spec, "offset", start, "bytes", u.Position()-start)
		rows = append(rows, []string{strconv.Itoa(start), f.spec, value})
	}

	output.PrintTable(cmd.OutOrStdout(), []string{"OFFSET", "TYPE", "VALUE"}, rows)

	if err := u.Done(); err != nil {
		logger.Warn("stream not fully consumed by layout",
			"offset", u.Position(), "remaining", len(data)-u.Position())
	}
	return nil
}

// readInput loads the stream from the named file, or from stdin when the
// argument is omitted or "-".
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 || args[0] == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", args[0], err)
	}
	return data, nil
}

// parseLayout turns a comma-separated type list into fields.
func parseLayout(layout string) ([]field, error) {
	var fields []field
	for _, spec := range strings.Split(layout, ",") {
		spec = strings.TrimSpace(spec)
		if spec == "" {
			continue
		}
		f, err := parseField(spec)
		if err != nil {
			return nil, err
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, fmt.Errorf("layout %q contains no fields", layout)
	}
	return fields, nil
}

func parseField(spec string) (field, error) {
	kind, rest, qualified := strings.Cut(spec, ":")

	switch kind {
	case "uint", "int", "enum", "bool", "hyper", "uhyper",
		"float", "double", "string", "opaque":
		if qualified {
			return field{}, fmt.Errorf("type %s takes no qualifier in %q", kind, spec)
		}
		return field{spec: spec, kind: kind}, nil

	case "fopaque":
		n, err := strconv.Atoi(rest)
		if err != nil || n < 0 {
			return field{}, fmt.Errorf("fopaque needs a nonnegative size, got %q", spec)
		}
		return field{spec: spec, kind: kind, size: n}, nil

	case "array", "list":
		if rest == "" {
			return field{}, fmt.Errorf("%s needs an element type, e.g. %s:int", kind, kind)
		}
		elem, err := parseField(rest)
		if err != nil {
			return field{}, err
		}
		return field{spec: spec, kind: kind, elem: &elem}, nil

	default:
		return field{}, fmt.Errorf("unknown field type %q", spec)
	}
}

// decodeField reads one field from the stream and renders it for display.
func decodeField(u *xdr.Unpacker, f field) (string, error) {
	switch f.kind {
	case "uint":
		v, err := u.UnpackUint32()
		return strconv.FormatUint(uint64(v), 10), err
	case "int":
		v, err := u.UnpackInt32()
		return strconv.FormatInt(int64(v), 10), err
	case "enum":
		v, err := u.UnpackEnum()
		return strconv.FormatInt(int64(v), 10), err
	case "bool":
		v, err := u.UnpackBool()
		return strconv.FormatBool(v), err
	case "hyper":
		v, err := u.UnpackInt64()
		return strconv.FormatInt(v, 10), err
	case "uhyper":
		v, err := u.UnpackUint64()
		return strconv.FormatUint(v, 10), err
	case "float":
		v, err := u.UnpackFloat32()
		return strconv.FormatFloat(float64(v), 'g', -1, 32), err
	case "double":
		v, err := u.UnpackFloat64()
		return strconv.FormatFloat(v, 'g', -1, 64), err
	case "string":
		v, err := u.UnpackString()
		return strconv.Quote(v), err
	case "opaque":
		v, err := u.UnpackOpaque()
		return fmt.Sprintf("%x", v), err
	case "fopaque":
		v, err := u.UnpackFixedOpaque(f.size)
		return fmt.Sprintf("%x", v), err
	case "array":
		items, err := xdr.UnpackArray(u, func() (string, error) {
			return decodeField(u, *f.elem)
		})
		return "[" + strings.Join(items, ", ") + "]", err
	case "list":
		items, err := xdr.UnpackList(u, func() (string, error) {
			return decodeField(u, *f.elem)
		})
		return "[" + strings.Join(items, ", ") + "]", err
	default:
		return "", fmt.Errorf("unknown field kind %q", f.kind)
	}
}
