package codec

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fxamacker/cbor/v2"
	"github.com/tidwall/pretty"
	"gopkg.in/yaml.v3"
)

// Options tune Encode.
type Options struct {
	// Indent is the number of spaces per nesting level. Zero writes compact
	// JSON and YAML with its default indentation. CBOR ignores it.
	Indent int
}

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: CBOR encoder initialization failed: " + err.Error())
	}

	// The default map type (map[any]any) keeps non-string keys decodable;
	// Normalize turns them into strings.
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: CBOR decoder initialization failed: " + err.Error())
	}
}

// Decode parses data and returns it as a normalized data tree. Empty input
// decodes to nil.
func Decode(format Format, data []byte) (any, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var (
		tree any
		err  error
	)

	switch format {
	case JSON:
		err = json.Unmarshal(data, &tree)
	case YAML:
		err = yaml.Unmarshal(data, &tree)
	case CBOR:
		err = decMode.Unmarshal(data, &tree)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}

	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", format, err)
	}

	return Normalize(tree), nil
}

// Encode writes tree in format.
func Encode(format Format, tree any, opts Options) ([]byte, error) {
	tree = Normalize(tree)

	switch format {
	case JSON:
		out, err := json.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}

		if opts.Indent > 0 {
			out = pretty.PrettyOptions(out, &pretty.Options{
				Width:  80,
				Indent: strings.Repeat(" ", opts.Indent),
			})
		}

		return out, nil

	case YAML:
		var buf bytes.Buffer

		enc := yaml.NewEncoder(&buf)
		if opts.Indent > 0 {
			enc.SetIndent(opts.Indent)
		}

		if err := enc.Encode(tree); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		if err := enc.Close(); err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}

		return buf.Bytes(), nil

	case CBOR:
		out, err := encMode.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encode cbor: %w", err)
		}

		return out, nil
	}

	return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
}
