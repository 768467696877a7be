// Package rpc holds the connect plumbing shared by every entity service:
// a plain JSON codec for hand-written message structs, procedure
// registration and the mapping from apperr kinds to connect codes.
package rpc

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"connectrpc.com/connect"
)

// Package is the protobuf-style package every procedure lives under
const Package = "football.v1"

// JSONCodec marshals plain Go structs, which connect's protojson codec cannot handle
type JSONCodec struct {
	name string
}

var (
	_ connect.Codec = JSONCodec{}

	// JSON is registered for "application/json" bodies
	JSON = JSONCodec{name: "json"}
	// JSONCharsetUTF8 covers clients that send "application/json; charset=utf-8"
	JSONCharsetUTF8 = JSONCodec{name: "json; charset=utf-8"}
)

func (c JSONCodec) Name() string {
	return c.name
}

func (c JSONCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (c JSONCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return decodeError(err)
	}
	return nil
}

// decodeError rewrites encoding/json failures into messages that name the field
func decodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		field := typeErr.Field
		if i := strings.LastIndex(field, "."); i >= 0 {
			field = field[i+1:]
		}
		return fmt.Errorf("%s must be %s", field, article(typeErr.Type.Kind().String()))
	}

	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return fmt.Errorf("malformed JSON at offset %d", syntaxErr.Offset)
	}

	return err
}

func article(kind string) string {
	switch {
	case strings.HasPrefix(kind, "int"), strings.HasPrefix(kind, "uint"), strings.HasPrefix(kind, "float"):
		return "a number"
	case kind == "string":
		return "a string"
	case kind == "bool":
		return "a boolean"
	case kind == "slice":
		return "a list"
	case kind == "struct", kind == "map":
		return "an object"
	default:
		return "a valid " + kind
	}
}
