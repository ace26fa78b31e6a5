package transformer

import (
	"encoding/json"
	"errors"
	"fmt"
)

var (
	ErrFileNotFound = errors.New("input file not found")
	ErrRead         = errors.New("cannot read input file")
	ErrParse        = errors.New("invalid JSON")
	ErrWrite        = errors.New("cannot write output file")
)

//Describe JSON decoding errors with the offending key or offset
func describeJSONError(err error) string {
	var typeErr *json.UnmarshalTypeError
	var syntaxErr *json.SyntaxError
	switch {
	case errors.As(err, &typeErr):
		return fmt.Sprintf("key \"%s\" has invalid type \"%s\"", typeErr.Field, typeErr.Value)
	case errors.As(err, &syntaxErr):
		return fmt.Sprintf("%s, offset: %d", syntaxErr, syntaxErr.Offset)
	default:
		return err.Error()
	}
}
