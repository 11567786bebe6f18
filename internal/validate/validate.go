// Package validate runs the gin binding validator with the conventions every
// request body here shares: errors are reported by JSON field path, and a
// NullInt counts as absent until it holds a value.
package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"vtpartner/internal/apperr"
)

func init() {
	v := Engine()
	v.RegisterTagNameFunc(jsonName)
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if n, ok := field.Interface().(NullInt); ok {
			return n.Valid
		}
		return nil
	}, NullInt{})
}

// Engine is the validator gin binds with. Custom rules are registered on it.
func Engine() *validator.Validate {
	return binding.Validator.Engine().(*validator.Validate)
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	return name
}

// Struct validates v against its binding tags. A failing body is reported as
// MissingFields naming every failing field.
func Struct(v any) error {
	return Error(binding.Validator.ValidateStruct(v))
}

// Error maps a bind or validation error onto the client taxonomy. Validation
// failures become MissingFields, anything else is an unreadable body.
func Error(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			fields = append(fields, path(fe.Namespace()))
		}
		return apperr.MissingFields(fields)
	}
	return apperr.BadRequest("Invalid request body", err)
}

// path turns a validator namespace into the JSON path the client sent:
// "RegisterRequest.AgentFields.vehicle_id" becomes "vehicle_id" and
// "RegisterRequest.documents[0].document_name" keeps its index.
func path(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	out := parts[:0]
	for _, p := range parts {
		// Go names of embedded structs are capitalised, JSON keys are not.
		if p == "" || unicode.IsUpper(rune(p[0])) {
			continue
		}
		out = append(out, p)
	}
	return strings.Join(out, ".")
}

// NullInt is a JSON integer that may arrive as a number, a numeric string, null, "" or not at all.
type NullInt struct {
	Int64 int64
	Valid bool
}

// Int returns a valid NullInt holding n.
func Int(n int64) NullInt {
	return NullInt{Int64: n, Valid: true}
}

func (n *NullInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*n = NullInt{}
		return nil
	}
	raw := string(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*n = NullInt{}
			return nil
		}
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fmt.Errorf("expected an integer, got %s", string(data))
	}
	*n = NullInt{Int64: v, Valid: true}
	return nil
}

func (n NullInt) MarshalJSON() ([]byte, error) {
	if !n.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.FormatInt(n.Int64, 10)), nil
}

// Ptr returns a pointer to the value, or nil when invalid.
func (n NullInt) Ptr() *int64 {
	if !n.Valid {
		return nil
	}
	v := n.Int64
	return &v
}
