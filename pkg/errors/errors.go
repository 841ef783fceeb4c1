package errors

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"
)

// AssemblyError is returned when the label pipeline cannot produce a usable
// result. Data-completeness problems are NOT assembly errors; those become
// validation findings instead.
type AssemblyError struct {
	Stage     string
	Field     string
	ProductID string
	Message   string
}

func NewAssemblyError(msg string) *AssemblyError {
	return &AssemblyError{
		Message: msg,
	}
}

// NewAssemblyErrorf creates a new AssemblyError with a formatted message
func NewAssemblyErrorf(format string, args ...any) *AssemblyError {
	// Handle error wrapping directive %w the same way fmt.Errorf would,
	// but keep the result an *AssemblyError
	for i, arg := range args {
		if err, ok := arg.(error); ok && strings.Contains(format, "%w") {
			format = strings.Replace(format, "%w", "%v", 1)
			args[i] = err.Error()
		}
	}

	return &AssemblyError{
		Message: fmt.Sprintf(format, args...),
	}
}

func WrapAssemblyError(e error) *AssemblyError {
	if e == nil {
		return nil
	}

	if assemblyError, ok := e.(*AssemblyError); ok {
		return assemblyError
	}

	return &AssemblyError{
		Message: e.Error(),
	}
}

func (e *AssemblyError) Error() string {
	path := []string{}
	if e.Stage != "" {
		path = append(path, fmt.Sprintf("stage '%s'", e.Stage))
	}
	if e.Field != "" {
		path = append(path, fmt.Sprintf("field '%s'", e.Field))
	}

	if len(path) == 0 {
		return e.Message
	}

	return strings.Join(path, " -> ") + ": " + e.Message
}

func (e *AssemblyError) AddStage(stage string) *AssemblyError {
	e.Stage = stage
	return e
}

func (e *AssemblyError) AddField(field string) *AssemblyError {
	e.Field = field
	return e
}

func (e *AssemblyError) AddProductID(productID string) *AssemblyError {
	e.ProductID = productID
	return e
}

func (e *AssemblyError) ToHTTPError() *httperror.HTTPError {
	return httperror.NewHTTPError(http.StatusUnprocessableEntity, e.Error()).AddMetaValue("stage", e.Stage).AddMetaValue("field", e.Field).AddMetaValue("product_id", e.ProductID)
}

func IsAssemblyError(err error) bool {
	_, ok := err.(*AssemblyError)
	return ok
}
