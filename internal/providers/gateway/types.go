package gateway

import (
	"github.com/fsgateway/fsgateway/internal/scope"
	"github.com/fsgateway/fsgateway/internal/types"
)

// Ops bundles the scoped filesystem collaborators shared by the tool
// handlers. Everything here is immutable after construction.
type Ops struct {
	Guard      *scope.Guard
	Classifier *scope.Classifier
	Reader     *scope.Reader
	Enumerator *scope.Enumerator
}

// NewOps wires the scope collaborators from one configuration.
func NewOps(roots, extensions, ignore []string) *Ops {
	guard := scope.NewGuard(roots)
	classifier := scope.NewClassifier(extensions)
	return &Ops{
		Guard:      guard,
		Classifier: classifier,
		Reader:     scope.NewReader(guard, classifier),
		Enumerator: scope.NewEnumerator(guard, classifier, ignore),
	}
}

// Success helper
func Success(data map[string]interface{}) (*types.Result, error) {
	return &types.Result{Success: true, Data: data}, nil
}

// Failure builds a structured failure result from a classified error.
func Failure(err error) (*types.Result, error) {
	msg := err.Error()
	return &types.Result{
		Success: false,
		Data:    map[string]interface{}{"code": string(scope.CodeOf(err))},
		Error:   &msg,
	}, nil
}

// failMsg reports a parameter validation failure.
func failMsg(message string) (*types.Result, error) {
	return &types.Result{Success: false, Error: &message}, nil
}

// progressParams extracts the optional progress envelope controls.
func progressParams(params map[string]interface{}) scope.Progress {
	prog := scope.Progress{Precount: true}
	if v, ok := params["progress"].(bool); ok {
		prog.Enabled = v
	}
	if v, ok := params["batch_size"].(float64); ok && v > 0 {
		prog.BatchSize = int(v)
	}
	if v, ok := params["precount"].(bool); ok {
		prog.Precount = v
	}
	return prog
}
