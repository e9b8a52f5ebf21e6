package debugs

import (
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Eval runs a Starlark script against the given globals, for scripted
// inspection where a REPL is not wanted.
func Eval(name string, script string, globals map[string]any) (starlark.StringDict, error) {
	mappings := make(starlark.StringDict)
	for gname, value := range globals {
		mappings[gname] = toStarlarkValue(value)
	}

	thread := &starlark.Thread{
		Name: name,
	}
	return starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
		},
		thread,
		name,
		script,
		mappings,
	)
}
