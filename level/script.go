package level

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/jakecoffman/cp"
)

// ApplyScript runs a tengo level script against b. The script sees
// tile(col, row), fill(col, row, repeat_x, repeat_y), spawn(col, row) and
// spawn_at(x, y) plus the tengo stdlib.
func ApplyScript(b *Builder, name string, src []byte) error {
	if b == nil {
		return fmt.Errorf("level: script %s: nil builder", name)
	}

	script := tengo.NewScript(src)
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	funcs := map[string]tengo.CallableFunc{
		"tile": func(args ...tengo.Object) (tengo.Object, error) {
			v, err := intArgs("tile", args, 2)
			if err != nil {
				return nil, err
			}
			b.AddTile(v[0], v[1])
			return tengo.UndefinedValue, nil
		},
		"fill": func(args ...tengo.Object) (tengo.Object, error) {
			v, err := intArgs("fill", args, 4)
			if err != nil {
				return nil, err
			}
			b.Repeat(v[0], v[1], v[2], v[3])
			return tengo.UndefinedValue, nil
		},
		"spawn": func(args ...tengo.Object) (tengo.Object, error) {
			v, err := intArgs("spawn", args, 2)
			if err != nil {
				return nil, err
			}
			b.SetSpawnTile(v[0], v[1])
			return tengo.UndefinedValue, nil
		},
		"spawn_at": func(args ...tengo.Object) (tengo.Object, error) {
			if len(args) != 2 {
				return nil, tengo.ErrWrongNumArguments
			}
			x, ok := tengo.ToFloat64(args[0])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "x", Expected: "float", Found: args[0].TypeName()}
			}
			y, ok := tengo.ToFloat64(args[1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{Name: "y", Expected: "float", Found: args[1].TypeName()}
			}
			b.SetSpawn(cp.Vector{X: x, Y: y})
			return tengo.UndefinedValue, nil
		},
	}
	for fname, fn := range funcs {
		if err := script.Add(fname, &tengo.UserFunction{Name: fname, Value: fn}); err != nil {
			return fmt.Errorf("level: script %s: bind %s: %w", name, fname, err)
		}
	}

	if _, err := script.Run(); err != nil {
		return fmt.Errorf("level: script %s: %w", name, err)
	}
	return nil
}

// RunScript builds a grid entirely from a tengo script.
func RunScript(name string, src []byte, origin, block cp.Vector) (*Grid, error) {
	b := NewBuilder(origin, block)
	if err := ApplyScript(b, name, src); err != nil {
		return nil, err
	}
	g, err := b.Build()
	if err != nil {
		return nil, fmt.Errorf("level: script %s: %w", name, err)
	}
	return g, nil
}

func intArgs(fname string, args []tengo.Object, n int) ([]int, error) {
	if len(args) != n {
		return nil, tengo.ErrWrongNumArguments
	}
	out := make([]int, n)
	for i, a := range args {
		v, ok := tengo.ToInt(a)
		if !ok {
			return nil, tengo.ErrInvalidArgumentType{
				Name:     fmt.Sprintf("%s arg %d", fname, i+1),
				Expected: "int",
				Found:    a.TypeName(),
			}
		}
		out[i] = v
	}
	return out, nil
}
