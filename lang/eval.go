package lang

import (
	"log/slog"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// refDecoration is the set of characters stripped from both ends of a
// reference passed to [Translator.Evaluate].
const refDecoration = RefMarker + "[]"

// Evaluate returns the stored value of the constant named by ref.
//
// The reference is written "@[NAME]"; the decoration characters '@', '[' and
// ']' are stripped from both ends, so "@NAME" and "NAME" are accepted too.
// The result is the constant itself ([Int] or [Seq]), not its rendered text.
//
// Evaluate fails with [ErrUndefinedConstant] when no constant of that name has
// been collected by a previous [Translator.Translate], which is always the
// case before the first translation.
func (t *Translator) Evaluate(ref string) (Value, error) {
	name := strings.Trim(strings.TrimSpace(ref), refDecoration)

	if err := ValidateName(name); err != nil {
		return nil, undefinedConstant(ref).Wrap(err)
	}

	program, env, err := t.compile(name)
	if err != nil {
		return nil, undefinedConstant(ref).Wrap(err)
	}

	out, err := vm.Run(program, env)
	if err != nil {
		return nil, undefinedConstant(ref).Wrap(err)
	}

	v, err := fromNative(out)
	if err != nil {
		return nil, err
	}

	t.opts.logger.Trace(
		"evaluated",
		slog.String("reference", ref),
		slog.String("kind", v.Kind().String()),
	)

	return v, nil
}

// evalCache holds the compiled lookups of one committed constant table.
// It is rebuilt when the translator's table changes.
type evalCache struct {
	table    *Constants
	env      map[string]any
	programs map[string]*vm.Program
}

// compile returns the program looking up the constant name in the session's
// constant table, compiling it on first use. The name must already be a
// valid identifier, which makes the program a single variable reference.
func (t *Translator) compile(name string) (*vm.Program, map[string]any, error) {
	if t.eval.table != t.consts {
		t.eval = evalCache{
			table:    t.consts,
			env:      t.consts.env(),
			programs: make(map[string]*vm.Program),
		}
	}

	if program, ok := t.eval.programs[name]; ok {
		return program, t.eval.env, nil
	}

	program, err := expr.Compile(name, expr.Env(t.eval.env))
	if err != nil {
		return nil, nil, err
	}

	t.eval.programs[name] = program

	return program, t.eval.env, nil
}
