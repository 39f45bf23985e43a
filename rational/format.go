package rational

import "fmt"

// defaultSigFigs and defaultBase are the values String() renders with when
// no presentation config is available (errors, tests, debug contexts),
// matching the teacher's BigFloat default format.
const (
	defaultSigFigs = 12
	defaultBase    = 10
)

// String renders a per spec §6: "n" when the denominator is 1, else
// "n/d", with the sign carried on the numerator, at the default precision
// and base. Callers that have a presentation config (the REPL's
// `--format`/`--base` settings) should use Format instead.
func (a Rational) String() string {
	return a.Format(defaultSigFigs, defaultBase)
}

// Format renders the same way as String, except a floating
// approximation is rendered to sigFigs significant digits and an exact
// integer or fraction is rendered in the given base (SPEC_FULL §10: the
// `--format` CLI flag and config.Config.OutputBase, threaded here by
// value.Rational.Sprint).
func (a Rational) Format(sigFigs, base int) string {
	if a.approx && !a.IsInt() {
		f := a.Float64()
		return fmt.Sprintf("%.*g", sigFigs, f)
	}
	if a.IsInt() {
		return a.Num().Text(base)
	}
	return fmt.Sprintf("%s/%s", a.Num().Text(base), a.Den().Text(base))
}
