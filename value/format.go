package value

import (
	"strings"

	"github.com/DinaGala/computor-v2/config"
	"github.com/DinaGala/computor-v2/rational"
)

// String renders a Complex per spec §6: real-only as the Rational, pure
// imaginary as "bi" ("i" alone for 1i), general as "a + bi" / "a - bi",
// and exact zero as "0", at the default precision and base. Callers only
// ever see a Complex with a nonzero imaginary part (collapse keeps the
// zero-imaginary case as a Rational), but String stays total for
// debugging/internal use.
func (c Complex) String() string {
	return c.Sprint(nil)
}

// Sprint renders c the same way as String, honoring cfg's
// FloatSigFigs/OutputBase for every Rational component (SPEC_FULL §10: the
// `--format`/output-base config). cfg may be nil, in which case the
// default precision and base apply.
func (c Complex) Sprint(cfg *config.Config) string {
	if c.Re.IsZero() && c.Im.IsZero() {
		return "0"
	}
	if c.Im.IsZero() {
		return Rational{c.Re}.Sprint(cfg)
	}
	imStr := imagTerm(c.Im, cfg)
	if c.Re.IsZero() {
		return imStr
	}
	if c.Im.IsNegative() {
		return Rational{c.Re}.Sprint(cfg) + " - " + imagTerm(c.Im.Neg(), cfg)
	}
	return Rational{c.Re}.Sprint(cfg) + " + " + imStr
}

// imagTerm renders an imaginary coefficient as "bi" (a negative b keeps
// its sign, e.g. "-2i"), with a bare "i" when the coefficient is exactly 1.
func imagTerm(im rational.Rational, cfg *config.Config) string {
	s := im.Format(cfg.FloatSigFigs(), cfg.OutputBase())
	if s == "1" {
		return "i"
	}
	return s + "i"
}

// String renders a Matrix per spec §6:
// "[ [ v , v , ... ] ; [ v , v , ... ] ; ... ]", at the default precision
// and base.
func (m Matrix) String() string {
	return m.Sprint(nil)
}

// Sprint renders m the same way as String, threading cfg into every cell
// (SPEC_FULL §10).
func (m Matrix) Sprint(cfg *config.Config) string {
	var b strings.Builder
	b.WriteString("[ ")
	for r := 0; r < m.Rows; r++ {
		if r > 0 {
			b.WriteString(" ; ")
		}
		b.WriteString("[ ")
		for c := 0; c < m.Cols; c++ {
			if c > 0 {
				b.WriteString(" , ")
			}
			b.WriteString(m.At(r, c).Sprint(cfg))
		}
		b.WriteString(" ]")
	}
	b.WriteString(" ]")
	return b.String()
}
