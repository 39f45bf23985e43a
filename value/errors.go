package value

import "github.com/DinaGala/computor-v2/errs"

func panicDomain(format string, args ...interface{}) {
	errs.Raise(errs.Domain, format, args...)
}

// panicDomainWrap raises a DomainError wrapping a lower-level cause, for
// sites where the domain failure was detected via a distinct sentinel
// condition (e.g. Gauss-Jordan finding no pivot) rather than a bare message.
func panicDomainWrap(cause error, format string, args ...interface{}) {
	errs.RaiseWrap(cause, errs.Domain, format, args...)
}

func panicType(format string, args ...interface{}) {
	errs.Raise(errs.Type, format, args...)
}

func panicShape(format string, args ...interface{}) {
	errs.Raise(errs.Shape, format, args...)
}
