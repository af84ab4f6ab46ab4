package combinator

import (
	"github.com/dhamidi/feast/pass"
	"github.com/tliron/commonlog"
)

const logName = "feast.combinator"

// Trace logs each attempt of sub and its outcome at debug level under name.
// The outcome itself is returned unchanged. The logger is resolved on every
// call so that a backend configured after construction is picked up.
func Trace[P pass.Positioned, O any](name string, sub Parser[P, O]) Parser[P, O] {
	return func(p P) (O, P, error) {
		log := commonlog.GetLogger(logName)
		if !log.AllowLevel(commonlog.Debug) {
			return sub(p)
		}
		log.Debugf("%s: trying at offset %d", name, p.Offset())
		out, next, err := sub(p)
		if err != nil {
			log.Debugf("%s: failed: %s", name, err)
			return out, next, err
		}
		log.Debugf("%s: matched offsets %d..%d", name, p.Offset(), next.Offset())
		return out, next, nil
	}
}
