package errors

import (
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"
)

// handlerSlot wraps the interface so atomic.Value always stores one
// concrete type.
type handlerSlot struct {
	h ErrorHandler
}

var current atomic.Value

func init() {
	current.Store(handlerSlot{h: &LogHandler{}})
}

// SetHandler installs the process-wide error handler. Nil restores a
// LogHandler writing to stderr.
func SetHandler(h ErrorHandler) {
	if h == nil {
		h = &LogHandler{}
	}
	current.Store(handlerSlot{h: h})
}

// Handler returns the installed error handler.
func Handler() ErrorHandler {
	return current.Load().(handlerSlot).h
}

// Report stamps err with the current time if it has none and hands it to
// the installed handler.
func Report(err *Error) {
	if err == nil {
		return
	}
	if err.Timestamp.IsZero() {
		err.Timestamp = time.Now()
	}
	Handler().HandleError(err)
}

// ReportPanic hands a recovered panic to the installed handler.
func ReportPanic(err *PanicError) {
	if err == nil {
		return
	}
	Handler().HandlePanic(err)
}

// Recover reports a panic in progress instead of letting it unwind further.
// Use it directly in a defer:
//
//	defer errors.Recover("widgets.ShadowContainer.Paint")
func Recover(op string) {
	r := recover()
	if r == nil {
		return
	}
	ReportPanic(&PanicError{
		Op:         op,
		Value:      r,
		StackTrace: CaptureStack(),
		Timestamp:  time.Now(),
	})
}

// CaptureStack formats the caller's stack, one "function\n\tfile:line"
// entry per frame, omitting CaptureStack and its direct caller.
func CaptureStack() string {
	const maxDepth = 32
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(3, pcs)
	if n == 0 {
		return ""
	}

	var sb strings.Builder
	frames := runtime.CallersFrames(pcs[:n])
	for more := true; more; {
		var frame runtime.Frame
		frame, more = frames.Next()
		sb.WriteString(frame.Function)
		sb.WriteString("\n\t")
		sb.WriteString(frame.File)
		sb.WriteByte(':')
		sb.WriteString(strconv.Itoa(frame.Line))
		sb.WriteByte('\n')
	}
	return sb.String()
}
