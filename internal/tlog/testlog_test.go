package tlog_test

import (
	stderrs "errors"
	"fmt"
	"strings"
	"testing"

	"github.com/sirkon/errors"

	"github.com/sirkon/linear/internal/tlog"
)

func TestLogging(t *testing.T) {
	t.Run("log-std-error", func(t *testing.T) {
		var p recordingPrinter
		tlog.Log(&p, stderrs.New("not an error"))
		if !strings.Contains(p.String(), "not an error") {
			t.Errorf("error text is missing in %q", p.String())
		}
		tlog.Log(t, stderrs.New("not an error"))
	})

	t.Run("log-ctxed-error", func(t *testing.T) {
		const errRange errors.Const = "index is out of range"
		err := errors.Wrap(errRange, "get element").Int("index", 7).Int("size", 2)

		var p recordingPrinter
		tlog.Log(&p, err)
		out := p.String()
		for _, want := range []string{"get element: index is out of range", "index", "7", "size", "2"} {
			if !strings.Contains(out, want) {
				t.Errorf("%q is missing in rendered error %q", want, out)
			}
		}
		if strings.Index(out, "index\033[0m") > strings.Index(out, "size\033[0m") {
			t.Errorf("context must be rendered in order of addition, got %q", out)
		}
		tlog.Log(t, err)
	})

	t.Run("error", func(t *testing.T) {
		var p recordingPrinter
		tlog.Error(&p, errors.New("error").Bool("is-error", true))
		if !p.failed {
			t.Error("error must fail the test")
		}
		if !strings.Contains(p.String(), "is-error") {
			t.Errorf("context is missing in %q", p.String())
		}
	})

	t.Run("check-nil", func(t *testing.T) {
		if tlog.Check(t, nil) {
			t.Error("nil error must pass the check")
		}
	})

	t.Run("expect", func(t *testing.T) {
		const errSentinel errors.Const = "sentinel"
		err := errors.Wrap(errSentinel, "wrapped").Int("index", 3)
		if tlog.Expect(t, err, "sentinel", func(err error) bool {
			return errors.Is(err, errSentinel)
		}) {
			t.Error("wrapped sentinel must be recognized")
		}
	})
}

// recordingPrinter сохраняет всё выведенное для проверки.
type recordingPrinter struct {
	strings.Builder
	failed bool
}

func (p *recordingPrinter) Helper() {}

func (p *recordingPrinter) Log(a ...any) {
	_, _ = fmt.Fprintln(p, a...)
}

func (p *recordingPrinter) Error(a ...any) {
	p.failed = true
	_, _ = fmt.Fprintln(p, a...)
}

func (p *recordingPrinter) Errorf(format string, a ...any) {
	p.failed = true
	_, _ = fmt.Fprintf(p, format+"\n", a...)
}
