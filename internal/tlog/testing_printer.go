package tlog

// TestingPrinter часть *testing.T и *testing.B нужная для вывода ошибок.
type TestingPrinter interface {
	Helper()
	Log(a ...any)
	Error(a ...any)
	Errorf(format string, a ...any)
}
