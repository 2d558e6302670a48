// Package crash turns a panic on the UI goroutine into a logged error, a
// report file and a non-zero exit.
package crash

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"

	applog "FreehandBoard/internal/log"
	"FreehandBoard/internal/version"
)

// exitFn and stderr are swapped out in tests.
var (
	exitFn           = os.Exit
	stderr io.Writer = os.Stderr
	dir              = os.TempDir
)

// Recover must be deferred directly: defer crash.Recover().
func Recover() {
	r := recover()
	if r == nil {
		return
	}
	l := applog.WithComponent("crash")
	stack := debug.Stack()
	l.Error("panic recovered", slog.Any("panic", r), slog.String("stack", string(stack)))

	path, err := writeReport(r, stack)
	if err != nil {
		l.Error("write crash report", slog.Any("err", err))
	}
	fmt.Fprintf(stderr, "FreehandBoard crashed. Report: %s\nVersion: %s %s/%s\n", path, version.String(), runtime.GOOS, runtime.GOARCH)
	exitFn(2)
}

func writeReport(panicVal any, stack []byte) (string, error) {
	path := filepath.Join(dir(), fmt.Sprintf("freehandboard-crash-%s.log", time.Now().Format("20060102-150405")))

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "FreehandBoard crash report\n")
	fmt.Fprintf(&buf, "Timestamp: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(&buf, "Version: %s\n", version.String())
	fmt.Fprintf(&buf, "OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(&buf, "\nPanic: %v\n\nStack:\n%s\n", panicVal, stack)

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return path, fmt.Errorf("crash report %s: %w", path, err)
	}
	return path, nil
}
