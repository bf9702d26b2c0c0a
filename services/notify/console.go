// Package notifysvc renders the transient user-visible notices the
// web client shows as toast messages.
package notifysvc

import (
	"fmt"
	"io"
	"os"

	"github.com/jakartamandarin/console/core"
)

type consoleNotifier struct {
	out io.Writer
}

var _ core.Notifier = (*consoleNotifier)(nil)

func NewConsoleNotifier(out ...io.Writer) core.Notifier {
	w := io.Writer(os.Stdout)
	if len(out) > 0 {
		w = out[0]
	}
	return &consoleNotifier{out: w}
}

func (n *consoleNotifier) notify(level core.NotificationLevel, msg string) {
	fmt.Fprintf(n.out, "[%s] %s\n", level, msg)
}

func (n *consoleNotifier) Success(msg string) { n.notify(core.NotifySuccess, msg) }
func (n *consoleNotifier) Error(msg string)   { n.notify(core.NotifyError, msg) }
func (n *consoleNotifier) Info(msg string)    { n.notify(core.NotifyInfo, msg) }
