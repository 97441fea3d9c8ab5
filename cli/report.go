package cli

import (
	"context"
	stderrors "errors"
	"fmt"

	"github.com/kbukum/streamcalc/errors"
	"github.com/kbukum/streamcalc/logger"
)

// report prints err to stderr, preceded by the usage text for mistakes in
// the invocation itself.
func (a *app) report(err error) {
	if stderrors.Is(err, context.Canceled) {
		fmt.Fprintln(a.streams.Err, "calc: interrupted")
		return
	}
	appErr := errors.Wrap(err)
	if errors.ShowsUsage(appErr.Code) {
		fmt.Fprintln(a.streams.Err, a.usage(a.root))
	}
	fmt.Fprintln(a.streams.Err, message(appErr))
	a.log.Debug("run failed", logger.Fields("code", string(appErr.Code), "details", appErr.Details))
}

// message is the one-line form of an error shown to the user.
func message(e *errors.AppError) string {
	msg := "calc: " + e.Message
	if e.Cause != nil && e.Code != errors.ErrCodeParse {
		msg += ": " + e.Cause.Error()
	}
	return msg
}
