package logger

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
)

type Logger struct {
	Verbose bool
	Debug   bool
}

func (l Logger) Infof(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stdout, color.GreenString("[info] ")+msg+"\n", args...)
	}
}

func (l Logger) Debugf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stdout, color.CyanString("[debug] ")+msg+"\n", args...)
	}
}

func (l Logger) Warnf(msg string, args ...any) {
	if l.Verbose || l.Debug {
		fmt.Fprintf(os.Stderr, color.YellowString("[warn] ")+msg+"\n", args...)
	}
}

// WarnfAlways prints a warning regardless of verbosity.
func (l Logger) WarnfAlways(msg string, args ...any) {
	fmt.Fprintln(os.Stdout, color.MagentaString("WARNING: ")+color.RedString("%s", fmt.Sprintf(msg, args...)))
}

// Successf prints a success line regardless of verbosity.
func (l Logger) Successf(msg string, args ...any) {
	fmt.Fprintln(os.Stdout, SuccessString(msg, args...))
}

// SuccessString renders the line Successf prints, without a newline.
func SuccessString(msg string, args ...any) string {
	return color.MagentaString("Success: ") + color.GreenString("%s", fmt.Sprintf(msg, args...))
}

func (l Logger) Errorf(msg string, args ...any) {
	if l.Debug {
		fmt.Fprintf(os.Stderr, color.RedString("[error] ")+msg+"\n", args...)
	}
}

// ErrorfAndReturn logs the message at error level and returns it as an error.
func (l Logger) ErrorfAndReturn(msg string, args ...any) error {
	l.Errorf(msg, args...)
	return errors.Newf(msg, args...)
}
