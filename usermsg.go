package devup

import (
	"context"
	"fmt"
	"io"
	"log/slog"
)

// UserMessenger delivers human-readable status text, colorized by severity.
type UserMessenger interface {
	Notice(ctx context.Context, msg string)
	Warning(ctx context.Context, msg string)
	Error(ctx context.Context, msg string)
}

type terminalMessenger struct {
	writer io.Writer
}

func NewTerminalMessenger(writer io.Writer) UserMessenger {
	return &terminalMessenger{writer: writer}
}

func (tm *terminalMessenger) Notice(ctx context.Context, msg string) {
	tm.emit(ctx, "\033[32m", msg)
}

func (tm *terminalMessenger) Warning(ctx context.Context, msg string) {
	tm.emit(ctx, "\033[33m", msg)
}

func (tm *terminalMessenger) Error(ctx context.Context, msg string) {
	tm.emit(ctx, "\033[31m", msg)
}

func (tm *terminalMessenger) emit(ctx context.Context, color, msg string) {
	if tm.writer == nil {
		slog.DebugContext(ctx, "userMsg (no writer)", "msg", msg)
		return
	}
	fmt.Fprintln(tm.writer, color+msg+"\033[0m")
}

type nullMessenger struct{}

func NewNullMessenger() UserMessenger {
	return &nullMessenger{}
}

func (nm *nullMessenger) Notice(ctx context.Context, msg string) {
	slog.DebugContext(ctx, "userMsg (null messenger)", "msg", msg)
}

func (nm *nullMessenger) Warning(ctx context.Context, msg string) {
	slog.DebugContext(ctx, "userMsg (null messenger)", "msg", msg)
}

func (nm *nullMessenger) Error(ctx context.Context, msg string) {
	slog.DebugContext(ctx, "userMsg (null messenger)", "msg", msg)
}
