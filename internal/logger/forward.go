package logger

import (
	"context"
	"log/slog"
)

// forwardHandler resolves the root handler on every record so component
// loggers created before Init still reach the log file.
//
// WithAttrs and WithGroup calls are kept in order and replayed against the
// current root, so attrs added after a group land inside it.
type forwardHandler struct {
	ops []handlerOp
}

// handlerOp is either a WithAttrs (attrs set) or a WithGroup (group set) call.
type handlerOp struct {
	attrs []slog.Attr
	group string
}

func (h *forwardHandler) target() slog.Handler {
	t := current()
	for _, op := range h.ops {
		if op.group != "" {
			t = t.WithGroup(op.group)
		} else {
			t = t.WithAttrs(op.attrs)
		}
	}
	return t
}

func (h *forwardHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return current().Enabled(ctx, level)
}

func (h *forwardHandler) Handle(ctx context.Context, r slog.Record) error {
	return h.target().Handle(ctx, r)
}

func (h *forwardHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	return h.with(handlerOp{attrs: append([]slog.Attr{}, attrs...)})
}

func (h *forwardHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	return h.with(handlerOp{group: name})
}

func (h *forwardHandler) with(op handlerOp) *forwardHandler {
	ops := make([]handlerOp, len(h.ops), len(h.ops)+1)
	copy(ops, h.ops)
	return &forwardHandler{ops: append(ops, op)}
}
