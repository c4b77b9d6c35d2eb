// Package logx is a thin structured-logging facade over zerolog.
//
// It exists so the rest of the codebase never imports zerolog directly:
// components take a logx.Logger, the zero value is a safe no-op, and the
// Service can swap sinks/levels at runtime when the config file changes.
package logx
