package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/seek/internal/domain"
)

// userMessage turns an error into a one-line message fit for the status area.
func userMessage(err error) string {
	if err == nil {
		return ""
	}
	if errors.Is(err, context.Canceled) {
		return "Search cancelled"
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindInvalidInput:
			return "Invalid input: " + inputReason(oe)

		case domain.KindInvalidConfig:
			if strings.TrimSpace(oe.Path) != "" {
				return "Invalid config at " + filepath.Base(oe.Path)
			}
			return "Invalid config"

		case domain.KindNotFound:
			return "Not found"

		default:
			return "Unexpected error (see logs)"
		}
	}

	return "Unexpected error (see logs)"
}

// inputReason strips the trailing sentinel text from an invalid_input cause.
func inputReason(oe *domain.OpError) string {
	if oe.Err == nil {
		return "rejected"
	}
	msg := oe.Err.Error()
	msg = strings.TrimSuffix(msg, ": "+domain.ErrInvalidInput.Error())
	return msg
}
