// internal/state/session.go
package state

import (
	"fmt"
	"image"
	"log/slog"

	"ar-catcher/internal/app"
	"ar-catcher/internal/capture"
	"ar-catcher/internal/input"
)

// FrameSink принимает подготовленный кадр камеры для показа.
type FrameSink interface {
	SetFrame(frame *image.RGBA) error
}

// Session — общие коллабораторы всех состояний одного матча.
type Session struct {
	Game    *app.Game
	Camera  capture.Camera
	Tracker capture.HandTracker
	Input   input.Source
	Frames  FrameSink // может быть nil
	Width   int
	Height  int

	closed bool
}

// readFrame читает кадр, приводит к размеру поля и отдаёт на показ.
func (s *Session) readFrame() (*image.RGBA, error) {
	raw, err := s.Camera.Read()
	if err != nil {
		return nil, fmt.Errorf("camera read: %w", err)
	}
	frame := capture.PrepareFrame(raw, s.Width, s.Height)
	if s.Frames != nil {
		if err := s.Frames.SetFrame(frame); err != nil {
			return nil, fmt.Errorf("frame upload: %w", err)
		}
	}
	return frame, nil
}

// Close освобождает камеру. Повторные вызовы ничего не делают.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if err := s.Camera.Close(); err != nil {
		return fmt.Errorf("camera close: %w", err)
	}
	slog.Debug("camera released")
	return nil
}
