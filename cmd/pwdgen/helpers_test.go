package main

import (
	"bytes"
	"errors"
	"log/slog"

	"github.com/chirichan/pwdgen/internal/sampler"
)

type fakeClipboard struct {
	text     string
	writes   int
	writeErr error
}

func (f *fakeClipboard) ReadAll() (string, error) { return f.text, nil }

func (f *fakeClipboard) WriteAll(text string) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.text = text
	f.writes++
	return nil
}

var errClipboard = errors.New("clipboard unavailable")

func zeroSampler() *sampler.Sampler {
	return sampler.New(sampler.SourceFunc(func(int) (int, error) { return 0, nil }))
}

func newTestCLI(s *sampler.Sampler, clip Clipboard) (*PwdGenCLI, *bytes.Buffer) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return &PwdGenCLI{
		Logger:    logger,
		Sampler:   s,
		Clipboard: clip,
		Notify:    Notifier{Logger: logger},
	}, &logs
}
