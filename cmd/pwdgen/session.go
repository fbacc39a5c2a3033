package main

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/chirichan/pwdgen/internal/sampler"
)

const (
	FormMinLength = 8
	FormMaxLength = 20
	DefaultLength = 20

	copyLockout = 3 * time.Second
)

var ErrCopyLocked = errors.New("copy locked")

// Session holds the state of one interactive form: the current config and
// the last password that was generated successfully.
type Session struct {
	mu         sync.Mutex
	cfg        sampler.GenerationConfig
	password   string
	copyLocked bool

	sampler   *sampler.Sampler
	clipboard Clipboard
	notify    Notifier
	afterFunc func(time.Duration, func())
}

func NewSession(s *sampler.Sampler, clip Clipboard, n Notifier) *Session {
	return &Session{
		cfg:       sampler.GenerationConfig{Length: DefaultLength, Classes: sampler.AllClasses},
		sampler:   s,
		clipboard: clip,
		notify:    n,
		afterFunc: func(d time.Duration, f func()) { time.AfterFunc(d, f) },
	}
}

func (s *Session) Config() sampler.GenerationConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Session) Password() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.password
}

// SetLength clamps n to [FormMinLength, FormMaxLength] and returns the stored value.
func (s *Session) SetLength(n int) int {
	n = min(max(n, FormMinLength), FormMaxLength)
	s.mu.Lock()
	s.cfg.Length = n
	s.mu.Unlock()
	return n
}

func (s *Session) SetClass(c sampler.Class, on bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if on {
		s.cfg.Classes = s.cfg.Classes.With(c)
	} else {
		s.cfg.Classes = s.cfg.Classes.Without(c)
	}
}

// ToggleClass flips c and reports whether it is now enabled.
func (s *Session) ToggleClass(c sampler.Class) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cfg.Classes = s.cfg.Classes.Toggle(c)
	return s.cfg.Classes.Has(c)
}

// Generate replaces the current password. On failure an alert is raised and
// the previous password is kept.
func (s *Session) Generate() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pwd, err := s.sampler.Generate(s.cfg)
	if err != nil {
		if errors.Is(err, sampler.ErrNoCharacterClassSelected) {
			s.notify.Alert(MsgNoClass, err)
		}
		return s.password, err
	}
	s.password = pwd
	return pwd, nil
}

// Copy writes the current password to the clipboard, then refuses further
// copies until the lockout expires.
func (s *Session) Copy() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.copyLocked {
		s.notify.Alert(MsgCopyLocked, ErrCopyLocked)
		return ErrCopyLocked
	}
	if err := s.clipboard.WriteAll(s.password); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	s.notify.Success(MsgCopySuccess, "length", len(s.password))
	s.copyLocked = true
	s.afterFunc(copyLockout, func() {
		s.mu.Lock()
		s.copyLocked = false
		s.mu.Unlock()
	})
	return nil
}
