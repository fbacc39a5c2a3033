package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chirichan/rice"
	"github.com/gocarina/gocsv"
	"github.com/spf13/cobra"

	"github.com/chirichan/pwdgen/cmd/pwdgen/internal/entities"
	"github.com/chirichan/pwdgen/internal/sampler"
)

// Batch reads profiles from the csv file in args[0], or from the clipboard
// when no file is given, and prints one generated password per profile.
func (m *PwdGenCLI) Batch(cmd *cobra.Command, args []string) error {
	var profiles []*entities.Profile
	if len(args) == 0 {
		csvText, err := m.Clipboard.ReadAll()
		if err != nil {
			return fmt.Errorf("read clipboard: %w", err)
		}
		if err := gocsv.UnmarshalString(csvText, &profiles); err != nil {
			return fmt.Errorf("parse profiles: %w", err)
		}
	} else {
		file := args[0]
		if !rice.PathExists(file) || rice.PathIsDir(file) {
			return fmt.Errorf("profile file not found, file: %s", file)
		}
		m.Logger.Info("batch", "file", file)
		f, err := os.Open(file)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := gocsv.UnmarshalFile(f, &profiles); err != nil {
			return fmt.Errorf("parse profiles: %w", err)
		}
	}
	return m.generateBatch(m.samplerFor(cmd), profiles, cmd.OutOrStdout())
}

func (m *PwdGenCLI) generateBatch(s *sampler.Sampler, profiles []*entities.Profile, out io.Writer) error {
	results := make([]*entities.Generated, 0, len(profiles))
	for i, p := range profiles {
		cfg := p.Config()
		if cfg.Length > MaxLength {
			return fmt.Errorf("profile %q: length %d exceeds %d", p.Name, cfg.Length, MaxLength)
		}
		pwd, err := s.Generate(cfg)
		if errors.Is(err, sampler.ErrNoCharacterClassSelected) {
			m.Notify.Alert(MsgNoClass, fmt.Errorf("profile %d %q: %w", i+1, p.Name, err))
		} else if err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
		results = append(results, &entities.Generated{Name: strings.TrimSpace(p.Name), Password: pwd})
	}
	return gocsv.Marshal(results, out)
}
