package entities

import (
	"testing"

	"github.com/chirichan/pwdgen/internal/sampler"
)

func TestProfileConfig(t *testing.T) {
	tests := []struct {
		name string
		p    Profile
		want sampler.GenerationConfig
	}{
		{
			name: "all",
			p:    Profile{Length: 12, Upper: true, Lower: true, Digit: true, Symbol: true},
			want: sampler.GenerationConfig{Length: 12, Classes: sampler.AllClasses},
		},
		{
			name: "pin",
			p:    Profile{Length: 6, Digit: true},
			want: sampler.GenerationConfig{Length: 6, Classes: sampler.NewClassSet(sampler.Digit)},
		},
		{
			name: "none",
			p:    Profile{Length: 6},
			want: sampler.GenerationConfig{Length: 6},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.p.Config(); got != tt.want {
				t.Errorf("Config() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
