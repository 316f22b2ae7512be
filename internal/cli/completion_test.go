package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/agbru/countnums/internal/counting"
)

func TestGenerateCompletion(t *testing.T) {
	t.Parallel()
	algorithms := append(counting.Names(), "all")
	tests := []struct {
		shell    string
		contains []string
	}{
		{"bash", []string{"complete -F _countnums countnums", "--metrics-file", "for-no-if", "compgen -f"}},
		{"zsh", []string{"#compdef countnums", "'2:algorithm:(count fold for-if for-no-if all)'", "--no-color"}},
		{"fish", []string{"complete -c countnums -s q -l quiet", "-l completion -x -a 'bash zsh fish'", "for-if"}},
	}
	for _, tt := range tests {
		t.Run(tt.shell, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			if err := GenerateCompletion(&buf, tt.shell, algorithms); err != nil {
				t.Fatalf("GenerateCompletion(%q) error: %v", tt.shell, err)
			}
			for _, want := range tt.contains {
				if !strings.Contains(buf.String(), want) {
					t.Errorf("%s script should contain %q", tt.shell, want)
				}
			}
		})
	}
}

func TestGenerateCompletion_UnsupportedShell(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := GenerateCompletion(&buf, "tcsh", nil)
	if err == nil || !strings.Contains(err.Error(), "unsupported shell") {
		t.Errorf("expected unsupported shell error, got %v", err)
	}
}
