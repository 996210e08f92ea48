package assets

import (
	"errors"
	"strings"
	"testing"
)

func TestLoadStyle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		styleName string
		wantErr   error
	}{
		{name: "default style", styleName: DefaultStyleName},
		{name: "plain style", styleName: "plain"},
		{name: "nonexistent style", styleName: "nonexistent", wantErr: ErrStyleNotFound},
		{name: "empty name", styleName: "", wantErr: ErrInvalidAssetName},
		{name: "traversal", styleName: "../secret", wantErr: ErrInvalidAssetName},
		{name: "extension in name", styleName: "default.css", wantErr: ErrInvalidAssetName},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := LoadStyle(tt.styleName)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("LoadStyle(%q) error = %v, want %v", tt.styleName, err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadStyle(%q) unexpected error: %v", tt.styleName, err)
			}
			if !strings.Contains(got, "body") {
				t.Errorf("LoadStyle(%q) returned content without a body rule", tt.styleName)
			}
		})
	}
}

func TestLoadTemplate(t *testing.T) {
	t.Parallel()

	t.Run("default page template has both placeholders", func(t *testing.T) {
		t.Parallel()

		got, err := LoadTemplate(DefaultTemplateName)
		if err != nil {
			t.Fatalf("LoadTemplate() unexpected error: %v", err)
		}
		for _, want := range []string{"{{ Title }}", "{{ Content }}", "<!DOCTYPE html>", "</head>"} {
			if !strings.Contains(got, want) {
				t.Errorf("default template missing %q", want)
			}
		}
	})

	t.Run("nonexistent template", func(t *testing.T) {
		t.Parallel()

		_, err := LoadTemplate("missing")
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("LoadTemplate() error = %v, want ErrTemplateNotFound", err)
		}
	})

	t.Run("invalid name", func(t *testing.T) {
		t.Parallel()

		_, err := NewEmbeddedLoader().LoadTemplate("../page")
		if !errors.Is(err, ErrInvalidAssetName) {
			t.Errorf("LoadTemplate() error = %v, want ErrInvalidAssetName", err)
		}
	})
}

func TestStyleNames(t *testing.T) {
	t.Parallel()

	got := StyleNames()
	want := []string{"default", "plain"}
	if len(got) != len(want) {
		t.Fatalf("StyleNames() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("StyleNames()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
