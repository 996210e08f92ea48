package pipeline

import (
	"context"
	"errors"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// TestPageTemplate
// ---------------------------------------------------------------------------

func TestNewPageTemplate(t *testing.T) {
	t.Parallel()

	if _, err := NewPageTemplate("<html>{{ Title }}</html>"); !errors.Is(err, ErrInvalidTemplate) {
		t.Errorf("NewPageTemplate(no content) error = %v, want ErrInvalidTemplate", err)
	}
	if _, err := NewPageTemplate("<body>{{ Content }}</body>"); err != nil {
		t.Errorf("NewPageTemplate(no title) unexpected error: %v", err)
	}
}

func TestPageTemplate_AssemblePage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		tmpl string
		data PageData
		want string
	}{
		{
			name: "fills both placeholders",
			tmpl: "<title>{{ Title }}</title><body>{{ Content }}</body>",
			data: PageData{Title: "Home", Content: "<div><p>hi</p></div>"},
			want: "<title>Home</title><body><div><p>hi</p></div></body>",
		},
		{
			name: "title is escaped and content is not",
			tmpl: "<title>{{ Title }}</title>{{ Content }}",
			data: PageData{Title: "Q&A <draft>", Content: "<b>&</b>"},
			want: "<title>Q&amp;A &lt;draft&gt;</title><b>&</b>",
		},
		{
			name: "every occurrence replaced",
			tmpl: "{{ Title }}|{{ Title }}|{{ Content }}",
			data: PageData{Title: "T", Content: "C"},
			want: "T|T|C",
		},
		{
			name: "placeholders inside content are not expanded",
			tmpl: "{{ Title }}:{{ Content }}",
			data: PageData{Title: "T", Content: "{{ Title }}"},
			want: "T:{{ Title }}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p, err := NewPageTemplate(tt.tmpl)
			if err != nil {
				t.Fatalf("NewPageTemplate() unexpected error: %v", err)
			}
			got, err := p.AssemblePage(context.Background(), tt.data)
			if err != nil {
				t.Fatalf("AssemblePage() unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("AssemblePage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPageTemplate_CancelledContext(t *testing.T) {
	t.Parallel()

	p, err := NewPageTemplate("{{ Content }}")
	if err != nil {
		t.Fatalf("NewPageTemplate() unexpected error: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.AssemblePage(ctx, PageData{}); !errors.Is(err, context.Canceled) {
		t.Errorf("AssemblePage() error = %v, want context.Canceled", err)
	}
}

// ---------------------------------------------------------------------------
// TestCSSInjection
// ---------------------------------------------------------------------------

func TestCSSInjection_InjectCSS(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		html string
		css  string
		want string
	}{
		{
			name: "before closing head",
			html: "<html><head><title>T</title></head><body></body></html>",
			css:  "body{}",
			want: "<html><head><title>T</title><style>body{}</style></head><body></body></html>",
		},
		{
			name: "uppercase head",
			html: "<HTML><HEAD></HEAD></HTML>",
			css:  "p{}",
			want: "<HTML><HEAD><style>p{}</style></HEAD></HTML>",
		},
		{
			name: "after body when no head",
			html: `<body class="x"><p>a</p></body>`,
			css:  "p{}",
			want: `<body class="x"><style>p{}</style><p>a</p></body>`,
		},
		{
			name: "prepended to fragment",
			html: "<div>x</div>",
			css:  "p{}",
			want: "<style>p{}</style><div>x</div>",
		},
		{
			name: "empty css leaves html unchanged",
			html: "<div>x</div>",
			css:  "",
			want: "<div>x</div>",
		},
		{
			name: "closing style sequence is escaped",
			html: "<head></head>",
			css:  "a{}</style><script>x</script>",
			want: `<head><style>a{}<\/style><script>x<\/script></style></head>`,
		},
	}

	injector := &CSSInjection{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := injector.InjectCSS(context.Background(), tt.html, tt.css)
			if got != tt.want {
				t.Errorf("InjectCSS() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCSSInjection_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	got := (&CSSInjection{}).InjectCSS(ctx, "<head></head>", "p{}")
	if strings.Contains(got, "<style>") {
		t.Errorf("InjectCSS() = %q, want no style block after cancel", got)
	}
}
