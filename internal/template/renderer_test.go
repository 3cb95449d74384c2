package template

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"testing/fstest"
)

func TestRendererRender(t *testing.T) {
	t.Run("successful_render", func(t *testing.T) {
		fs := fstest.MapFS{
			"README.md.tmpl": &fstest.MapFile{
				Data: []byte("# {{.ProjectName}}\n\nVersion: {{.Version}}\n"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"ProjectName": "Shop QA",
			"Version":     "1.0.0",
		}

		result, err := r.Render("README.md.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "# Shop QA\n\nVersion: 1.0.0\n"
		if string(result) != expected {
			t.Errorf("Render result = %q, want %q", string(result), expected)
		}
	})

	t.Run("missing_key_strict_mode", func(t *testing.T) {
		fs := fstest.MapFS{
			"test.tmpl": &fstest.MapFile{
				Data: []byte("Hello {{.Name}}, your role is {{.Role}}"),
			},
		}
		r := NewRenderer(fs)

		// Only provide Name, not Role
		data := map[string]string{
			"Name": "qa",
		}

		_, err := r.Render("test.tmpl", data)
		if err == nil {
			t.Fatal("expected error for missing key")
		}
		if !errors.Is(err, ErrMissingTemplateKey) {
			t.Errorf("expected ErrMissingTemplateKey, got: %v", err)
		}
	})

	t.Run("nonexistent_template", func(t *testing.T) {
		fs := fstest.MapFS{}
		r := NewRenderer(fs)

		_, err := r.Render("nonexistent.tmpl", nil)
		if err == nil {
			t.Fatal("expected error for nonexistent template")
		}
		if !errors.Is(err, ErrTemplateNotFound) {
			t.Errorf("expected ErrTemplateNotFound, got: %v", err)
		}
	})

	t.Run("no_unexpanded_tokens_in_result", func(t *testing.T) {
		fs := fstest.MapFS{
			"config.tmpl": &fstest.MapFile{
				Data: []byte("name: {{.Name}}\nversion: {{.Version}}"),
			},
		}
		r := NewRenderer(fs)

		data := map[string]string{
			"Name":    "test-project",
			"Version": "2.0.0",
		}

		result, err := r.Render("config.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		content := string(result)
		if strings.Contains(content, "{{.") {
			t.Errorf("result contains unexpanded Go template token: %s", content)
		}
	})

	t.Run("complex_template_with_conditionals", func(t *testing.T) {
		fs := fstest.MapFS{
			"complex.tmpl": &fstest.MapFile{
				Data: []byte(`{{if .Enabled}}Feature ON{{else}}Feature OFF{{end}}`),
			},
		}
		r := NewRenderer(fs)

		data := map[string]bool{"Enabled": true}
		result, err := r.Render("complex.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if string(result) != "Feature ON" {
			t.Errorf("result = %q, want %q", string(result), "Feature ON")
		}
	})

	t.Run("empty_template", func(t *testing.T) {
		fs := fstest.MapFS{
			"empty.tmpl": &fstest.MapFile{
				Data: []byte(""),
			},
		}
		r := NewRenderer(fs)

		result, err := r.Render("empty.tmpl", nil)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}
		if len(result) != 0 {
			t.Errorf("expected empty result, got %d bytes", len(result))
		}
	})

	t.Run("template_with_range", func(t *testing.T) {
		fs := fstest.MapFS{
			"list.tmpl": &fstest.MapFile{
				Data: []byte("{{range .Items}}- {{.}}\n{{end}}"),
			},
		}
		r := NewRenderer(fs)

		data := map[string][]string{
			"Items": {"alpha", "beta", "gamma"},
		}

		result, err := r.Render("list.tmpl", data)
		if err != nil {
			t.Fatalf("Render error: %v", err)
		}

		expected := "- alpha\n- beta\n- gamma\n"
		if string(result) != expected {
			t.Errorf("result = %q, want %q", string(result), expected)
		}
	})
}

func TestRendererLeavesCIExpressions(t *testing.T) {
	fs := fstest.MapFS{
		"tests.yml.tmpl": &fstest.MapFile{
			Data: []byte(`env:
  BROWSER: {{"${{ matrix.browser }}"}}
  HOME_DIR: $HOME
  URL: ${BASE_URL}
  NAME: {{.Name}}
`),
		},
	}
	r := NewRenderer(fs)

	result, err := r.Render("tests.yml.tmpl", map[string]string{"Name": "shop"})
	if err != nil {
		t.Fatalf("expected CI and shell expressions to pass, got error: %v", err)
	}

	content := string(result)
	for _, want := range []string{"${{ matrix.browser }}", "$HOME", "${BASE_URL}", "NAME: shop"} {
		if !strings.Contains(content, want) {
			t.Errorf("output missing %q:\n%s", want, content)
		}
	}
}

func TestRendererRejectsLeftoverToken(t *testing.T) {
	fs := fstest.MapFS{
		"page.py.tmpl": &fstest.MapFile{
			Data: []byte(`url = "{{.URL}}"`),
		},
	}
	r := NewRenderer(fs)

	_, err := r.Render("page.py.tmpl", map[string]string{"URL": "{{.Injected}}"})
	if !errors.Is(err, ErrUnexpandedToken) {
		t.Errorf("expected ErrUnexpandedToken, got: %v", err)
	}
}

func TestPyEscapeTemplateFunc(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain_url_unchanged",
			input: "https://shop.example.com/login?next=/cart&x=1",
			want:  "https://shop.example.com/login?next=/cart&x=1",
		},
		{
			name:  "backslashes_escaped",
			input: `C:\tmp`,
			want:  `C:\\tmp`,
		},
		{
			name:  "double_quotes_escaped",
			input: `the "login" page`,
			want:  `the \"login\" page`,
		},
		{
			name:  "tab_and_newline_escaped",
			input: "line1\tvalue\nline2",
			want:  `line1\tvalue\nline2`,
		},
		{
			name:  "html_kept",
			input: "<main> & <nav>",
			want:  "<main> & <nav>",
		},
		{
			name:  "unicode_kept",
			input: "Caf\u00e9",
			want:  "Caf\u00e9",
		},
		{
			name:  "empty_string",
			input: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fn := templateFuncMap["pyEscape"].(func(string) string)
			got := fn(tt.input)
			if got != tt.want {
				t.Errorf("pyEscape(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPyEscapeProducesValidJSONString(t *testing.T) {
	fs := fstest.MapFS{
		"data.json.tmpl": &fstest.MapFile{
			Data: []byte(`{"base_url":"{{pyEscape .BaseURL}}"}`),
		},
	}
	r := NewRenderer(fs)

	want := `https://example.com/"quoted"\path`
	result, err := r.Render("data.json.tmpl", map[string]string{"BaseURL": want})
	if err != nil {
		t.Fatalf("Render error: %v", err)
	}

	var parsed map[string]string
	if err := json.Unmarshal(result, &parsed); err != nil {
		t.Fatalf("rendered output is not valid JSON: %v\noutput: %s", err, string(result))
	}
	if parsed["base_url"] != want {
		t.Errorf("base_url = %q, want %q", parsed["base_url"], want)
	}
}

func TestUnexpandedTokenDetection(t *testing.T) {
	tests := []struct {
		name    string
		content string
		match   bool
	}{
		{"double_brace", "{{VAR}}", true},
		{"go_template_dot", "{{.Name}}", true},
		{"dotted_path", "{{.Config.Name}}", true},
		{"github_expression", "${{ matrix.browser }}", false},
		{"dollar_brace", "${SHELL}", false},
		{"dollar_var", "$HOME", false},
		{"python_fstring", `f"{self.base_url}/{path}"`, false},
		{"normal_text", "hello world", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := unexpandedTokenPattern.MatchString(tt.content)
			if got != tt.match {
				t.Errorf("pattern match for %q = %v, want %v", tt.content, got, tt.match)
			}
		})
	}
}
