package assets

const (
	DefaultStyleName    = "default"
	DefaultTemplateName = "page"
)

var builtinLoader = NewEmbeddedLoader()

// LoadStyle returns the built-in style sheet called name.
func LoadStyle(name string) (string, error) {
	return builtinLoader.load(Style, name)
}

// LoadTemplate returns the built-in page template called name.
func LoadTemplate(name string) (string, error) {
	return builtinLoader.load(Template, name)
}
