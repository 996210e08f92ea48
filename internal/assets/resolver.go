package assets

// AssetResolver layers a site's asset directory over the built-in assets.
// A name missing from the directory falls through to the embedded copy, so a
// site may override one style and keep the rest.
type AssetResolver struct {
	custom   *FilesystemLoader // nil without an asset directory
	embedded *EmbeddedLoader
}

// NewAssetResolver returns a resolver over customDir, or over the built-in
// assets alone when customDir is empty.
func NewAssetResolver(customDir string) (*AssetResolver, error) {
	r := &AssetResolver{embedded: NewEmbeddedLoader()}
	if customDir == "" {
		return r, nil
	}
	custom, err := NewFilesystemLoader(customDir)
	if err != nil {
		return nil, err
	}
	r.custom = custom
	return r, nil
}

func (r *AssetResolver) LoadStyle(name string) (string, error) {
	return r.load(Style, name)
}

func (r *AssetResolver) LoadTemplate(name string) (string, error) {
	return r.load(Template, name)
}

// HasCustomLoader reports whether an asset directory is layered in.
func (r *AssetResolver) HasCustomLoader() bool {
	return r.custom != nil
}

func (r *AssetResolver) load(k Kind, name string) (string, error) {
	if r.custom != nil {
		content, err := r.custom.load(k, name)
		// Only a miss falls through. Bad names and read failures surface.
		if err == nil || !isMissing(err) {
			return content, err
		}
	}
	return r.embedded.load(k, name)
}

var _ Loader = (*AssetResolver)(nil)
