// Package assets supplies the style sheets and page templates that wrap
// rendered Markdown into a full HTML page.
//
// Three loaders implement Loader:
//
//	EmbeddedLoader    styles and templates compiled into the binary
//	FilesystemLoader  a site's own asset directory
//	AssetResolver     the directory first, the built-ins for anything it lacks
//
// An asset directory mirrors the embedded layout:
//
//	{assetDir}/
//	├── styles/{name}.css
//	└── templates/{name}.html    must contain {{ Content }}
//
// Names are bare identifiers (see CheckName). FilesystemLoader also refuses
// files whose resolved path leaves the directory.
package assets
