// Package assets provides the deck template and stylesheets used to build a
// presentation.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - go:embed copies of the built-in assets
//	    ├── FilesystemLoader  - assets from a directory on disk
//	    └── AssetResolver     - custom directory first, embedded as fallback
//
// # Directory Structure
//
//	{basePath}/
//	├── styles/
//	│   ├── simple.css      # stylesheet for simple mode
//	│   └── complex.css     # stylesheet for complex mode
//	└── templates/
//	    └── deck.html       # presentation document template
//
// A custom directory only needs the files it overrides; everything else is
// served from the embedded copies.
//
// # Security
//
// Asset names are validated before use and FilesystemLoader resolves
// symlinks to make sure reads stay inside basePath.
package assets
