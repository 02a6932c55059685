package assets

// Built-in asset names.
const (
	// DeckTemplateName is the template rendering the presentation document.
	DeckTemplateName = "deck"

	// SimpleStyleName and ComplexStyleName match the presentation modes.
	SimpleStyleName  = "simple"
	ComplexStyleName = "complex"
)

// AssetLoader loads stylesheets and HTML templates by name.
type AssetLoader interface {
	// LoadStyle loads styles/{name}.css.
	// Returns ErrStyleNotFound if the style doesn't exist.
	LoadStyle(name string) (string, error)

	// LoadTemplate loads templates/{name}.html.
	// Returns ErrTemplateNotFound if the template doesn't exist.
	LoadTemplate(name string) (string, error)
}
