// Package branding holds product-wide display constants.
package branding

// AppName is the brand suffix used in page titles and social previews.
const AppName = "OptionsBroker Vergleich"

// TitleSeparator joins page titles and the brand name.
const TitleSeparator = " | "

// WithAppName suffixes title with the brand name.
func WithAppName(title string) string {
	return title + TitleSeparator + AppName
}
