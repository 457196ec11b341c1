// Package icons defines the icon identifiers used by the site pages.
//
// Pages reference icons by id; the layout inlines one Lucide SVG sprite and
// each icon renders as a <use> reference into it.
package icons
