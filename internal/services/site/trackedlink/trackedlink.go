// Package trackedlink renders navigation links that report clicks to the
// analytics tracker.
package trackedlink

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/optionsbroker/vergleich/internal/services/site/analytics"
)

const (
	// TypeCTA, TypeBroker and TypeOutbound are the accepted tracking types.
	TypeCTA      = string(analytics.CategoryCTA)
	TypeBroker   = string(analytics.CategoryBroker)
	TypeOutbound = string(analytics.CategoryOutbound)

	externalTarget = "_blank"
	externalRel    = "noopener noreferrer"
)

// Props describes one tracked link.
type Props struct {
	Href          string
	Text          string
	Children      templ.Component
	TrackingType  string
	TrackingLabel string
	BrokerSlug    string
	Class         string
}

// Attribute is one rendered HTML attribute.
type Attribute struct {
	Name  string
	Value string
}

// Element is the resolved anchor for a set of props.
type Element struct {
	External   bool
	Href       string
	Target     string
	Rel        string
	Attributes []Attribute
}

// IsExternal reports whether props leave the site: an outbound tracking type
// or an absolute http(s) href.
func IsExternal(props Props) bool {
	props = normalize(props)
	return strings.EqualFold(props.TrackingType, TypeOutbound) || strings.HasPrefix(props.Href, "http")
}

// normalize trims the fields that decide how a link resolves.
func normalize(props Props) Props {
	props.Href = strings.TrimSpace(props.Href)
	props.TrackingType = strings.TrimSpace(props.TrackingType)
	return props
}

// Resolve decides between an external anchor opened in a new browsing
// context and an in-app navigation link.
func Resolve(props Props) Element {
	props = normalize(props)
	href := props.Href
	if href == "" {
		href = "#"
	}
	el := Element{External: IsExternal(props), Href: href}

	attrs := []Attribute{{Name: "href", Value: href}}
	if class := strings.TrimSpace(props.Class); class != "" {
		attrs = append(attrs, Attribute{Name: "class", Value: class})
	}
	if el.External {
		el.Target = externalTarget
		el.Rel = externalRel
		attrs = append(attrs,
			Attribute{Name: "target", Value: externalTarget},
			Attribute{Name: "rel", Value: externalRel},
		)
	} else {
		attrs = append(attrs, Attribute{Name: "hx-boost", Value: "true"})
	}
	if trackingType := props.TrackingType; trackingType != "" {
		attrs = append(attrs, Attribute{Name: "data-track-type", Value: trackingType})
		if label := strings.TrimSpace(props.TrackingLabel); label != "" {
			attrs = append(attrs, Attribute{Name: "data-track-label", Value: label})
		}
		if slug := strings.TrimSpace(props.BrokerSlug); slug != "" {
			attrs = append(attrs, Attribute{Name: "data-track-broker", Value: slug})
		}
	}
	el.Attributes = attrs
	return el
}

// Component renders props as an <a> element.
func Component(props Props) templ.Component {
	el := Resolve(props)
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString("<a")
		for _, attr := range el.Attributes {
			value := attr.Value
			if attr.Name == "href" {
				value = string(templ.URL(value))
			}
			b.WriteString(" ")
			b.WriteString(attr.Name)
			b.WriteString(`="`)
			b.WriteString(templ.EscapeString(value))
			b.WriteString(`"`)
		}
		b.WriteString(">")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if props.Children != nil {
			if err := props.Children.Render(ctx, w); err != nil {
				return err
			}
		} else if _, err := io.WriteString(w, templ.EscapeString(props.Text)); err != nil {
			return err
		}
		_, err := io.WriteString(w, "</a>")
		return err
	})
}

// Click builds the analytics click for props as seen from page.
func Click(props Props, page string, locale string) (analytics.Click, error) {
	props = normalize(props)
	category, err := analytics.ParseCategory(props.TrackingType)
	if err != nil {
		return analytics.Click{}, err
	}
	return analytics.Click{
		Category:   category,
		Label:      strings.TrimSpace(props.TrackingLabel),
		BrokerSlug: strings.TrimSpace(props.BrokerSlug),
		Href:       props.Href,
		Page:       page,
		Locale:     locale,
	}, nil
}

// Track reports a click on props to tracker. Exactly one tracker method runs,
// chosen by the tracking type; untracked props report nothing.
func Track(ctx context.Context, tracker analytics.Tracker, props Props, page string, locale string) error {
	if strings.TrimSpace(props.TrackingType) == "" {
		return nil
	}
	click, err := Click(props, page, locale)
	if err != nil {
		return err
	}
	return analytics.Dispatch(ctx, tracker, click)
}
