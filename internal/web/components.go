package web

import (
	"strings"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ppmconsultants/ppmsite/internal/content"
)

// ButtonVariant selects a button style.
type ButtonVariant string

const (
	VariantPrimary   ButtonVariant = "primary"
	VariantSecondary ButtonVariant = "secondary"
	VariantOutline   ButtonVariant = "outline"
)

// ButtonSize selects a button size.
type ButtonSize string

const (
	SizeSmall  ButtonSize = "sm"
	SizeMedium ButtonSize = "md"
	SizeLarge  ButtonSize = "lg"
)

func buttonClass(v ButtonVariant, s ButtonSize) string {
	if v == "" {
		v = VariantPrimary
	}
	if s == "" {
		s = SizeMedium
	}
	return "btn btn-" + string(v) + " btn-" + string(s)
}

// FormButton renders a button element.
func FormButton(v ButtonVariant, s ButtonSize, typ string, children ...g.Node) g.Node {
	if typ == "" {
		typ = "button"
	}
	return Button(Type(typ), Class(buttonClass(v, s)), g.Group(children))
}

// LinkButton renders a link styled as a button.
func LinkButton(href string, v ButtonVariant, s ButtonSize, children ...g.Node) g.Node {
	return A(Href(href), Class(buttonClass(v, s)), g.Group(children))
}

// Logo links to the home page.
func Logo(company content.Company) g.Node {
	return A(Href("/"), Class("logo"),
		Img(Src("/images/logo.png"), Alt(company.LegalName+" - "+company.Tagline), Class("logo-img")),
	)
}

// SectionHeading renders a section title with an optional subtitle.
func SectionHeading(title, subtitle string, centered bool) g.Node {
	cls := "section-heading"
	if centered {
		cls += " centered"
	}
	return Div(Class(cls),
		H2(Class("reveal"), g.Text(title)),
		g.If(subtitle != "", P(Class("reveal"), g.Text(subtitle))),
	)
}

// ServiceCard summarises a service and links to its details.
func ServiceCard(svc content.Service) g.Node {
	link := svc.Link
	if link == "" && svc.ID != "" {
		link = "/services#" + svc.ID
	}
	return Div(Class("card service-card"),
		g.If(svc.Image != "", Div(Class("card-media"),
			Img(Src(svc.Image), Alt(svc.Title), g.Attr("loading", "lazy")),
		)),
		Div(Class("card-body"),
			H3(g.Text(svc.Title)),
			P(g.Text(svc.Description)),
			g.If(link != "", A(Href(link), Class("card-link"), g.Text("Learn More"), Span(Class("arrow"), g.Text("→")))),
		),
	)
}

// TestimonialCard shows a client quote. Without a photo the author's
// initial is shown.
func TestimonialCard(t content.Testimonial) g.Node {
	initial := ""
	if r := []rune(strings.TrimSpace(t.Author)); len(r) > 0 {
		initial = string(r[0])
	}
	return Div(Class("card testimonial-card"),
		P(Class("quote"), g.Text("“"+t.Quote+"”")),
		Div(Class("author"),
			Div(Class("avatar"), Span(g.Text(initial))),
			Div(
				H4(g.Text(t.Author)),
				P(Class("author-role"), g.Text(t.Role+", "+t.Company)),
			),
		),
	)
}

// TeamMember renders a profile card.
func TeamMember(m content.TeamMember) g.Node {
	return Div(Class("card team-card"),
		Div(Class("card-media square"), Img(Src(m.Image), Alt(m.Name), g.Attr("loading", "lazy"))),
		Div(Class("card-body"),
			H3(g.Text(m.Name)),
			P(Class("team-role"), g.Text(m.Role)),
			P(g.Text(m.Bio)),
		),
	)
}

// ClientLogo renders a client name tile.
func ClientLogo(c content.Client) g.Node {
	return Div(Class("client-logo reveal"),
		H3(g.Text(c.Name)),
		P(g.Text(c.Industry)),
	)
}

func checkList(items []string) g.Node {
	return Ul(Class("check-list"),
		g.Map(items, func(s string) g.Node {
			return Li(Span(Class("check"), g.Text("✓")), Span(g.Text(s)))
		}),
	)
}
