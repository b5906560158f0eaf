package web

import (
	"strconv"
	"time"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ppmconsultants/ppmsite/internal/content"
)

// PageConfig describes the document around a page body.
type PageConfig struct {
	Title       string
	Description string
	// Path is the route being rendered; it marks the active nav link.
	Path    string
	Scripts []string
}

type navLink struct {
	href, label string
}

var navLinks = []navLink{
	{"/", "Home"},
	{"/about", "About Us"},
	{"/services", "Services"},
	{"/clients", "Clients"},
	{"/contact", "Contact"},
}

// Layout wraps body in the shared document shell.
func Layout(cfg PageConfig, site *content.Site, body ...g.Node) g.Node {
	return Doctype(
		HTML(Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1")),
				TitleEl(g.Text(cfg.Title)),
				g.If(cfg.Description != "", Meta(Name("description"), Content(cfg.Description))),
				Link(Rel("icon"), Href("/favicon.ico")),
				Link(Rel("stylesheet"), Href(cssPath)),
			),
			Body(
				Navbar(site, cfg.Path),
				Main(ID("main"), g.Group(body)),
				PageFooter(site),
				Script(Src(siteJSPath), Defer()),
				g.Map(cfg.Scripts, func(src string) g.Node {
					return Script(Src(src), Defer())
				}),
			),
		),
	)
}

// Navbar is the fixed site header with desktop and mobile menus.
func Navbar(site *content.Site, active string) g.Node {
	return Header(ID("navbar"), Class("navbar"),
		Div(Class("container navbar-inner"),
			Logo(site.Company),
			Nav(Class("nav-desktop"), Aria("label", "Main"),
				g.Map(navLinks, func(l navLink) g.Node {
					if l.href == "/services" {
						return servicesMenu(site, active)
					}
					return navAnchor(l, active)
				}),
				LinkButton("/contact", VariantPrimary, SizeMedium, g.Text("Get Started")),
			),
			Button(Type("button"), Class("nav-toggle"), Aria("label", "Toggle menu"), Aria("expanded", "false"),
				Aria("controls", "nav-mobile"),
				Span(Class("bar")), Span(Class("bar")), Span(Class("bar")),
			),
		),
		Nav(ID("nav-mobile"), Class("nav-mobile"), Aria("label", "Mobile"),
			g.Map(navLinks, func(l navLink) g.Node { return navAnchor(l, active) }),
			LinkButton("/contact", VariantPrimary, SizeMedium, g.Text("Get Started")),
		),
	)
}

func navAnchor(l navLink, active string) g.Node {
	cls := "nav-link"
	if l.href == active {
		cls += " active"
	}
	return A(Href(l.href), Class(cls), g.If(l.href == active, Aria("current", "page")), g.Text(l.label))
}

func servicesMenu(site *content.Site, active string) g.Node {
	return Div(Class("nav-dropdown"),
		navAnchor(navLink{"/services", "Services"}, active),
		Div(Class("dropdown-menu"),
			g.Map(site.Services, func(svc content.Service) g.Node {
				return A(Href("/services#"+svc.ID), g.Text(svc.Title))
			}),
		),
	)
}

// PageFooter lists quick links, services and contact details.
func PageFooter(site *content.Site) g.Node {
	c := site.Contact
	return Footer(Class("footer"),
		Div(Class("container footer-grid"),
			Div(
				Logo(site.Company),
				P(Class("footer-blurb"), g.Text(site.Company.Tagline+".")),
			),
			Div(
				H3(g.Text("Quick Links")),
				Ul(g.Map(navLinks, func(l navLink) g.Node {
					return Li(A(Href(l.href), g.Text(l.label)))
				})),
			),
			Div(
				H3(g.Text("Our Services")),
				Ul(g.Map(site.Services, func(svc content.Service) g.Node {
					return Li(A(Href("/services#"+svc.ID), g.Text(svc.Title)))
				})),
			),
			Div(
				H3(g.Text("Contact Info")),
				Ul(
					g.Map(c.Address, func(s string) g.Node { return Li(g.Text(s)) }),
					g.Map(c.Phones, func(s string) g.Node { return Li(A(Href("tel:"+telHref(s)), g.Text(s))) }),
					g.Map(c.Emails, func(s string) g.Node { return Li(A(Href("mailto:"+s), g.Text(s))) }),
				),
			),
		),
		Div(Class("container footer-bottom"),
			P(g.Text("© "+strconv.Itoa(time.Now().Year())+" "+site.Company.LegalName+". All rights reserved.")),
		),
	)
}

func telHref(phone string) string {
	out := make([]rune, 0, len(phone))
	for _, r := range phone {
		if r == '+' || (r >= '0' && r <= '9') {
			out = append(out, r)
		}
	}
	return string(out)
}
