package web

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/rotator"
)

const (
	homeTestimonialsPerPage    = 2
	clientsTestimonialsPerPage = 3
)

func pageTitle(site *content.Site, name string) string {
	return name + " | " + site.Company.Name
}

// HomePage is the landing page with the rotating hero.
func HomePage(site *content.Site, intervalMS int64, testimonialPage int) g.Node {
	p := rotator.NewPager(len(site.Testimonials.Home), homeTestimonialsPerPage, testimonialPage)
	return Layout(PageConfig{
		Title:       site.Company.Name + " | Professional Business Consulting",
		Description: site.Company.Tagline,
		Path:        "/",
		Scripts:     []string{heroJSPath},
	}, site,
		Hero(site.Hero, 0, intervalMS),
		FeaturedServices(site.FeaturedServices),
		AboutPreview(site.About),
		TestimonialsSlider("What Our Clients Say",
			"Don't just take our word for it - hear from some of our satisfied clients about their experience working with "+site.Company.Name+".",
			"/", site.Testimonials.Home, p),
		CTASection(),
	)
}

// AboutPage tells the firm's story and introduces the team.
func AboutPage(site *content.Site) g.Node {
	a := site.About
	return Layout(PageConfig{
		Title:       pageTitle(site, "About Us"),
		Description: a.Intro,
		Path:        "/about",
	}, site,
		pageHero("About "+site.Company.LegalName, a.Intro, "/images/construction-meeting.jpg"),
		Section(Class("section stats"),
			Div(Class("container grid grid-4"),
				g.Map(a.Stats, func(s content.Stat) g.Node {
					return Div(Class("stat reveal"),
						Div(Class("stat-value"), g.Text(s.Value)),
						Div(Class("stat-label"), g.Text(s.Label)),
					)
				}),
			),
		),
		Section(Class("section bg-muted"),
			Div(Class("container split"),
				Div(
					H2(Class("reveal"), g.Text("Our Story")),
					Div(Class("prose reveal"), g.Raw(site.StoryHTML)),
				),
				Div(Class("reveal media-frame"),
					Img(Src("/images/about-image.jpg"), Alt(site.Company.Name+" team"), g.Attr("loading", "lazy")),
				),
			),
		),
		Section(Class("section"),
			Div(Class("container"),
				SectionHeading("Vision & Mission",
					"Our vision and mission guide every aspect of our work, ensuring that we consistently deliver value to our clients.", true),
				Div(Class("grid grid-2"),
					Div(Class("card panel reveal"), H3(g.Text("Our Vision")), P(g.Text(a.Vision))),
					Div(Class("card panel reveal"), H3(g.Text("Our Mission")), P(g.Text(a.Mission))),
				),
			),
		),
		Section(Class("section bg-muted"),
			Div(Class("container"),
				SectionHeading("Our Core Values", "The principles that guide our work and interactions with clients.", true),
				Div(Class("grid grid-3"),
					g.Map(a.Values, func(v content.Value) g.Node {
						return Div(Class("card value-card reveal"),
							g.If(v.Image != "", Div(Class("card-media"), Img(Src(v.Image), Alt(v.Title), g.Attr("loading", "lazy")))),
							Div(Class("card-body"),
								H3(g.Text(v.Title)),
								P(g.Text(v.Description)),
								checkList(v.Points),
							),
						)
					}),
				),
			),
		),
		Section(Class("section"),
			Div(Class("container"),
				SectionHeading("Meet Our Team",
					"Our experienced consultants bring diverse expertise to help solve your business challenges.", true),
				Div(Class("grid grid-4 stagger"),
					g.Map(site.Team, TeamMember),
				),
			),
		),
		CTASection(),
	)
}

// ServicesPage lists every service with its features.
func ServicesPage(site *content.Site) g.Node {
	return Layout(PageConfig{
		Title:       pageTitle(site, "Our Services"),
		Description: "Comprehensive consulting solutions tailored to your business needs.",
		Path:        "/services",
	}, site,
		Section(ID("services-hero"), Class("page-hero solid"),
			Div(Class("container centered"),
				H1(g.Text("Expert Consulting Services")),
				P(g.Text("Comprehensive consulting solutions tailored to your business needs. We help organizations solve complex challenges and achieve sustainable growth.")),
				LinkButton("/contact", VariantSecondary, SizeLarge, g.Text("Get Started Today")),
			),
		),
		Section(Class("section"),
			Div(Class("container grid grid-4"),
				g.Map(site.Services, func(svc content.Service) g.Node {
					return A(Href("#"+svc.ID), Class("service-jump"), H3(g.Text(svc.Title)), Span(g.Text("Learn more")))
				}),
			),
		),
		Section(Class("section bg-muted"),
			Div(Class("container"),
				g.Map(site.Services, serviceDetail),
			),
		),
		CTASection(),
	)
}

func serviceDetail(svc content.Service) g.Node {
	cls := "service-detail split"
	if svc.Reverse {
		cls += " reverse"
	}
	return Div(ID(svc.ID), Class(cls),
		Div(Class("reveal-left"),
			H3(g.Text(svc.Title)),
			P(g.Text(svc.Description)),
			checkList(svc.Features),
			LinkButton("/contact", VariantPrimary, SizeMedium, g.Text("Consult with Us")),
		),
		Div(Class("reveal-right media-frame"),
			Img(Src(svc.Image), Alt(svc.Title), g.Attr("loading", "lazy")),
		),
	)
}

// ClientsPage shows client logos, testimonials and case studies.
func ClientsPage(site *content.Site, testimonialPage int) g.Node {
	p := rotator.NewPager(len(site.Testimonials.Clients), clientsTestimonialsPerPage, testimonialPage)
	return Layout(PageConfig{
		Title:       pageTitle(site, "Our Clients"),
		Description: "Trusted by companies across industries.",
		Path:        "/clients",
	}, site,
		pageHero("Our Clients", "We partner with organizations of every size to deliver measurable results.", "/images/brand-promise.jpg"),
		Section(Class("section"),
			Div(Class("container"),
				SectionHeading("Trusted by Companies Across Industries", "", true),
				Div(Class("grid grid-4"),
					g.Map(site.Clients, ClientLogo),
				),
			),
		),
		TestimonialsSlider("Client Testimonials",
			"Hear from our clients about their experience working with "+site.Company.Name+".",
			"/clients", site.Testimonials.Clients, p),
		Section(Class("section"),
			Div(Class("container"),
				SectionHeading("Success Stories", "Explore how we've helped businesses overcome challenges and achieve their goals.", true),
				Div(Class("grid grid-2"),
					g.Map(site.CaseStudies, func(cs content.CaseStudy) g.Node {
						return Div(Class("card case-study reveal"),
							Div(Class("card-body"),
								P(Class("eyebrow"), g.Text(cs.Client+" · "+cs.Industry)),
								H3(g.Text(cs.Title)),
								P(g.Text(cs.Summary)),
								H4(g.Text("Results:")),
								checkList(cs.Results),
							),
						)
					}),
				),
			),
		),
		CTASection(),
	)
}

// ContactPage shows contact channels and the contact form.
func ContactPage(site *content.Site, form ContactFormState) g.Node {
	c := site.Contact
	return Layout(PageConfig{
		Title:       pageTitle(site, "Contact Us"),
		Description: c.ResponseTime,
		Path:        "/contact",
	}, site,
		pageHero("Contact Us", "We'd love to hear about your project.", "/images/hero-bg.jpg"),
		Section(Class("section"),
			Div(Class("container"),
				Div(Class("grid grid-4 stagger"),
					infoCard("Phone", c.Phones),
					infoCard("Email", c.Emails),
					infoCard("Address", c.Address),
					infoCard("Hours", c.Hours),
				),
				Div(Class("split contact-split"),
					Div(
						SectionHeading("Contact Information", c.ResponseTime, false),
						Div(Class("office"),
							H3(g.Text(site.Company.LegalName)),
							g.Map(c.Address, func(s string) g.Node { return P(g.Text(s)) }),
						),
					),
					ContactForm(form),
				),
			),
		),
		Section(Class("map"),
			IFrame(Src("https://www.google.com/maps?q=New+Delhi,+India&output=embed"),
				g.Attr("title", "Office Location"), g.Attr("loading", "lazy"), g.Attr("referrerpolicy", "no-referrer-when-downgrade")),
		),
	)
}

func infoCard(title string, lines []string) g.Node {
	return Div(Class("card info-card reveal"),
		H3(g.Text(title)),
		g.Map(lines, func(s string) g.Node { return P(g.Text(s)) }),
	)
}

// NotFoundPage is shown for unknown routes.
func NotFoundPage(site *content.Site) g.Node {
	return Layout(PageConfig{Title: pageTitle(site, "Page Not Found")}, site,
		Section(Class("section not-found"),
			Div(Class("container centered"),
				H1(g.Text("404")),
				P(g.Text("The page you are looking for does not exist.")),
				LinkButton("/", VariantPrimary, SizeMedium, g.Text("Back to Home")),
			),
		),
	)
}

func pageHero(title, subtitle, image string) g.Node {
	return Section(Class("page-hero"),
		Img(Class("page-hero-bg"), Src(image), Alt("")),
		Div(Class("page-hero-overlay")),
		Div(Class("container"),
			H1(Class("reveal"), g.Text(title)),
			P(Class("reveal"), g.Text(subtitle)),
		),
	)
}
