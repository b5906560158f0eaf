package web

import (
	"net/url"
	"strconv"

	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"

	"github.com/ppmconsultants/ppmsite/internal/contact"
	"github.com/ppmconsultants/ppmsite/internal/content"
	"github.com/ppmconsultants/ppmsite/internal/rotator"
)

// Hero renders every slide layered in place with the active one visible,
// the active slide's caption and one indicator per slide. The hero script
// takes over rotation once the page is live.
func Hero(slides []rotator.Slide, active int, interval int64) g.Node {
	if len(slides) == 0 {
		return nil
	}
	if active < 0 || active >= len(slides) {
		active = 0
	}
	cur := slides[active]
	return Section(ID("hero"), Class("hero"),
		Data("interval", strconv.FormatInt(interval, 10)),
		Data("socket", heroSocketPath),
		Div(Class("hero-slides"),
			g.Map(indexed(slides), func(s indexedSlide) g.Node {
				cls := "hero-slide"
				if s.i == active {
					cls += " is-active"
				}
				return Div(Class(cls), Data("index", strconv.Itoa(s.i)), Aria("hidden", strconv.FormatBool(s.i != active)),
					Img(Src(s.Media), Alt(s.Alt)),
				)
			}),
			Div(Class("hero-overlay")),
		),
		Div(Class("container hero-content"),
			Div(Class("hero-caption"), Aria("live", "polite"),
				H1(Class("hero-title"), g.Text(cur.Title)),
				P(Class("hero-subtitle"), g.Text(cur.Subtitle)),
				Div(Class("hero-cta"),
					LinkButton("/contact", VariantPrimary, SizeLarge, g.Text("Get Started")),
					LinkButton("/services", VariantOutline, SizeLarge, g.Text("Our Services")),
				),
			),
		),
		Div(Class("hero-indicators"),
			g.Map(indexed(slides), func(s indexedSlide) g.Node {
				cls := "hero-indicator"
				if s.i == active {
					cls += " is-active"
				}
				return Button(Type("button"), Class(cls), Data("index", strconv.Itoa(s.i)),
					Aria("label", "View slide "+strconv.Itoa(s.i+1)),
				)
			}),
		),
	)
}

type indexedSlide struct {
	i int
	rotator.Slide
}

func indexed(slides []rotator.Slide) []indexedSlide {
	out := make([]indexedSlide, len(slides))
	for i, s := range slides {
		out[i] = indexedSlide{i, s}
	}
	return out
}

// FeaturedServices is the home page services grid.
func FeaturedServices(services []content.Service) g.Node {
	return Section(Class("section bg-muted"),
		Div(Class("container"),
			SectionHeading("Our Services",
				"We offer a wide range of consulting services to help your business reach its full potential.", true),
			Div(Class("grid grid-4 stagger"),
				g.Map(services, ServiceCard),
			),
		),
	)
}

// AboutPreview is the home page introduction to the firm.
func AboutPreview(about content.About) g.Node {
	return Section(Class("section"),
		Div(Class("container split"),
			Div(Class("reveal-left media-frame"),
				Img(Src("/images/about-image.jpg"), Alt("Business team collaborating"), g.Attr("loading", "lazy")),
			),
			Div(Class("reveal-right"),
				H2(g.Text("Who We Are")),
				g.Map(about.Preview, func(s string) g.Node { return P(Class("lead"), g.Text(s)) }),
				checkList(about.Highlights),
				LinkButton("/about", VariantPrimary, SizeMedium, g.Text("Learn More About Us")),
			),
		),
	)
}

// TestimonialsSlider shows one page of testimonials with links to the
// neighbouring pages. It stops at either end.
func TestimonialsSlider(title, subtitle, basePath string, items []content.Testimonial, p rotator.Pager) g.Node {
	start, end := p.Window()
	page := items[start:end]
	cols := "grid-2"
	if p.PerPage == 3 {
		cols = "grid-3"
	}
	return Section(ID("testimonials"), Class("section bg-accent"),
		Div(Class("container"),
			SectionHeading(title, subtitle, true),
			Div(Class("slider"), Data("page", strconv.Itoa(p.Page)), Data("pages", strconv.Itoa(p.MaxPage()+1)),
				Div(Class("grid "+cols),
					g.Map(page, TestimonialCard),
				),
			),
			g.If(p.MaxPage() > 0, Div(Class("slider-controls"),
				pagerLink(basePath, p.Prev().Page, p.CanPrev(), "Previous testimonials", "‹"),
				Span(Class("slider-status"), g.Text(strconv.Itoa(p.Page+1)+" / "+strconv.Itoa(p.MaxPage()+1))),
				pagerLink(basePath, p.Next().Page, p.CanNext(), "Next testimonials", "›"),
			)),
		),
	)
}

func pagerLink(basePath string, page int, enabled bool, label, glyph string) g.Node {
	if !enabled {
		return Span(Class("slider-btn disabled"), Aria("label", label), Aria("disabled", "true"), g.Text(glyph))
	}
	q := url.Values{"page": {strconv.Itoa(page)}}
	return A(Class("slider-btn"), Href(basePath+"?"+q.Encode()+"#testimonials"), Aria("label", label), g.Text(glyph))
}

// CTASection is the closing call to action.
func CTASection() g.Node {
	return Section(Class("section cta"),
		Div(Class("container centered stagger"),
			H2(Class("reveal"), g.Text("Ready to Transform Your Business?")),
			P(Class("reveal"), g.Text("Get in touch with our expert consultants today to discover how we can help your business reach its full potential.")),
			Div(Class("reveal"),
				LinkButton("/contact", VariantSecondary, SizeLarge, g.Text("Schedule a Consultation")),
			),
		),
	)
}

// ContactFormState is what the contact form shows: entered values, field
// errors and whether the last submission succeeded.
type ContactFormState struct {
	Values  contact.Form
	Errors  contact.FieldErrors
	Success bool
	// Error is shown when the submission failed for a reason other than
	// invalid fields.
	Error    string
	Subjects []string
}

// ContactForm renders the contact form.
func ContactForm(st ContactFormState) g.Node {
	v := st.Values
	return FormEl(ID("contact-form"), Class("contact-form"), Method("post"), Action("/contact"), g.Attr("novalidate"),
		g.If(st.Success, Div(Class("alert alert-success"), Role("status"), Data("autohide", "5000"),
			Span(g.Text("Thank you! Your message has been sent successfully.")),
		)),
		g.If(st.Error != "", Div(Class("alert alert-error"), Role("alert"), Span(g.Text(st.Error)))),
		g.If(st.Error == "" && len(st.Errors) > 0, Div(Class("alert alert-error"), Role("alert"),
			Span(g.Text("Please correct the highlighted fields.")),
		)),
		Div(Class("form-row"),
			field("name", "Full Name", st.Errors,
				Input(Type("text"), ID("name"), Name("name"), Value(v.Name), Required(), AutoComplete("name")),
			),
			field("email", "Email Address", st.Errors,
				Input(Type("email"), ID("email"), Name("email"), Value(v.Email), Required(), AutoComplete("email")),
			),
		),
		Div(Class("form-row"),
			field("phone", "Phone Number", st.Errors,
				Input(Type("tel"), ID("phone"), Name("phone"), Value(v.Phone), AutoComplete("tel")),
			),
			field("subject", "Subject", st.Errors,
				Select(ID("subject"), Name("subject"),
					Option(Value(""), g.Text("Select a subject")),
					g.Map(st.Subjects, func(s string) g.Node {
						return Option(Value(s), g.If(s == v.Subject, Selected()), g.Text(s))
					}),
				),
			),
		),
		field("message", "Message", st.Errors,
			Textarea(ID("message"), Name("message"), Rows("5"), Required(), g.Text(v.Message)),
		),
		FormButton(VariantPrimary, SizeLarge, "submit", g.Text("Send Message")),
	)
}

func field(name, label string, errs contact.FieldErrors, control g.Node) g.Node {
	msg, bad := errs[name]
	cls := "form-field"
	if bad {
		cls += " has-error"
	}
	return Div(Class(cls),
		Label(For(name), g.Text(label)),
		control,
		g.If(bad, P(Class("field-error"), ID(name+"-error"), g.Text(msg))),
	)
}
