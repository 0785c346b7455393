package landing

import (
	"fmt"
	"strconv"

	"github.com/akeren/saascribe/config"
	"github.com/akeren/saascribe/domain/waitlist"
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

// PageData is everything one render of the landing page depends on.
type PageData struct {
	Site          config.SiteConfig
	Form          waitlist.SubmissionState
	FieldError    string
	Notifications []waitlist.Notification
	Alert         string
	Year          int
}

func Page(data PageData) g.Node {
	return Layout(data.Site,
		Main(
			Hero(data),
			PainPointsSection(),
			FeaturesSection(),
			HowItWorksSection(),
			FAQSection(),
		),
		PageFooter(data.Site, data.Year),
		waitlist.Toasts(data.Notifications),
		waitlist.AlertDialog(data.Alert),
	)
}

func Layout(site config.SiteConfig, content ...g.Node) g.Node {
	title := site.Name + " - AI-Generated Tweets for SaaS Marketing"
	description := "Generate tailored tweet ideas, automate your posting schedule, and boost your reach all in one tool."

	return g.Group([]g.Node{
		g.Raw("<!DOCTYPE html>"),
		HTML(
			Lang("en"),
			Head(
				Meta(Charset("utf-8")),
				Meta(Name("viewport"), Content("width=device-width, initial-scale=1.0")),
				TitleEl(g.Text(title)),
				Meta(Name("description"), Content(description)),
				Meta(g.Attr("property", "og:title"), Content(title)),
				Meta(g.Attr("property", "og:description"), Content(description)),
				Meta(g.Attr("property", "og:type"), Content("website")),
				Link(Rel("stylesheet"), Href("/static/styles.css")),
				Script(Src("https://code.iconify.design/1/1.0.7/iconify.min.js")),
			),
			Body(
				g.Group(content),
				Script(Src("/static/waitlist.js"), Defer()),
			),
		),
	})
}

func Icon(name string) g.Node {
	return Span(
		Class("iconify"),
		g.Attr("data-icon", "lucide:"+name),
		g.Attr("aria-hidden", "true"),
	)
}

// animationDelay staggers card fade-ins by 0.2s per position.
func animationDelay(index int) g.Node {
	return g.Attr("style", "animation-delay: "+strconv.FormatFloat(float64(index)*0.2, 'f', 1, 64)+"s")
}

func Hero(data PageData) g.Node {
	return Section(
		ID("hero"),
		Class("hero"),
		Div(
			Class("container hero-inner fade-in"),
			Span(Class("hero-icon"), Icon("bot")),
			H1(
				Class("hero-title"),
				g.Text("Revolutionize "),
				Span(Class("gradient-text"), g.Text("Your SaaS")),
				Br(),
				g.Text("Marketing with AI-"),
				Br(),
				g.Text("Generated Tweets!"),
			),
			P(
				Class("hero-subtitle"),
				g.Text("Generate tailored tweet ideas, automate your posting schedule, and boost your reach"),
				Br(),
				g.Text("all in one tool"),
			),
			waitlist.FormView(data.Form, data.FieldError),
		),
	)
}

func PainPointsSection() g.Node {
	return Section(
		ID("pain-points"),
		Class("section section-muted"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("Struggling with Your SaaS Social Presence?")),
			Div(
				Class("grid grid-3"),
				g.Group(mapIndexed(PainPoints, func(i int, c Card) g.Node {
					return Div(
						Class("card pain-point fade-in"),
						animationDelay(i),
						Span(Class("card-icon"), Icon(c.Icon)),
						P(Class("card-title"), g.Text(c.Title)),
					)
				})),
			),
		),
	)
}

func FeaturesSection() g.Node {
	return Section(
		ID("features"),
		Class("section"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("Core Features")),
			Div(
				Class("grid grid-3"),
				g.Group(mapIndexed(CoreFeatures, func(i int, c Card) g.Node {
					return Div(
						Class("card feature fade-in"),
						animationDelay(i),
						Span(Class("card-icon"), Icon(c.Icon)),
						H3(Class("card-title"), g.Text(c.Title)),
						P(Class("card-description"), g.Text(c.Description)),
					)
				})),
			),
		),
	)
}

// HowItWorksSection draws a connector after every step except the last.
func HowItWorksSection() g.Node {
	return Section(
		ID("how-it-works"),
		Class("section section-muted"),
		Div(
			Class("container"),
			H2(Class("section-title"), g.Text("How It Works")),
			Ol(
				Class("steps"),
				g.Group(mapIndexed(Steps, func(i int, c Card) g.Node {
					return Li(
						Class("step fade-in"),
						animationDelay(i),
						Span(Class("step-icon"), Icon(c.Icon)),
						H3(Class("step-title"), g.Text(c.Title)),
						P(Class("step-description"), g.Text(c.Description)),
						g.If(i < len(Steps)-1, Div(Class("step-connector"), g.Attr("aria-hidden", "true"))),
					)
				})),
			),
		),
	)
}

// FAQSection is an exclusive accordion: details elements sharing a name open one at a time.
func FAQSection() g.Node {
	return Section(
		ID("faq"),
		Class("section"),
		Div(
			Class("container container-narrow"),
			H2(Class("section-title"), g.Text("Frequently Asked Questions")),
			Div(
				Class("accordion"),
				g.Group(mapIndexed(FAQs, func(i int, q Question) g.Node {
					return Details(
						Class("accordion-item"),
						Name("faq"),
						ID(fmt.Sprintf("faq-%d", i+1)),
						Summary(Class("accordion-trigger"), g.Text(q.Question)),
						P(Class("accordion-content"), g.Text(q.Answer)),
					)
				})),
			),
		),
	)
}

func PageFooter(site config.SiteConfig, year int) g.Node {
	contact := "#"
	if site.ContactEmail != "" {
		contact = "mailto:" + site.ContactEmail
	}

	return Footer(
		Class("footer"),
		Div(
			Class("container footer-grid"),
			Div(
				Class("footer-brand"),
				P(Class("footer-logo"), g.Text(site.Name)),
				P(Class("footer-tagline"), g.Text("AI-powered social media marketing for SaaS companies.")),
			),
			footerColumn("Company",
				A(Href("#"), g.Text("About Us")),
				A(Href(contact), g.Text("Contact")),
			),
			footerColumn("Legal",
				A(Href("#"), g.Text("Privacy Policy")),
				A(Href("#"), g.Text("Terms of Service")),
			),
			footerColumn("Connect",
				Div(
					Class("footer-social"),
					A(Href(site.TwitterURL), Target("_blank"), Rel("noopener noreferrer"), g.Attr("aria-label", "X (Twitter)"), Icon("twitter")),
					A(Href(contact), g.Attr("aria-label", "Email"), Icon("mail")),
				),
			),
		),
		P(
			Class("footer-copyright"),
			g.Textf("© %d %s. All rights reserved.", year, site.Name),
		),
	)
}

func footerColumn(title string, links ...g.Node) g.Node {
	return Div(
		Class("footer-column"),
		H4(g.Text(title)),
		Div(Class("footer-links"), g.Group(links)),
	)
}

func mapIndexed[T any](items []T, fn func(int, T) g.Node) []g.Node {
	nodes := make([]g.Node, 0, len(items))
	for i, item := range items {
		nodes = append(nodes, fn(i, item))
	}
	return nodes
}
