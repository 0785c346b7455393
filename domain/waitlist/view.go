package waitlist

import (
	g "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const (
	SubmitPath  = "/waitlist"
	APIEndpoint = "/v1/waitlist"
)

func ButtonLabel(isSubmitting bool) string {
	if isSubmitting {
		return "Joining..."
	}
	return "Join Waitlist"
}

// FormView renders the waitlist form. It works as a plain POST to SubmitPath and
// is upgraded by /static/waitlist.js to a JSON call against APIEndpoint.
func FormView(state SubmissionState, fieldError string) g.Node {
	return Form(
		ID("waitlist-form"),
		Class("waitlist-form"),
		Action(SubmitPath),
		Method("post"),
		g.Attr("data-api", APIEndpoint),
		Input(
			ID("waitlist-email"),
			Type("email"),
			Name("email"),
			Placeholder("Enter your email"),
			Value(state.Email),
			Required(),
			g.Attr("autocomplete", "email"),
			Class("waitlist-input"),
			g.If(fieldError != "", g.Attr("aria-invalid", "true")),
			g.If(fieldError != "", g.Attr("aria-describedby", "waitlist-email-error")),
		),
		SubmitButton(state.IsSubmitting),
		g.If(fieldError != "", P(ID("waitlist-email-error"), Class("field-error"), g.Text(fieldError))),
	)
}

func SubmitButton(isSubmitting bool) g.Node {
	return Button(
		ID("waitlist-submit"),
		Type("submit"),
		Class("waitlist-button"),
		g.If(isSubmitting, Disabled()),
		g.If(isSubmitting, g.Attr("aria-busy", "true")),
		g.Text(ButtonLabel(isSubmitting)),
	)
}

// Toasts is always rendered so the script has a live region to append to.
func Toasts(notifications []Notification) g.Node {
	return Div(
		ID("toasts"),
		Class("toast-region"),
		g.Attr("aria-live", "polite"),
		g.Group(g.Map(notifications, Toast)),
	)
}

func Toast(n Notification) g.Node {
	variant := n.Variant
	if variant == "" {
		variant = VariantDefault
	}

	return Div(
		Class("toast toast-"+string(variant)),
		g.Attr("role", "status"),
		g.Attr("data-variant", string(variant)),
		P(Class("toast-title"), g.Text(n.Title)),
		P(Class("toast-description"), g.Text(n.Description)),
	)
}

// AlertDialog is the no-script stand-in for window.alert: an open modal the
// visitor has to dismiss.
func AlertDialog(message string) g.Node {
	if message == "" {
		return nil
	}

	return g.El("dialog",
		ID("waitlist-alert"),
		Class("alert-dialog"),
		g.Attr("open"),
		g.Attr("role", "alertdialog"),
		g.Attr("aria-labelledby", "waitlist-alert-message"),
		P(ID("waitlist-alert-message"), g.Text(message)),
		Form(
			Method("dialog"),
			Button(Type("submit"), Class("alert-dismiss"), g.Text("OK")),
		),
	)
}
