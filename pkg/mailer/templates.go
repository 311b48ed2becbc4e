package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

var templates = map[string]*template.Template{
	TemplateWelcome: template.Must(template.New(TemplateWelcome).Parse(`
<p>Hi {{.Name}},</p>
<p>Welcome to PureHerbal! Your account is ready. You can manage your profile
and shipping addresses any time from your account page.</p>
<p>Happy shopping,<br>The PureHerbal team</p>
`)),
	TemplatePasswordChanged: template.Must(template.New(TemplatePasswordChanged).Parse(`
<p>Hi {{.Name}},</p>
<p>The password for your PureHerbal account was just changed. If this was
you, no action is needed.</p>
<p>If you did not change your password, please reset it immediately and
contact support.</p>
`)),
}

var subjects = map[string]string{
	TemplateWelcome:         "Welcome to PureHerbal",
	TemplatePasswordChanged: "Your PureHerbal password was changed",
}

// Render produces the subject and HTML body for a known template.
func Render(name string, data map[string]any) (subject, html string, err error) {
	tpl, ok := templates[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}
	var buf bytes.Buffer
	if err := tpl.Execute(&buf, data); err != nil {
		return "", "", err
	}
	return subjects[name], buf.String(), nil
}
