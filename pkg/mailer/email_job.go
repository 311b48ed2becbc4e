package mailer

// Template names understood by the worker.
const (
	TemplateWelcome         = "welcome"
	TemplatePasswordChanged = "password_changed"
)

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects one of the known bodies; Data feeds its placeholders.
type EmailJob struct {
	To       string         `json:"to"`
	Template string         `json:"template"`
	Data     map[string]any `json:"data,omitempty"`
}
