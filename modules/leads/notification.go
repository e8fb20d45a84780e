package leads

import (
	"bytes"
	"context"
	"html/template"
	"log/slog"
	texttemplate "text/template"

	"github.com/chatbridge/leadcapture/pkg/email"
	"github.com/chatbridge/leadcapture/pkg/logger"
)

const notificationTag = "lead-notification"

var notificationTemplate = template.Must(template.New("lead").Parse(`<h2>Nuevo lead {{.ID}}</h2>
<ul>
<li><strong>Formulario:</strong> {{.Form}}</li>
<li><strong>Nombre:</strong> {{.Name}}</li>
{{- if .Email}}
<li><strong>Correo:</strong> {{.Email}}</li>
{{- end}}
{{- if .Phone}}
<li><strong>Teléfono:</strong> {{.Phone}}</li>
{{- end}}
{{- if .WhatsApp}}
<li><strong>WhatsApp:</strong> {{.WhatsApp}}</li>
{{- end}}
{{- if .Business}}
<li><strong>Negocio:</strong> {{.Business}}</li>
{{- end}}
<li><strong>Problema:</strong> {{.PainPoint}}</li>
{{- if .OtherDescription}}
<li><strong>Descripción:</strong> {{.OtherDescription}}</li>
{{- end}}
<li><strong>Recibido:</strong> {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}</li>
</ul>
`))

var notificationTextTemplate = texttemplate.Must(texttemplate.New("lead").Parse(`Nuevo lead {{.ID}}

Formulario: {{.Form}}
Nombre: {{.Name}}
{{- if .Email}}
Correo: {{.Email}}
{{- end}}
{{- if .Phone}}
Teléfono: {{.Phone}}
{{- end}}
{{- if .WhatsApp}}
WhatsApp: {{.WhatsApp}}
{{- end}}
{{- if .Business}}
Negocio: {{.Business}}
{{- end}}
Problema: {{.PainPoint}}
{{- if .OtherDescription}}
Descripción: {{.OtherDescription}}
{{- end}}
Recibido: {{.CreatedAt.Format "2006-01-02 15:04:05 MST"}}
`))

// notificationParams renders the internal email about a new lead.
func notificationParams(to string, r Record) (email.SendEmailParams, error) {
	var html, text bytes.Buffer
	if err := notificationTemplate.Execute(&html, r); err != nil {
		return email.SendEmailParams{}, err
	}
	if err := notificationTextTemplate.Execute(&text, r); err != nil {
		return email.SendEmailParams{}, err
	}
	return email.SendEmailParams{
		SendTo:   to,
		Subject:  "Nuevo lead: " + r.Name,
		BodyHTML: html.String(),
		BodyText: text.String(),
		Tag:      notificationTag,
	}, nil
}

func (d *Dispatcher) notify(ctx context.Context, r Record) {
	params, err := notificationParams(d.cfg.NotifyEmail, r)
	if err == nil {
		err = d.mailer.SendEmail(ctx, params)
	}
	if err != nil {
		d.log.LogAttrs(ctx, slog.LevelError, "lead notification failed",
			logger.LeadID(r.ID),
			logger.Error(err),
			logger.Component("leads"),
			logger.Event("notification_failed"),
		)
		return
	}
	d.log.LogAttrs(ctx, slog.LevelInfo, "lead notification sent",
		logger.LeadID(r.ID),
		logger.Component("leads"),
		logger.Event("notification_sent"),
	)
}
