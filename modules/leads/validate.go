package leads

import (
	"github.com/chatbridge/leadcapture/pkg/sanitizer"
	"github.com/chatbridge/leadcapture/pkg/validator"
)

// Validate sanitizes every known field of input and checks it. All failures
// are returned together as validator.ValidationErrors, ordered by field:
// form, name, contact fields, painPoint, otherDescription, business.
// Messages are the Spanish defaults; callers translate them by key.
func Validate(input map[string]any) (Submission, error) {
	form, formGiven := formOf(input)

	sub := Submission{
		Form:             form,
		Name:             field(input, FieldName),
		PainPoint:        field(input, FieldPainPoint),
		OtherDescription: field(input, FieldOtherDescription),
	}

	var rules []validator.Rule
	if formGiven {
		rules = append(rules,
			validator.InList(FieldForm, form, Forms).WithMessage("leads.form.invalid", "Formulario inválido"),
		)
	}

	rules = append(rules,
		validator.RequiredString(FieldName, sub.Name).WithMessage("leads.name.required", "El nombre es requerido"),
		validator.LenBetween(FieldName, sub.Name, 2, 100).WithMessage("leads.name.length", "El nombre debe tener entre 2 y 100 caracteres"),
	)

	switch form {
	case FormWhatsApp:
		sub.WhatsApp = field(input, FieldWhatsApp)
		sub.Business = field(input, FieldBusiness)
		rules = append(rules,
			validator.RequiredString(FieldWhatsApp, sub.WhatsApp).WithMessage("leads.whatsapp.required", "El número de WhatsApp es requerido"),
			validator.ValidPhone(FieldWhatsApp, sub.WhatsApp).WithMessage("leads.whatsapp.invalid", "Formato de WhatsApp inválido"),
		)
	default:
		sub.Email = field(input, FieldEmail)
		sub.Phone = field(input, FieldPhone)
		rules = append(rules,
			validator.RequiredString(FieldEmail, sub.Email).WithMessage("leads.email.required", "El correo electrónico es requerido"),
			validator.ValidEmail(FieldEmail, sub.Email).WithMessage("leads.email.invalid", "Formato de correo electrónico inválido"),
			validator.RequiredString(FieldPhone, sub.Phone).WithMessage("leads.phone.required", "El número de teléfono es requerido"),
			validator.ValidPhone(FieldPhone, sub.Phone).WithMessage("leads.phone.invalid", "Formato de teléfono inválido"),
		)
	}

	rules = append(rules,
		validator.RequiredString(FieldPainPoint, sub.PainPoint).WithMessage("leads.pain_point.required", "Selecciona tu principal problema"),
		validator.LenBetween(FieldPainPoint, sub.PainPoint, 1, 200).WithMessage("leads.pain_point.invalid", "Problema inválido"),
		validator.RequiredIf(sub.PainPoint == OtherPainPoint, FieldOtherDescription, sub.OtherDescription).
			WithMessage("leads.other_description.required", "Por favor describe tu problema"),
	)
	rules = append(rules, validator.When(sub.OtherDescription != "",
		validator.LenBetween(FieldOtherDescription, sub.OtherDescription, 5, 1000).
			WithMessage("leads.other_description.length", "La descripción debe tener entre 5 y 1000 caracteres"),
	)...)
	rules = append(rules, validator.When(sub.Business != "",
		validator.LenBetween(FieldBusiness, sub.Business, 2, 100).
			WithMessage("leads.business.length", "El nombre del negocio debe tener entre 2 y 100 caracteres"),
	)...)

	if err := validator.Apply(rules...); err != nil {
		return Submission{}, err
	}
	return sub, nil
}

// field returns the sanitized string value of key, or "" when it is
// missing or not a string.
func field(input map[string]any, key string) string {
	s, _ := sanitizer.SanitizeString(input[key])
	return s
}

// formOf resolves the form discriminator. A missing, null or empty "form"
// means FormAudit; any other value is reported by the caller's InList rule.
func formOf(input map[string]any) (Form, bool) {
	raw, ok := input[FieldForm]
	if !ok || raw == nil {
		return FormAudit, false
	}
	s, isString := sanitizer.SanitizeString(raw)
	if isString && s == "" {
		return FormAudit, false
	}
	return Form(s), true
}
