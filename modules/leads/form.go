package leads

// Form selects which contact fields a submission carries.
type Form string

const (
	// FormAudit is the audit terminal form: email and phone. It is the
	// default when the payload has no "form" field.
	FormAudit Form = "audit"
	// FormWhatsApp collects a WhatsApp number and an optional business name.
	FormWhatsApp Form = "whatsapp"
)

// Forms lists the accepted values of the "form" field.
var Forms = []Form{FormAudit, FormWhatsApp}

// OtherPainPoint is the pain point that requires a free text description.
const OtherPainPoint = "otro"

// Payload field names.
const (
	FieldForm             = "form"
	FieldName             = "name"
	FieldEmail            = "email"
	FieldPhone            = "phone"
	FieldWhatsApp         = "whatsapp"
	FieldBusiness         = "business"
	FieldPainPoint        = "painPoint"
	FieldOtherDescription = "otherDescription"
)

// Submission holds the sanitized values of a valid payload. Fields that do
// not belong to the submitted form are empty.
type Submission struct {
	Form             Form
	Name             string
	Email            string
	Phone            string
	WhatsApp         string
	Business         string
	PainPoint        string
	OtherDescription string
}
