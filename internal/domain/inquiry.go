package domain

// SessionType is the kind of photography session requested in an inquiry
type SessionType string

const (
	SessionFamily           SessionType = "family"
	SessionMaternity        SessionType = "maternity"
	SessionBabyAnnouncement SessionType = "baby-announcement"
	SessionMini             SessionType = "mini"
)

// SessionTypes lists the accepted session types in display order
var SessionTypes = []SessionType{
	SessionFamily,
	SessionMaternity,
	SessionBabyAnnouncement,
	SessionMini,
}

var sessionLabels = map[SessionType]string{
	SessionFamily:           "Family Session",
	SessionMaternity:        "Maternity",
	SessionBabyAnnouncement: "Baby Announcement",
	SessionMini:             "Mini Session",
}

// Valid reports whether s is one of the accepted session types
func (s SessionType) Valid() bool {
	_, ok := sessionLabels[s]
	return ok
}

// Label returns the human readable name of the session type
func (s SessionType) Label() string {
	if label, ok := sessionLabels[s]; ok {
		return label
	}
	return string(s)
}

// InquiryForm holds raw form values as submitted by a visitor
type InquiryForm struct {
	Name        string `json:"name" form:"name"`
	Email       string `json:"email" form:"email"`
	Phone       string `json:"phone" form:"phone"`
	SessionType string `json:"sessionType" form:"sessionType"`
	Location    string `json:"location" form:"location"`
	Message     string `json:"message,omitempty" form:"message"`
}

// InquiryRequest is a validated inquiry. Build it with ValidateInquiry.
type InquiryRequest struct {
	Name        string
	Email       string
	Phone       string
	SessionType SessionType
	Location    string
	Message     string
}

// Form converts a validated request back to its raw form values
func (r InquiryRequest) Form() InquiryForm {
	return InquiryForm{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		SessionType: string(r.SessionType),
		Location:    r.Location,
		Message:     r.Message,
	}
}

// InquiryResult is the normalized outcome of an inquiry submission
type InquiryResult struct {
	Success   bool              `json:"success"`
	Error     string            `json:"error,omitempty"`
	Fields    map[string]string `json:"fields,omitempty"`
	Reference string            `json:"reference,omitempty"`
}

// InquirySucceeded builds a successful result
func InquirySucceeded(reference string) InquiryResult {
	return InquiryResult{Success: true, Reference: reference}
}

// InquiryFailed builds a failed result carrying a user-facing message
func InquiryFailed(message, reference string) InquiryResult {
	return InquiryResult{Success: false, Error: message, Reference: reference}
}
