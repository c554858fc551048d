package services

import (
	"bytes"
	"embed"
	"fmt"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"
	"time"

	"carlygage/internal/domain"
)

//go:embed templates/inquiry_email.html templates/inquiry_email.txt
var emailFS embed.FS

var (
	inquiryHTML = htmltemplate.Must(htmltemplate.ParseFS(emailFS, "templates/inquiry_email.html"))
	inquiryText = texttemplate.Must(texttemplate.ParseFS(emailFS, "templates/inquiry_email.txt"))
)

// InquiryEmail is a rendered notification
type InquiryEmail struct {
	Subject string
	HTML    string
	Text    string
}

type inquiryEmailData struct {
	Business     string
	Site         string
	Name         string
	Email        string
	Phone        string
	PhoneHref    htmltemplate.URL
	SessionLabel string
	Location     string
	Message      string
	Submitted    string
	Reference    string
}

// RenderInquiryEmail renders the business notification for req. User
// supplied values are escaped in the HTML body.
func RenderInquiryEmail(req domain.InquiryRequest, subjectPrefix, reference string, submitted time.Time) (*InquiryEmail, error) {
	data := inquiryEmailData{
		Business:     "Carly Gage Photography",
		Site:         "carlygage.com",
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PhoneHref:    telURL(req.Phone),
		SessionLabel: req.SessionType.Label(),
		Location:     req.Location,
		Message:      req.Message,
		Submitted:    submitted.Format("January 2, 2006 at 3:04 PM MST"),
		Reference:    reference,
	}

	var html, text bytes.Buffer
	if err := inquiryHTML.Execute(&html, data); err != nil {
		return nil, fmt.Errorf("render html body: %w", err)
	}
	if err := inquiryText.Execute(&text, data); err != nil {
		return nil, fmt.Errorf("render text body: %w", err)
	}

	return &InquiryEmail{
		Subject: fmt.Sprintf("%s: %s", subjectPrefix, req.Name),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

// telURL keeps only dialable characters; html/template rejects the tel
// scheme unless the value is marked safe.
func telURL(phone string) htmltemplate.URL {
	var b strings.Builder
	for _, r := range phone {
		if (r >= '0' && r <= '9') || (r == '+' && b.Len() == 0) {
			b.WriteRune(r)
		}
	}
	return htmltemplate.URL("tel:" + b.String())
}
