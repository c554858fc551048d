package design

import (
	. "goa.design/goa/v3/dsl"
)

var _ = API("carlygage", func() {
	Title("Carly Gage Photography")
	Description("Marketing site and inquiry intake for a Dallas-Fort Worth family photographer")
	Version("1.0.0")
	Server("site", func() {
		Host("localhost", func() {
			URI("http://localhost:8000")
		})
	})
})

var NotFound = Type("NotFound", func() {
	Description("Resource not found")
	Attribute("message", String, "Error message", func() {
		Example("city \"nowhere\" not found")
	})
})

// Health check
var _ = Service("health", func() {
	Description("Health check service")
	Method("check", func() {
		Result(HealthResult)
		HTTP(func() {
			GET("/health")
			Response(StatusOK)
		})
	})
})

var HealthResult = ResultType("HealthResult", func() {
	Attribute("status", String, "healthy, or degraded when email or the catalog is unavailable", func() {
		Enum("healthy", "degraded")
		Example("healthy")
	})
	Attribute("service", String, "Service name", func() {
		Example("Carly Gage Photography")
	})
	Attribute("version", String, "Service version")
	Attribute("email", String, "Email provider state", func() {
		Enum("configured", "not_configured")
	})
	Attribute("catalog", String, "City catalog source", func() {
		Enum("static", "database", "unavailable")
	})
	Required("status", "service")
})

// Inquiry intake
var _ = Service("inquiry", func() {
	Description("Validates inquiry submissions and emails them to the business inbox")

	Error("invalid", InquiryResult, "One or more fields failed validation")
	Error("unconfigured", InquiryResult, "The email provider credential is not set")
	Error("delivery_failed", InquiryResult, "The email provider rejected or did not answer the send")
	Error("rate_limited", InquiryResult, "Too many inquiries from this address")

	Method("submit", func() {
		Description("Submit one inquiry; every outcome carries an InquiryResult body")
		Payload(InquiryPayload)
		Result(InquiryResult)
		HTTP(func() {
			POST("/api/inquiries")
			Response(StatusOK)
			Response("invalid", StatusBadRequest)
			Response("rate_limited", StatusTooManyRequests)
			Response("delivery_failed", StatusBadGateway)
			Response("unconfigured", StatusServiceUnavailable)
		})
	})
})

var InquiryPayload = Type("InquiryPayload", func() {
	Attribute("name", String, "Full name", func() {
		MinLength(2)
		Example("Jane Doe")
	})
	Attribute("email", String, "Reply-to address", func() {
		Format(FormatEmail)
		Example("jane@example.com")
	})
	Attribute("phone", String, "Phone number", func() {
		MinLength(10)
		Example("2145550123")
	})
	Attribute("sessionType", String, "Requested session", func() {
		Enum("family", "maternity", "baby-announcement", "mini")
	})
	Attribute("location", String, "City or area for the session", func() {
		MinLength(1)
		Example("Flower Mound")
	})
	Attribute("message", String, "Optional note", func() {
		MinLength(10)
	})
	Required("name", "email", "phone", "sessionType", "location")
})

var InquiryResult = Type("InquiryResult", func() {
	Attribute("success", Boolean, "Whether the provider accepted the email")
	Attribute("error", String, "User-facing failure message")
	Attribute("fields", MapOf(String, String), "Per-field validation messages")
	Attribute("reference", String, "Reference id logged with the send")
	Required("success")
})

// Service-area catalog
var _ = Service("location", func() {
	Description("Service-area landing page data")
	Error("not_found", NotFound)

	Method("show", func() {
		Description("Look up a city by slug; suffixes such as -family-photographer are ignored")
		Payload(func() {
			Attribute("city", String, "City slug", func() {
				Example("frisco-family-photographer")
			})
			Required("city")
		})
		Result(CityProfile)
		Error("not_found")
		HTTP(func() {
			GET("/locations/{city}")
			Response(StatusOK)
			Response("not_found", StatusNotFound)
		})
	})
})

var CityProfile = Type("CityProfile", func() {
	Attribute("slug", String, "Canonical slug", func() {
		Example("frisco")
	})
	Attribute("displayName", String, "Display name", func() {
		Example("Frisco")
	})
	Attribute("description", String, "Intro copy")
	Attribute("locations", ArrayOf(NamedLocation), "Favorite session spots")
	Attribute("faqs", ArrayOf(FAQ), "City-specific questions")
	Required("slug", "displayName")
})

var NamedLocation = Type("NamedLocation", func() {
	Attribute("name", String)
	Attribute("description", String)
})

var FAQ = Type("FAQ", func() {
	Attribute("question", String)
	Attribute("answer", String)
})
