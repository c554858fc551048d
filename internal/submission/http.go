package submission

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	goahttp "goa.design/goa/v3/http"

	"carlygage/internal/domain"
)

// InquiryPath is the JSON inquiry endpoint
const InquiryPath = "/api/inquiries"

// HTTPSubmitter posts inquiries to a running site
type HTTPSubmitter struct {
	BaseURL string
	Client  *http.Client
}

// NewHTTPSubmitter creates a submitter for the site at baseURL
func NewHTTPSubmitter(baseURL string) *HTTPSubmitter {
	return &HTTPSubmitter{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Client:  &http.Client{Timeout: 30 * time.Second},
	}
}

// SubmitInquiry posts form as JSON. The endpoint answers with an
// InquiryResult for every outcome, so the body is decoded whatever the
// status; an error is returned only when no result could be read.
func (h *HTTPSubmitter) SubmitInquiry(ctx context.Context, form domain.InquiryForm) (domain.InquiryResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.BaseURL+InquiryPath, nil)
	if err != nil {
		return domain.InquiryResult{}, fmt.Errorf("build inquiry request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if err := goahttp.RequestEncoder(req).Encode(form); err != nil {
		return domain.InquiryResult{}, fmt.Errorf("encode inquiry: %w", err)
	}

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return domain.InquiryResult{}, fmt.Errorf("post inquiry: %w", err)
	}
	defer resp.Body.Close()

	var result domain.InquiryResult
	if err := goahttp.ResponseDecoder(resp).Decode(&result); err != nil {
		return domain.InquiryResult{}, fmt.Errorf("decode inquiry response (status %d): %w", resp.StatusCode, err)
	}
	if !result.Success && result.Error == "" {
		result.Error = fmt.Sprintf("inquiry endpoint returned %s", resp.Status)
	}
	return result, nil
}
