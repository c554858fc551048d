package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"mime"
	"net/http"
	"net/http/httptest"
	"net/smtp"
	"net/url"
	"strings"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/resend/resend-go/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"carlygage/internal/config"
	apperrors "carlygage/pkg/errors"
)

func testMessage() *Message {
	return &Message{
		From:    "Carly Gage Photography <hello@carlygage.com>",
		To:      []string{"carlygagephotography@gmail.com"},
		Subject: "New Family Session Inquiry: Jane Doe",
		ReplyTo: "jane@example.com",
		HTML:    "<p>Jane Doe</p>",
		Text:    "Jane Doe",
	}
}

func newResendTestSender(t *testing.T, handler http.HandlerFunc) *ResendSender {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client := resend.NewClient("re_test_key")
	base, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	client.BaseURL = base
	return NewResendSenderWithClient(client)
}

func TestResendSender_Send(t *testing.T) {
	var got map[string]any
	sender := newResendTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/emails", r.URL.Path)
		assert.Equal(t, "Bearer re_test_key", r.Header.Get("Authorization"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"49a3999c-0ce1-4ea6-ab68-afcd6dc2e794"}`))
	})

	id, err := sender.Send(context.Background(), testMessage())
	require.NoError(t, err)
	assert.Equal(t, "49a3999c-0ce1-4ea6-ab68-afcd6dc2e794", id)
	assert.Equal(t, "New Family Session Inquiry: Jane Doe", got["subject"])
	assert.Equal(t, "jane@example.com", got["reply_to"])
	assert.Equal(t, "Carly Gage Photography <hello@carlygage.com>", got["from"])
	assert.Equal(t, []any{"carlygagephotography@gmail.com"}, got["to"])
}

func TestResendSender_ProviderRejection(t *testing.T) {
	sender := newResendTestSender(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"statusCode":403,"name":"validation_error","message":"domain is not verified"}`))
	})

	_, err := Instrument(config.ProviderResend, sender, zap.NewNop()).Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.True(t, apperrors.IsDelivery(err))
}

type mockSES struct {
	input *ses.SendEmailInput
	err   error
}

func (m *mockSES) SendEmail(ctx context.Context, params *ses.SendEmailInput, optFns ...func(*ses.Options)) (*ses.SendEmailOutput, error) {
	m.input = params
	if m.err != nil {
		return nil, m.err
	}
	return &ses.SendEmailOutput{MessageId: aws.String("ses-0001")}, nil
}

func TestSESSender_Send(t *testing.T) {
	client := &mockSES{}
	id, err := NewSESSenderWithClient(client).Send(context.Background(), testMessage())
	require.NoError(t, err)

	assert.Equal(t, "ses-0001", id)
	require.NotNil(t, client.input)
	assert.Equal(t, []string{"jane@example.com"}, client.input.ReplyToAddresses)
	assert.Equal(t, []string{"carlygagephotography@gmail.com"}, client.input.Destination.ToAddresses)
	assert.Equal(t, "New Family Session Inquiry: Jane Doe", aws.ToString(client.input.Message.Subject.Data))
	assert.Equal(t, "<p>Jane Doe</p>", aws.ToString(client.input.Message.Body.Html.Data))
}

func TestSESSender_Error(t *testing.T) {
	client := &mockSES{err: errors.New("MessageRejected: Email address is not verified")}
	_, err := NewSESSenderWithClient(client).Send(context.Background(), testMessage())
	assert.ErrorContains(t, err, "MessageRejected")
}

func TestSMTPSender_Send(t *testing.T) {
	sender := NewSMTPSender("smtp.example.com", 587, "user", "secret")

	var (
		gotAddr string
		gotFrom string
		gotTo   []string
		gotBody string
	)
	sender.sendMail = func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
		gotAddr, gotFrom, gotTo, gotBody = addr, from, to, string(msg)
		return nil
	}

	msg := testMessage()
	msg.Subject = "New Family Session Inquiry: Jane\r\nBcc: victim@example.com"

	id, err := sender.Send(context.Background(), msg)
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(id, "@smtp.example.com>"))
	assert.Equal(t, "smtp.example.com:587", gotAddr)
	assert.Equal(t, "hello@carlygage.com", gotFrom)
	assert.Equal(t, []string{"carlygagephotography@gmail.com"}, gotTo)
	assert.Contains(t, gotBody, "Reply-To: <jane@example.com>\r\n")
	assert.Contains(t, gotBody, "From: \"Carly Gage Photography\" <hello@carlygage.com>\r\n")
	assert.Contains(t, gotBody, "Content-Type: text/html; charset=UTF-8")
	assert.NotContains(t, gotBody, "\r\nBcc:")
}

func TestBuildMIME_EncodesNonASCIIHeaders(t *testing.T) {
	msg := testMessage()
	msg.From = "José Ñúñez Studio <hello@carlygage.com>"
	msg.Subject = "New Family Session Inquiry: José Ñúñez"

	body := string(buildMIME("<id@smtp.example.com>", msg))
	headers := body[:strings.Index(body, "\r\n\r\n")]

	for _, line := range strings.Split(headers, "\r\n") {
		for _, r := range line {
			require.Less(t, r, rune(128), "header line is not 7-bit: %q", line)
		}
	}
	assert.Contains(t, headers, "Subject: =?utf-8?q?")
	assert.Contains(t, headers, "<hello@carlygage.com>")

	dec := new(mime.WordDecoder)
	subject, err := dec.DecodeHeader(strings.TrimPrefix(headerLine(headers, "Subject: "), "Subject: "))
	require.NoError(t, err)
	assert.Equal(t, msg.Subject, subject)
}

func headerLine(headers, prefix string) string {
	for _, line := range strings.Split(headers, "\r\n") {
		if strings.HasPrefix(line, prefix) {
			return line
		}
	}
	return ""
}

func TestSMTPSender_CanceledContext(t *testing.T) {
	sender := NewSMTPSender("smtp.example.com", 587, "user", "secret")
	sender.sendMail = func(string, smtp.Auth, string, []string, []byte) error {
		t.Fatal("sendMail must not be called")
		return nil
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sender.Send(ctx, testMessage())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewSender_MissingCredential(t *testing.T) {
	sender, err := NewSender(context.Background(), config.EmailConfig{Provider: config.ProviderResend}, zap.NewNop())
	assert.Nil(t, sender)
	assert.True(t, apperrors.IsConfiguration(err))

	sender, err = NewSender(context.Background(), config.EmailConfig{Provider: config.ProviderSMTP, SMTPHost: "smtp.gmail.com"}, zap.NewNop())
	assert.Nil(t, sender)
	assert.True(t, apperrors.IsConfiguration(err))
}

func TestNewSender_Resend(t *testing.T) {
	sender, err := NewSender(context.Background(), config.EmailConfig{
		Provider:     config.ProviderResend,
		ResendAPIKey: "re_123",
	}, zap.NewNop())
	require.NoError(t, err)
	assert.NotNil(t, sender)
}

func TestInstrument_PassesThroughDeliveryErrors(t *testing.T) {
	delivery := apperrors.Wrap(apperrors.ErrCodeDelivery, "already wrapped", errors.New("boom"))
	s := Instrument("fake", SenderFunc(func(context.Context, *Message) (string, error) {
		return "", delivery
	}), nil)

	_, err := s.Send(context.Background(), testMessage())
	assert.Same(t, delivery, err)
}
