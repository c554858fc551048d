// Command inquire submits one inquiry to a running site and reports each
// state of the submission.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"carlygage/internal/domain"
	"carlygage/internal/submission"
)

func main() {
	var (
		server  = flag.String("server", "http://localhost:8000", "base URL of the site")
		timeout = flag.Duration("timeout", 30*time.Second, "request timeout")
		contact = flag.String("contact", "carlygagephotography@gmail.com", "address shown when the inquiry cannot be sent")
		form    domain.InquiryForm
	)
	flag.StringVar(&form.Name, "name", "", "your name")
	flag.StringVar(&form.Email, "email", "", "your email address")
	flag.StringVar(&form.Phone, "phone", "", "your phone number")
	flag.StringVar(&form.SessionType, "session", "", "session type: family, maternity, baby-announcement or mini")
	flag.StringVar(&form.Location, "location", "", "city or area for the session")
	flag.StringVar(&form.Message, "message", "", "anything else to share (optional)")
	flag.Parse()

	os.Exit(run(*server, *timeout, *contact, form))
}

func run(server string, timeout time.Duration, contact string, values domain.InquiryForm) int {
	submitter := submission.NewHTTPSubmitter(server)
	submitter.Client.Timeout = timeout

	form := submission.NewForm(submitter, submission.WithFallbackContact(contact))
	defer form.Close()
	form.OnTransition(func(from, to submission.State) {
		fmt.Printf("%s -> %s\n", from, to)
	})
	form.Set(values)

	result, err := form.Submit(context.Background())
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		fmt.Fprintln(os.Stderr, "Please correct the following:")
		fields := verrs.Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(os.Stderr, "  %s: %s\n", name, fields[name])
		}
		return 1
	case form.State() != submission.Success:
		fmt.Fprintln(os.Stderr, form.Message())
		if err != nil {
			fmt.Fprintf(os.Stderr, "(%v)\n", err)
		}
		return 1
	}

	fmt.Println(form.Message())
	if result.Reference != "" {
		fmt.Printf("Reference: %s\n", result.Reference)
	}
	return 0
}
