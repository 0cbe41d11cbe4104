package terminal

import (
	"context"
	"fmt"
	"strings"

	"github.com/termfolio/termfolio/internal/portfolio"
)

func startContact(_ []string, _ Context) Result {
	return Result{
		Lines: []Line{
			Accent("📬 Let's get in touch!"),
			Muted("Type 'cancel' at any time to stop."),
			Plain("What's your name?"),
		},
		Mode: &ContactMode{Step: StepName},
	}
}

func (in *Interpreter) contactStep(m *ContactMode, line string) []Line {
	switch m.Step {
	case StepName:
		if line == "" {
			return []Line{Error("Name cannot be empty."), Plain("What's your name?")}
		}
		m.Name = line
		m.Step = StepEmail
		return []Line{
			Success(fmt.Sprintf("Nice to meet you, %s!", m.Name)),
			Plain("What's your email?"),
		}

	case StepEmail:
		if !strings.Contains(line, "@") {
			return []Line{Error("Please enter a valid email."), Plain("What's your email?")}
		}
		m.Email = line
		m.Step = StepMessage
		return []Line{Plain("What would you like to say?")}

	case StepMessage:
		if line == "" {
			return []Line{Error("Message cannot be empty."), Plain("What would you like to say?")}
		}
		msg := portfolio.ContactMessage{Name: m.Name, Email: m.Email, Message: line}
		in.exitMode()
		if in.contact == nil {
			return []Line{Errorf("Contact form is offline. Email me at %s instead.", portfolio.Owner.Email)}
		}
		in.run(in.sendContact(msg))
		return []Line{Muted("Sending your message...")}
	}

	in.exitMode()
	return nil
}

// sendContact reports the outcome of a submission whenever it lands, which
// may be after later commands have already printed.
func (in *Interpreter) sendContact(msg portfolio.ContactMessage) Effect {
	sink := in.contact
	logger := in.logger
	return func(ctx context.Context) []Line {
		if err := sink.Submit(ctx, msg); err != nil {
			logger.Warn("contact submission failed", "error", err)
			return []Line{
				Error("Failed to send your message."),
				Muted(fmt.Sprintf("Please try again later or email %s.", portfolio.Owner.Email)),
			}
		}
		logger.Info("contact submission sent")
		return []Line{Success("✓ Message sent! I'll get back to you soon.")}
	}
}
