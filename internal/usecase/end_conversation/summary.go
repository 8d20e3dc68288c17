package end_conversation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AppointmentAssistant/internal/domain"
)

const (
	summaryGreeting = "Thank you for using our appointment booking service. "
	summaryFarewell = "Have a great day!"
	anonymousCaller = "the user"
)

// buildSummaryText формирует текст итога по упомянутым записям
func buildSummaryText(caller *domain.Caller, mentioned []*domain.Appointment) string {
	var b strings.Builder
	b.WriteString(summaryGreeting)

	if caller != nil {
		name := caller.DisplayName()
		if name == "" {
			name = anonymousCaller
		}

		var active, cancelled []*domain.Appointment
		for _, a := range mentioned {
			switch a.Status {
			case domain.StatusActive:
				active = append(active, a)
			case domain.StatusCancelled:
				cancelled = append(cancelled, a)
			}
		}

		switch {
		case len(active) == 1:
			fmt.Fprintf(&b, "We helped %s book 1 appointment for %s. ", name, active[0].Display())
		case len(active) > 1:
			fmt.Fprintf(&b, "We helped %s manage %d appointment(s). ", name, len(active))
		case len(cancelled) > 0:
			fmt.Fprintf(&b, "We helped %s cancel %d appointment(s). ", name, len(cancelled))
		default:
			fmt.Fprintf(&b, "We assisted %s with their appointment needs. ", name)
		}
	}

	b.WriteString(summaryFarewell)
	return b.String()
}

func views(appts []*domain.Appointment) []domain.AppointmentView {
	result := make([]domain.AppointmentView, 0, len(appts))
	for _, a := range appts {
		result = append(result, a.View())
	}
	return result
}
