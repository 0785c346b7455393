package waitlist

import (
	"encoding/json"
	"strings"

	"github.com/akeren/saascribe/internal/models"
)

type JoinWaitlistRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

// UnmarshalJSON trims the email before binding validates it, the same way
// SetEmail treats the form field.
func (r *JoinWaitlistRequest) UnmarshalJSON(data []byte) error {
	type plain JoinWaitlistRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}

	p.Email = strings.TrimSpace(p.Email)
	*r = JoinWaitlistRequest(p)
	return nil
}

// JoinWaitlistResponse is everything the browser needs to replay a submit:
// the resulting form state, the toasts and the blocking alert (if any).
type JoinWaitlistResponse struct {
	Email         string         `json:"email"`
	State         string         `json:"state"`
	Notifications []Notification `json:"notifications"`
	Alert         string         `json:"alert"`
	Retryable     bool           `json:"retryable"`
}

func ToWaitlistEntryModel(email string) *models.WaitlistEntry {
	return &models.WaitlistEntry{Email: email}
}

func ToJoinWaitlistResponse(state SubmissionState, outcome Outcome, feedback *RequestFeedback) JoinWaitlistResponse {
	return JoinWaitlistResponse{
		Email:         state.Email,
		State:         state.Phase(),
		Notifications: feedback.Notifications(),
		Alert:         feedback.LastAlert(),
		Retryable:     outcome.Retryable,
	}
}
