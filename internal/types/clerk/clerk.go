package clerk

import "encoding/json"

// WebhookEvent is the envelope Clerk posts; Data stays raw until the event
// type is known.
type WebhookEvent struct {
	Type   string          `json:"type"`
	Object string          `json:"object"`
	Data   json.RawMessage `json:"data"`
}

type EmailAddress struct {
	ID           string `json:"id"`
	EmailAddress string `json:"email_address"`
	Verification struct {
		Status string `json:"status"`
	} `json:"verification"`
}

type UserData struct {
	ID              string         `json:"id"`
	Username        string         `json:"username"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	ImageURL        string         `json:"image_url"`
	ProfileImageURL string         `json:"profile_image_url"`
	EmailAddresses  []EmailAddress `json:"email_addresses"`
}
