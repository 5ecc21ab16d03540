package identity

// SecurityConfig holds identity webhook security settings.
type SecurityConfig struct {
	Secret          string // Signing secret issued by the identity provider
	RateLimitPerMin int    // Max requests per minute
}

// eventPayload is the identity provider's webhook envelope. Only the event
// type and the subject's id matter here; the rest of the profile is ignored.
type eventPayload struct {
	Type string `json:"type"`
	Data struct {
		ID string `json:"id"`
	} `json:"data"`
}
