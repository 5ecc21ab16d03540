package identity

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// signatureTolerance bounds how far a webhook timestamp may drift from the
// server clock before the message is rejected as a possible replay.
const signatureTolerance = 5 * time.Minute

// SecurityValidator validates identity webhook requests.
type SecurityValidator struct {
	config      SecurityConfig
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config SecurityConfig) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateSignature verifies a webhook in the identity provider's scheme:
// HMAC-SHA256 over "<id>.<timestamp>.<body>" with the base64 portion of a
// "whsec_"-prefixed secret, matched against the "v1,<base64>" candidates in
// the signature header.
func (v *SecurityValidator) ValidateSignature(payload []byte, msgID, timestamp, signatures string) error {
	if v.config.Secret == "" {
		return fmt.Errorf("webhook secret not configured")
	}
	if msgID == "" || timestamp == "" || signatures == "" {
		return fmt.Errorf("missing signature headers")
	}

	if err := v.checkTimestamp(timestamp); err != nil {
		return err
	}

	key, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(v.config.Secret, "whsec_"))
	if err != nil {
		return fmt.Errorf("invalid webhook secret encoding: %w", err)
	}

	mac := hmac.New(sha256.New, key)
	fmt.Fprintf(mac, "%s.%s.", msgID, timestamp)
	mac.Write(payload)
	expectedSig := mac.Sum(nil)

	// The header may carry several space-separated candidates after a key
	// rotation; any "v1" match passes.
	for _, candidate := range strings.Split(signatures, " ") {
		version, sig, found := strings.Cut(candidate, ",")
		if !found || version != "v1" {
			continue
		}
		actualSig, err := base64.StdEncoding.DecodeString(sig)
		if err != nil {
			continue
		}
		if hmac.Equal(expectedSig, actualSig) {
			return nil
		}
	}

	return fmt.Errorf("signature verification failed")
}

func (v *SecurityValidator) checkTimestamp(timestamp string) error {
	sec, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp: %w", err)
	}

	drift := time.Since(time.Unix(sec, 0))
	if drift > signatureTolerance || drift < -signatureTolerance {
		return fmt.Errorf("timestamp outside tolerance")
	}
	return nil
}

// CheckRateLimit enforces rate limiting.
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter is a production-grade rate limiter with auto-cleanup.
type rateLimiter struct {
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	if requestsPerMin <= 0 {
		requestsPerMin = 60
	}
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
