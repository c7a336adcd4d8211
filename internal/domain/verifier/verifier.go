package verifier

import (
	"context"
	"fmt"
)

// Client defines the boundary to the external KYC verifier.
// Implementations must not retry and must bound every call with a timeout.
type Client interface {
	// Authenticate obtains a short-lived API token.
	Authenticate(ctx context.Context) (string, error)

	// Initiate opens a verification session for the user.
	Initiate(ctx context.Context, req *InitiateRequest) (*InitiateResponse, error)

	// PollStatus fetches the verifier-side status of a verification.
	PollStatus(ctx context.Context, verifierKycID string) (*StatusResponse, error)
}

// InitiateRequest is the provider-agnostic verification request
type InitiateRequest struct {
	ExternalID string
	FirstName  string
	LastName   string
	Email      string
}

// InitiateResponse carries the verifier's identifiers for a new verification
type InitiateResponse struct {
	VerifierKycID   string
	VerificationURL string
}

// StatusResponse is the verifier's view of a verification
type StatusResponse struct {
	Status  string
	Details map[string]interface{}
}

// Error represents a failed verifier call
type Error struct {
	Op         string
	StatusCode int
	Message    string
	Err        error
}

func (e *Error) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("verifier %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("verifier %s: %s: %v", e.Op, e.Message, e.Err)
	}
	return fmt.Sprintf("verifier %s: %s", e.Op, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}
