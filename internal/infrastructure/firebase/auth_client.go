package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/iterator"
)

// AuthClient wraps the Firebase Admin SDK auth client. Identity lives
// entirely with Firebase; the backend only verifies ID tokens.
type AuthClient struct {
	client *auth.Client
}

func NewAuthClient(client *auth.Client) *AuthClient {
	return &AuthClient{
		client: client,
	}
}

// VerifyToken verifies a Firebase ID token and returns the caller's UID and
// email claim. The email is empty for providers that do not supply one.
func (f *AuthClient) VerifyToken(ctx context.Context, idToken string) (uid, email string, err error) {
	token, err := f.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", "", err
	}

	if claim, ok := token.Claims["email"].(string); ok {
		email = claim
	}

	return token.UID, email, nil
}

// TestConnection checks that the Firebase project is reachable.
func (f *AuthClient) TestConnection(ctx context.Context) error {
	iter := f.client.Users(ctx, "")
	if _, err := iter.Next(); err != nil && err != iterator.Done {
		return err
	}
	return nil
}
