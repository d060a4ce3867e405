package services

import (
	"context"
	"errors"
	"fmt"
	"log"

	"Prescryber/auth"
	"Prescryber/config"
	"Prescryber/mailer"
	"Prescryber/models"
	"Prescryber/store"
	"Prescryber/utils"
)

var (
	ErrEmailTaken         = errors.New(utils.EMAIL_TAKEN)
	ErrUserNotFound       = errors.New(utils.USER_NOT_FOUND)
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrMailDelivery       = errors.New("failed to send password reset email")
)

// TokenisedResponse is what the frontend receives after signing a user in
// or up: a fresh session token plus the public identity fields.
type TokenisedResponse struct {
	Token       string             `json:"token"`
	Message     string             `json:"message"`
	AccountType models.AccountType `json:"accountType"`
	Email       string             `json:"email"`
	Name        string             `json:"name"`
}

// UserService owns registration, authentication and account maintenance.
type UserService struct {
	Users  store.UserStore
	Tokens *auth.TokenService
	Mail   mailer.Sender
	Config config.Config
}

/*
* Check the email is still free before creating anything
* Hash the password, we cannot trust these things
* Respond with a fresh session token
 */
func (s *UserService) Register(ctx context.Context, payload models.RegisterPayload) (TokenisedResponse, error) {
	_, err := s.Users.FindByEmail(ctx, payload.Email)
	if err == nil {
		return TokenisedResponse{}, ErrEmailTaken
	}
	if !errors.Is(err, store.ErrNotFound) {
		return TokenisedResponse{}, fmt.Errorf("looking up email: %w", err)
	}

	hashedPassword, err := auth.HashPassword(payload.Password)
	if err != nil {
		return TokenisedResponse{}, err
	}

	user, err := s.Users.Create(ctx, models.User{
		Name:        payload.Name,
		Email:       payload.Email,
		AccountType: payload.AccountType,
		Password:    hashedPassword,
	})
	if err != nil {
		return TokenisedResponse{}, fmt.Errorf("creating user: %w", err)
	}

	return s.tokenisedResponse(user)
}

/*
* Look the user up by email and compare passwords
* Respond with a fresh session token
 */
func (s *UserService) Login(ctx context.Context, payload models.LoginPayload) (TokenisedResponse, error) {
	user, err := s.Users.FindByEmail(ctx, payload.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return TokenisedResponse{}, ErrUserNotFound
		}
		return TokenisedResponse{}, fmt.Errorf("looking up user: %w", err)
	}

	if !auth.CheckPassword(payload.Password, user.Password) {
		return TokenisedResponse{}, ErrInvalidCredentials
	}

	return s.tokenisedResponse(user)
}

func (s *UserService) tokenisedResponse(user models.User) (TokenisedResponse, error) {
	token, err := s.Tokens.Issue(user, auth.PurposeSession)
	if err != nil {
		return TokenisedResponse{}, err
	}
	return TokenisedResponse{
		Token:       token,
		Message:     utils.GENERIC_SUCCESS,
		AccountType: user.AccountType,
		Email:       user.Email,
		Name:        user.Name,
	}, nil
}

/*
* Mail a short-lived reset token to the address, if we know it
 */
func (s *UserService) SendPasswordResetCode(ctx context.Context, email string) error {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	token, err := s.Tokens.Issue(user, auth.PurposeReset)
	if err != nil {
		return err
	}

	body := fmt.Sprintf(`<p>A password change was requested for your account.</p>
      <p>If you did not request it, ignore this message.</p>
      <p>Click <a href="%s/%s">here</a> to reset your password if you did</p>
      <p>Token expires in 12 minutes</p>`, s.Config.PasswordResetLink(), token)

	if err := s.Mail.Send(user.Email, "Password Reset", body); err != nil {
		log.Println("Password reset email failed:", err)
		return ErrMailDelivery
	}
	return nil
}

/*
* Replace the caller's password hash
* The confirmation email is best effort, a failure is logged and swallowed
 */
func (s *UserService) ResetPassword(ctx context.Context, identity auth.Identity, password string) error {
	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	user, err := s.Users.FindByEmail(ctx, identity.Email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("looking up user: %w", err)
	}

	if _, err := s.Users.UpdateByID(ctx, user.ID.Hex(), store.UserUpdate{Password: hashedPassword}); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("updating password: %w", err)
	}

	body := fmt.Sprintf(`<p>Your password has been successfully changed.</p>
      <p>Click <a href="%s/login">here</a> to login</p>`, s.Config.AppURL)
	if err := s.Mail.Send(user.Email, "Password Reset", body); err != nil {
		log.Println("Password reset confirmation email failed:", err)
	}
	return nil
}

// PatientName resolves an email to the registered user's name.
func (s *UserService) PatientName(ctx context.Context, email string) (string, error) {
	user, err := s.Users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrUserNotFound
		}
		return "", fmt.Errorf("looking up user: %w", err)
	}
	return user.Name, nil
}

// IsEmailAvailable reports whether the address is unused.
func (s *UserService) IsEmailAvailable(ctx context.Context, email string) error {
	_, err := s.Users.FindByEmail(ctx, email)
	if err == nil {
		return ErrEmailTaken
	}
	if errors.Is(err, store.ErrNotFound) {
		return nil
	}
	return fmt.Errorf("looking up email: %w", err)
}

// Update changes the caller's profile fields.
func (s *UserService) Update(ctx context.Context, identity auth.Identity, payload models.UpdateUserPayload) (models.User, error) {
	user, err := s.Users.UpdateByID(ctx, identity.ID, store.UserUpdate{
		Name:  payload.Name,
		Email: payload.Email,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("updating user: %w", err)
	}
	return user, nil
}

// Delete removes the caller's account and returns the removed record.
func (s *UserService) Delete(ctx context.Context, identity auth.Identity) (models.User, error) {
	user, err := s.Users.DeleteByID(ctx, identity.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("deleting user: %w", err)
	}
	return user, nil
}
