package services

import (
	"context"
	"strings"
	"testing"

	"Prescryber/auth"
	"Prescryber/config"
	"Prescryber/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUserService(users *fakeUserStore, mail *fakeSender) (*UserService, *auth.TokenService) {
	tokens := auth.NewTokenService("test-secret")
	svc := &UserService{
		Users:  users,
		Tokens: tokens,
		Mail:   mail,
		Config: config.Config{AppURL: "http://localhost:8080"},
	}
	return svc, tokens
}

func registerPayload() models.RegisterPayload {
	return models.RegisterPayload{
		Name:        "Ada",
		Email:       "ada@x.com",
		AccountType: models.AccountTypePatient,
		Password:    "hunter2",
	}
}

func TestRegisterHashesPasswordAndIssuesToken(t *testing.T) {
	users := newFakeUserStore()
	svc, tokens := newUserService(users, &fakeSender{})

	data, err := svc.Register(context.Background(), registerPayload())
	require.NoError(t, err)

	stored := users.users["ada@x.com"]
	assert.NotEqual(t, "hunter2", stored.Password)
	assert.True(t, auth.CheckPassword("hunter2", stored.Password))

	identity, err := tokens.Verify(data.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", identity.Email)
	assert.Equal(t, models.AccountTypePatient, identity.AccountType)
	assert.Equal(t, "Ada", data.Name)
}

func TestRegisterEmailTaken(t *testing.T) {
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com"})
	svc, _ := newUserService(users, &fakeSender{})

	_, err := svc.Register(context.Background(), registerPayload())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	users := newFakeUserStore(models.User{
		Name:        "Ada",
		Email:       "ada@x.com",
		AccountType: models.AccountTypePatient,
		Password:    hash,
	})
	svc, tokens := newUserService(users, &fakeSender{})

	data, err := svc.Login(context.Background(), models.LoginPayload{Email: "ada@x.com", Password: "hunter2"})
	require.NoError(t, err)
	identity, err := tokens.Verify(data.Token)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", identity.Email)

	_, err = svc.Login(context.Background(), models.LoginPayload{Email: "ada@x.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), models.LoginPayload{Email: "nobody@x.com", Password: "hunter2"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendPasswordResetCode(t *testing.T) {
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com"})
	mail := &fakeSender{}
	svc, tokens := newUserService(users, mail)

	err := svc.SendPasswordResetCode(context.Background(), "ada@x.com")
	require.NoError(t, err)

	require.Len(t, mail.sent, 1)
	assert.Equal(t, "ada@x.com", mail.sent[0].to)
	assert.Contains(t, mail.sent[0].body, "http://localhost:8080/password/reset")

	// the emailed token verifies against the same secret
	body := mail.sent[0].body
	marker := "http://localhost:8080/password/reset/"
	start := strings.Index(body, marker)
	require.GreaterOrEqual(t, start, 0)
	rest := body[start+len(marker):]
	token := rest[:strings.Index(rest, `"`)]
	_, err = tokens.Verify(token)
	assert.NoError(t, err)
}

func TestSendPasswordResetCodeUnknownEmail(t *testing.T) {
	svc, _ := newUserService(newFakeUserStore(), &fakeSender{})

	err := svc.SendPasswordResetCode(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSendPasswordResetCodeMailFailure(t *testing.T) {
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com"})
	svc, _ := newUserService(users, &fakeSender{fail: true})

	err := svc.SendPasswordResetCode(context.Background(), "ada@x.com")
	assert.ErrorIs(t, err, ErrMailDelivery)
}

func TestResetPasswordReplacesHash(t *testing.T) {
	oldHash, err := auth.HashPassword("oldpass1")
	require.NoError(t, err)
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com", Password: oldHash})
	mail := &fakeSender{}
	svc, _ := newUserService(users, mail)

	identity := auth.Identity{ID: users.users["ada@x.com"].ID.Hex(), Email: "ada@x.com"}
	err = svc.ResetPassword(context.Background(), identity, "newpass1")
	require.NoError(t, err)

	stored := users.users["ada@x.com"]
	assert.True(t, auth.CheckPassword("newpass1", stored.Password))
	assert.False(t, auth.CheckPassword("oldpass1", stored.Password))
	assert.Len(t, mail.sent, 1)
}

// The confirmation mail is best effort, a dead SMTP host must not fail the
// password change itself.
func TestResetPasswordSurvivesMailFailure(t *testing.T) {
	oldHash, err := auth.HashPassword("oldpass1")
	require.NoError(t, err)
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com", Password: oldHash})
	svc, _ := newUserService(users, &fakeSender{fail: true})

	identity := auth.Identity{ID: users.users["ada@x.com"].ID.Hex(), Email: "ada@x.com"}
	err = svc.ResetPassword(context.Background(), identity, "newpass1")
	assert.NoError(t, err)
	assert.True(t, auth.CheckPassword("newpass1", users.users["ada@x.com"].Password))
}

func TestIsEmailAvailable(t *testing.T) {
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com"})
	svc, _ := newUserService(users, &fakeSender{})

	assert.NoError(t, svc.IsEmailAvailable(context.Background(), "free@x.com"))
	assert.ErrorIs(t, svc.IsEmailAvailable(context.Background(), "ada@x.com"), ErrEmailTaken)
}

func TestPatientName(t *testing.T) {
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com"})
	svc, _ := newUserService(users, &fakeSender{})

	name, err := svc.PatientName(context.Background(), "ada@x.com")
	require.NoError(t, err)
	assert.Equal(t, "Ada", name)

	_, err = svc.PatientName(context.Background(), "nobody@x.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateAndDeleteAccount(t *testing.T) {
	users := newFakeUserStore(models.User{Name: "Ada", Email: "ada@x.com"})
	svc, _ := newUserService(users, &fakeSender{})
	identity := auth.Identity{ID: users.users["ada@x.com"].ID.Hex(), Email: "ada@x.com"}

	updated, err := svc.Update(context.Background(), identity, models.UpdateUserPayload{Name: "Ada Lovelace"})
	require.NoError(t, err)
	assert.Equal(t, "Ada Lovelace", updated.Name)

	removed, err := svc.Delete(context.Background(), identity)
	require.NoError(t, err)
	assert.Equal(t, "ada@x.com", removed.Email)

	_, err = svc.Delete(context.Background(), identity)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
