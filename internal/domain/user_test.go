package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	validUsername := "testuser"
	validEmail := "test@example.com"
	validPassword := "password12345"

	user, err := NewUser(validUsername, validEmail, validPassword)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Username != validUsername {
		t.Errorf("Expected username %s, got %s", validUsername, user.Username)
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.Password != validPassword {
		t.Errorf("Expected password to be retained until hashing, got %s", user.Password)
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	if user.UpdatedAt.IsZero() {
		t.Error("Expected non-zero UpdatedAt time")
	}

	// Test invalid username
	_, err = NewUser("", validEmail, validPassword)
	if err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	_, err = NewUser(strings.Repeat("a", 151), validEmail, validPassword)
	if err != ErrUsernameTooLong {
		t.Errorf("Expected error %v, got %v", ErrUsernameTooLong, err)
	}

	// Test invalid email
	_, err = NewUser(validUsername, "", validPassword)
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser(validUsername, "invalidemail", validPassword)
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test invalid password
	_, err = NewUser(validUsername, validEmail, "")
	if err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}

	_, err = NewUser(validUsername, validEmail, "short")
	if err != ErrPasswordTooShort {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooShort, err)
	}

	_, err = NewUser(validUsername, validEmail, strings.Repeat("p", 73))
	if err != ErrPasswordTooLong {
		t.Errorf("Expected error %v, got %v", ErrPasswordTooLong, err)
	}
}

func TestUserValidate(t *testing.T) {
	validUser := User{
		ID:             uuid.New(),
		Username:       "testuser",
		Email:          "test@example.com",
		HashedPassword: "hashedpassword123",
	}

	// Test valid user (stored form: hash only, no plaintext)
	if err := validUser.Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	// Test invalid ID
	invalidUser := validUser
	invalidUser.ID = uuid.Nil
	if err := invalidUser.Validate(); err != ErrEmptyUserID {
		t.Errorf("Expected error %v, got %v", ErrEmptyUserID, err)
	}

	// Test invalid username
	invalidUser = validUser
	invalidUser.Username = ""
	if err := invalidUser.Validate(); err != ErrEmptyUsername {
		t.Errorf("Expected error %v, got %v", ErrEmptyUsername, err)
	}

	// Test invalid email
	invalidUser = validUser
	invalidUser.Email = "invalidemail"
	if err := invalidUser.Validate(); err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	// Test missing credentials entirely
	invalidUser = validUser
	invalidUser.HashedPassword = ""
	if err := invalidUser.Validate(); err != ErrEmptyPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyPassword, err)
	}
}

func TestValidateEmailFormat(t *testing.T) {
	validEmails := []string{
		"user@example.com",
		"first.last@example.co.uk",
		"user+tag@example.com",
	}

	for _, email := range validEmails {
		if !validEmailFormat(email) {
			t.Errorf("Expected %s to be valid", email)
		}
	}

	invalidEmails := []string{
		"",
		"userexample.com",
		"@example.com",
		"user@",
		"user@example",
		"user@.com",
	}

	for _, email := range invalidEmails {
		if validEmailFormat(email) {
			t.Errorf("Expected %s to be invalid", email)
		}
	}
}

func TestUserPasswordNeverSerialized(t *testing.T) {
	user := User{
		ID:             uuid.New(),
		Username:       "testuser",
		Email:          "test@example.com",
		Password:       "plaintextpassword",
		HashedPassword: "$2a$10$somethinghashed",
	}

	data, err := json.Marshal(user)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	serialized := string(data)
	if strings.Contains(serialized, "plaintextpassword") {
		t.Error("Plaintext password leaked into JSON serialization")
	}
	if strings.Contains(serialized, "somethinghashed") {
		t.Error("Password hash leaked into JSON serialization")
	}
}
