// Package validation holds the client-side form checks. Failures here
// are resolved at the form boundary; they never reach the gateway.
package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/nextgen-foodcourt/foodcourt-client/models"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

func ValidateLogin(email, password string) error {
	if err := validateEmail(email); err != nil {
		return err
	}
	if password == "" {
		return ValidationError{Field: "password", Message: "password is required"}
	}
	return nil
}

func ValidateRegistration(name, email, password, confirm, phoneNo string, role models.Role) error {
	if name == "" {
		return ValidationError{Field: "name", Message: "name is required"}
	}
	if err := validateEmail(email); err != nil {
		return err
	}
	if len(password) < 6 {
		return ValidationError{Field: "password", Message: "password must be at least 6 characters"}
	}
	if password != confirm {
		return ValidationError{Field: "confirm_password", Message: "passwords do not match"}
	}
	if phoneNo == "" {
		return ValidationError{Field: "phone_no", Message: "phone number is required"}
	}
	if role != models.RoleCustomer && role != models.RoleOwner {
		return ValidationError{Field: "role", Message: "role must be customer or owner"}
	}
	return nil
}

// ValidateReservation checks the booking form. now anchors the
// date-in-the-past check so tests can pin it.
func ValidateReservation(bookingDate, bookingTime string, guests int, now time.Time) error {
	date, err := time.Parse(models.BookingDateFormat, bookingDate)
	if err != nil {
		return ValidationError{Field: "booking_date", Message: "booking date must be YYYY-MM-DD"}
	}
	if _, err := time.Parse(models.BookingTimeFormat, bookingTime); err != nil {
		return ValidationError{Field: "booking_time", Message: "booking time must be HH:MM:SS"}
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if date.Before(today) {
		return ValidationError{Field: "booking_date", Message: "booking date cannot be in the past"}
	}
	if guests < 1 {
		return ValidationError{Field: "no_of_people", Message: "at least one guest is required"}
	}
	return nil
}

func validateEmail(email string) error {
	if email == "" {
		return ValidationError{Field: "email", Message: "email is required"}
	}
	if !emailPattern.MatchString(email) {
		return ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}
