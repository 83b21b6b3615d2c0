package auth

import (
	"linkedink/cmd/client/cmd/ui"
	"linkedink/internal/domain/account"
)

// PromptRegistration asks for every field left empty by flags.
func PromptRegistration(in *account.RegisterInput) error {
	var err error
	if in.Name == "" {
		if in.Name, err = ui.Prompt("Full name"); err != nil {
			return err
		}
	}
	if in.Email == "" {
		if in.Email, err = ui.Prompt("Email"); err != nil {
			return err
		}
	}
	if in.Password == "" {
		if in.Password, err = ui.Password("Password"); err != nil {
			return err
		}
	}
	if in.ConfirmPassword == "" {
		if in.ConfirmPassword, err = ui.Password("Confirm password"); err != nil {
			return err
		}
	}
	return nil
}

// PromptCredentials asks for the email and password when not given.
func PromptCredentials(email, password *string) error {
	var err error
	if *email == "" {
		if *email, err = ui.Prompt("Email"); err != nil {
			return err
		}
	}
	if *password == "" {
		if *password, err = ui.Password("Password"); err != nil {
			return err
		}
	}
	return nil
}
