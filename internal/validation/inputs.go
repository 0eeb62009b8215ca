package validation

import "strings"

const (
	emailInvalid   = "Please provide a valid email address"
	emailTooLong   = "Email must be less than 255 characters"
	passwordShort  = "Password must be at least 8 characters long"
	passwordLong   = "Password must be less than 255 characters"
	passwordType   = "Password must be a string"
	skillNameRules = "Skill name must start with a capital letter, each word must start with a capital letter, and only letters and spaces are allowed (no numbers or special characters)"
)

// RegisterInput is the registration body. Extra keys are ignored.
type RegisterInput struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Email       string  `json:"email" validate:"required,email,max=255"`
	Password    string  `json:"password" validate:"required,min=8,max=255"`
	PhoneNumber string  `json:"phone_number" validate:"required,max=20,phone"`
	Role        string  `json:"role" validate:"required,oneof=jobseeker recruiter"`
	Bio         *string `json:"bio" validate:"omitempty,max=5000"`
}

func (in *RegisterInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
	if in.Bio != nil {
		b := strings.TrimSpace(*in.Bio)
		in.Bio = &b
	}
}

func (*RegisterInput) messages() map[string]string {
	return map[string]string{
		"name.type":                  "Name must be a string",
		"name.required":              "Name cannot be empty",
		"name.max":                   "Name must be less than 255 characters",
		"email.type":                 emailInvalid,
		"email.required":             emailInvalid,
		"email.email":                emailInvalid,
		"email.max":                  emailTooLong,
		"password.type":              passwordType,
		"password.required":          passwordShort,
		"password.min":               passwordShort,
		"password.max":               passwordLong,
		"phone_number.type":          "Phone number must be a string",
		"phone_number.required":      "Phone number cannot be empty",
		"phone_number.max":           "Phone number must be less than 20 characters",
		"phone_number.phone":         "Please provide a valid Indian phone number (must start with 6-9 and be 10 digits)",
		"role.type":                  "Role must be either 'jobseeker' or 'recruiter'",
		"role.required":              "Role must be either 'jobseeker' or 'recruiter'",
		"role.oneof":                 "Role must be either 'jobseeker' or 'recruiter'",
		"bio.type":                   "Bio must be a string",
		"bio.max":                    "Bio must be less than 5000 characters",
		"bio.required_for_jobseeker": "Bio is required for jobseekers",
	}
}

// LoginInput is the login body.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email,max=255"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (in *LoginInput) Normalize() { in.Email = normalizeEmail(in.Email) }

func (*LoginInput) messages() map[string]string {
	return map[string]string{
		"email.type":        emailInvalid,
		"email.required":    emailInvalid,
		"email.email":       emailInvalid,
		"email.max":         emailTooLong,
		"password.type":     passwordType,
		"password.required": passwordShort,
		"password.min":      passwordShort,
		"password.max":      passwordLong,
	}
}

// ForgotPasswordInput names the account to send a reset link to.
type ForgotPasswordInput struct {
	Email string `json:"email" validate:"required,email,max=255"`
}

func (in *ForgotPasswordInput) Normalize() { in.Email = normalizeEmail(in.Email) }

func (*ForgotPasswordInput) messages() map[string]string {
	return map[string]string{
		"email.type":     emailInvalid,
		"email.required": emailInvalid,
		"email.email":    emailInvalid,
		"email.max":      emailTooLong,
	}
}

// ResetPasswordInput carries the emailed reset token and the new password.
type ResetPasswordInput struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8,max=255"`
}

func (in *ResetPasswordInput) Normalize() { in.Token = strings.TrimSpace(in.Token) }

func (*ResetPasswordInput) messages() map[string]string {
	return map[string]string{
		"token.type":        "Token must be a string",
		"token.required":    "Token is required",
		"password.type":     passwordType,
		"password.required": passwordShort,
		"password.min":      passwordShort,
		"password.max":      passwordLong,
	}
}

// LocationInput is a WGS84 coordinate pair.
type LocationInput struct {
	Latitude  *float64 `json:"latitude" validate:"required,gte=-90,lte=90"`
	Longitude *float64 `json:"longitude" validate:"required,gte=-180,lte=180"`
}

// UpdateProfileInput is the self-service profile patch. Unknown keys are rejected.
// Empty name or phone number keep the stored value; a present bio replaces it.
type UpdateProfileInput struct {
	Name        string         `json:"name" validate:"omitempty,max=255"`
	PhoneNumber string         `json:"phone_number" validate:"omitempty,max=20,phone"`
	Bio         *string        `json:"bio" validate:"omitempty,max=5000"`
	Location    *LocationInput `json:"location"`
}

func (in *UpdateProfileInput) Normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.PhoneNumber = strings.TrimSpace(in.PhoneNumber)
}

func (*UpdateProfileInput) messages() map[string]string {
	return map[string]string{
		"name.type":                   "Name must be a string",
		"name.max":                    "Name must be less than 255 characters",
		"phone_number.type":           "Phone number must be a string",
		"phone_number.max":            "Phone number must be less than 20 characters",
		"phone_number.phone":          "Please provide a valid Indian phone number (must start with 6-9 and be 10 digits)",
		"bio.type":                    "Bio must be a string",
		"bio.max":                     "Bio must be less than 5000 characters",
		"location.type":               "Location must be an object",
		"location.latitude.type":      "Latitude must be a number",
		"location.latitude.required":  "Latitude must be a number",
		"location.latitude.gte":       "Latitude must be between -90 and 90",
		"location.latitude.lte":       "Latitude must be between -90 and 90",
		"location.longitude.type":     "Longitude must be a number",
		"location.longitude.required": "Longitude must be a number",
		"location.longitude.gte":      "Longitude must be between -180 and 180",
		"location.longitude.lte":      "Longitude must be between -180 and 180",
	}
}

// SkillNameInput names a skill to attach or detach. Unknown keys are rejected.
type SkillNameInput struct {
	Name string `json:"name" validate:"required,max=100,skillname"`
}

func (in *SkillNameInput) Normalize() { in.Name = strings.TrimSpace(in.Name) }

func (*SkillNameInput) messages() map[string]string {
	return map[string]string{
		"name.type":      "Skill name must be a string",
		"name.required":  "Skill name cannot be empty",
		"name.max":       "Skill name must be less than 100 characters",
		"name.skillname": skillNameRules,
	}
}

// normalizeEmail only folds case. Surrounding whitespace is left in place so
// the email rule rejects it.
func normalizeEmail(s string) string { return strings.ToLower(s) }
