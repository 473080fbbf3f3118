package authform

// Severity maps a status to the host's presentation tier.
type Severity int8

const (
	// SeveritySuccess marks an operation that completed.
	SeveritySuccess Severity = iota
	// SeverityWarning marks a rejection the user can correct.
	SeverityWarning
	// SeverityError marks a rejection caused by bad input.
	SeverityError
)

// RegisterStatus is the tagged result of RegisterUser. Hosts switch on it
// for display instead of parsing message strings.
type RegisterStatus int8

const (
	// RegisterOK: the user was created.
	RegisterOK RegisterStatus = iota
	// RegisterMissingFields: name, username, email, or password was empty.
	RegisterMissingFields
	// RegisterUsernameTaken: the (case-normalized) username already exists.
	RegisterUsernameTaken
	// RegisterPasswordMismatch: password and its confirmation differ.
	RegisterPasswordMismatch
	// RegisterNotPreauthorized: preauthorization is enforced and the email
	// is not on the preauthorized list.
	RegisterNotPreauthorized
)

// Severity returns the presentation tier for the status.
func (s RegisterStatus) Severity() Severity {
	if s == RegisterOK {
		return SeveritySuccess
	}
	return SeverityError
}

// Message returns the user-facing text for the status.
func (s RegisterStatus) Message() string {
	switch s {
	case RegisterOK:
		return "User registered successfully"
	case RegisterMissingFields:
		return "Please enter a name, username, email, and password"
	case RegisterUsernameTaken:
		return "Username already taken"
	case RegisterPasswordMismatch:
		return "Passwords do not match"
	case RegisterNotPreauthorized:
		return "User not preauthorized to register"
	default:
		return "Unknown registration status"
	}
}

// ResetStatus is the tagged result of ResetPassword.
type ResetStatus int8

const (
	// ResetOK: the stored hash was replaced.
	ResetOK ResetStatus = iota
	// ResetBadCredentials: the current username/password pair did not
	// verify. Unknown usernames and wrong passwords are not distinguished.
	ResetBadCredentials
	// ResetEmptyPassword: no new password was provided.
	ResetEmptyPassword
	// ResetMismatch: the new password and its confirmation differ.
	ResetMismatch
)

// Severity returns the presentation tier for the status.
func (s ResetStatus) Severity() Severity {
	if s == ResetOK {
		return SeveritySuccess
	}
	return SeverityError
}

// Message returns the user-facing text for the status.
func (s ResetStatus) Message() string {
	switch s {
	case ResetOK:
		return "Password modified successfully"
	case ResetBadCredentials:
		return "Username/password is incorrect"
	case ResetEmptyPassword:
		return "No new password provided"
	case ResetMismatch:
		return "Passwords do not match"
	default:
		return "Unknown reset status"
	}
}
