package response

// Error strings are part of the wire contract; clients match on them.
var (
	ErrMissingFields = Error{Error: "Missing required fields"}

	ErrEmailExists = Error{Error: "Email already exists"}

	ErrEmailPasswordRequired = Error{Error: "Email and password required"}

	ErrInvalidCredentials = Error{Error: "Invalid credentials"}

	ErrUnauthorized = Error{Error: "Unauthorized"}

	ErrUserNotFound = Error{Error: "User not found"}

	ErrInvalidRequest = Error{Error: "Invalid request"}

	ErrInternal = Error{Error: "Internal server error"}
)
