package errors

// User-friendly error messages
const (
	MsgInvalidPriceRange      = "Min price must be less than or equal to max price."
	MsgInvalidPropertyType    = "The provided property type is not recognized."
	MsgInvalidParameters      = "The provided parameters are invalid. Please check your input and try again."
	MsgInvalidPhoneFormat     = "Invalid phone number format. Must start with '+' and have at least 10 digits."
	MsgRateLimited            = "Too many requests. Please wait before requesting another code."
	MsgCodeExpired            = "Verification code expired or not found."
	MsgInvalidCode            = "Invalid verification code."
	MsgMaxAttempts            = "Maximum verification attempts exceeded."
	MsgSMSDeliveryFailed      = "We couldn't deliver the verification code right now. Please try again in a few minutes."
	MsgEmailDeliveryFailed    = "We couldn't send the verification email right now. Please try again in a few minutes."
	MsgEmailAlreadyRegistered = "An account with that email already exists."
	MsgInvalidCredentials     = "Invalid email or password."
	MsgEmailAlreadyVerified   = "Email already verified."
	MsgExpiredToken           = "The verification link has expired. Please request a new one."
	MsgInvalidToken           = "The verification link is invalid."
	MsgUserNotFound           = "User not found."
	MsgServiceUnavailable     = "We're unable to process your request right now. Please try again in a few minutes."
	MsgInternalError          = "Something went wrong on our end. Please try again later."
)
